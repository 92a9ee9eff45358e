package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		dateOut    string
		dateReturn string
		wantErr    error
	}{
		{"return after out", "2024-06-01", "2024-06-03", nil},
		{"same day outing", "2024-06-01", "2024-06-01", nil},
		{"return before out", "2024-06-03", "2024-06-01", ErrInvalidDateRange},
		{"month boundary", "2024-05-31", "2024-06-01", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWindow(tt.dateOut, tt.dateReturn)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestNormalizePlate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ABC 1234", NormalizePlate("abc 1234"))
	assert.Equal(t, "WXY 99", NormalizePlate("  wXy 99 "))
}

func TestValidType(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidType(TypeOuting))
	assert.True(t, ValidType(TypeOvernightReturn))
	assert.True(t, ValidType(TypeMedicalLeave))
	assert.False(t, ValidType("holiday"))
	assert.False(t, ValidType(""))
}

func pendingApp() Application {
	return Application{
		ID:           "app-1",
		Type:         TypeOuting,
		StudentName:  "Ali",
		StudentForm:  "4",
		ParentName:   "Encik Abu",
		ParentPhone:  "0123456789",
		ParentEmail:  "abu@example.com",
		VehicleType:  "Kereta",
		VehiclePlate: "ABC 1234",
		DateOut:      "2024-06-01",
		DateReturn:   "2024-06-03",
		Reason:       "Balik kampung",
		Status:       StatusPending,
	}
}

func TestResolveApprove(t *testing.T) {
	t.Parallel()

	app := pendingApp()
	now := time.Now()

	err := app.Resolve(StatusApproved, "OK, ambil jam 5", "Cikgu Siti", "0198765432", now)
	require.NoError(t, err)

	assert.Equal(t, StatusApproved, app.Status)
	assert.Equal(t, "OK, ambil jam 5", app.WardenComment)
	assert.Equal(t, "Cikgu Siti", app.WardenName)
	assert.Equal(t, "0198765432", app.WardenPhone)
	require.NotNil(t, app.DecidedAt)
	assert.Equal(t, now, *app.DecidedAt)
	assert.False(t, app.Pending())

	// immutable fields untouched
	ref := pendingApp()
	assert.Equal(t, ref.StudentName, app.StudentName)
	assert.Equal(t, ref.DateOut, app.DateOut)
	assert.Equal(t, ref.DateReturn, app.DateReturn)
	assert.Equal(t, ref.VehiclePlate, app.VehiclePlate)
	assert.Equal(t, ref.Reason, app.Reason)
}

func TestResolveReject(t *testing.T) {
	t.Parallel()

	app := pendingApp()
	err := app.Resolve(StatusRejected, "Tarikh bertindih dengan aktiviti", "Cikgu Siti", "0198765432", time.Now())
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, app.Status)
}

func TestResolveAlreadyDecided(t *testing.T) {
	t.Parallel()

	app := pendingApp()
	require.NoError(t, app.Resolve(StatusApproved, "ok", "W", "-", time.Now()))

	err := app.Resolve(StatusRejected, "tukar fikiran", "W2", "-", time.Now())
	assert.ErrorIs(t, err, ErrAlreadyDecided)

	// first decision stays intact
	assert.Equal(t, StatusApproved, app.Status)
	assert.Equal(t, "ok", app.WardenComment)
	assert.Equal(t, "W", app.WardenName)
}

func TestResolveInvalidTarget(t *testing.T) {
	t.Parallel()

	app := pendingApp()
	assert.ErrorIs(t, app.Resolve(StatusPending, "", "W", "-", time.Now()), ErrInvalidStatus)
	assert.ErrorIs(t, app.Resolve("cancelled", "", "W", "-", time.Now()), ErrInvalidStatus)
	assert.Equal(t, StatusPending, app.Status)
}

func TestResolveDefaultsWardenIdentity(t *testing.T) {
	t.Parallel()

	app := pendingApp()
	require.NoError(t, app.Resolve(StatusApproved, "ok", "", "", time.Now()))
	assert.Equal(t, "Warden Bertugas", app.WardenName)
	assert.Equal(t, "-", app.WardenPhone)
}
