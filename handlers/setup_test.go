package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/g-67560126-commits/e-Asrama/config"
	"github.com/g-67560126-commits/e-Asrama/database"
	"github.com/g-67560126-commits/e-Asrama/events"
	"github.com/g-67560126-commits/e-Asrama/handlers"
	"github.com/g-67560126-commits/e-Asrama/middlewares"
	"github.com/g-67560126-commits/e-Asrama/models"
	"github.com/g-67560126-commits/e-Asrama/notify"
	"github.com/g-67560126-commits/e-Asrama/routes"
)

type env struct {
	e   *echo.Echo
	db  *gorm.DB
	hub *events.Hub
	cfg *config.Config
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:          "test-secret",
		SuperAdminUser:     "admin",
		SuperAdminPassword: "1069",
	}
	hub := events.NewHub()

	e := echo.New()
	e.Validator = handlers.NewValidator()
	routes.Register(e, db, hub, notify.Noop{}, cfg)

	return &env{e: e, db: db, hub: hub, cfg: cfg}
}

func (v *env) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	v.e.ServeHTTP(rec, req)
	return rec
}

func (v *env) token(t *testing.T, role, name, phone string) string {
	t.Helper()
	claims := middlewares.Claims{
		Role:  role,
		Name:  name,
		Phone: phone,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(v.cfg.JWTSecret))
	require.NoError(t, err)
	return tok
}

func (v *env) wardenToken(t *testing.T) string {
	return v.token(t, middlewares.RoleWarden, "Cikgu Siti", "0198765432")
}

func (v *env) adminToken(t *testing.T) string {
	return v.token(t, middlewares.RoleSuperAdmin, "Super Admin", "-")
}

func (v *env) seedWarden(t *testing.T, name, phone, username, password string) models.Warden {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	w := models.Warden{Name: name, Phone: phone, Username: username, PasswordHash: string(hash)}
	require.NoError(t, v.db.Create(&w).Error)
	return w
}

func submitPayload() map[string]any {
	return map[string]any{
		"type":          models.TypeOuting,
		"student_name":  "Ali",
		"student_form":  "4",
		"parent_name":   "Encik Abu",
		"parent_phone":  "0123456789",
		"parent_email":  "abu@example.com",
		"vehicle_type":  "Kereta",
		"vehicle_plate": "abc 1234",
		"date_out":      "2024-06-01",
		"date_return":   "2024-06-03",
		"reason":        "Balik kampung",
	}
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (v *env) submit(t *testing.T, overrides map[string]any) models.Application {
	t.Helper()
	payload := submitPayload()
	for k, val := range overrides {
		payload[k] = val
	}
	rec := v.request(t, http.MethodPost, "/applications", "", payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[models.Application](t, rec)
}
