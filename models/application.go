package models

import (
	"errors"
	"strings"
	"time"
)

// Application categories (jenis permohonan).
const (
	TypeOuting          = "outing"
	TypeOvernightReturn = "overnight_return"
	TypeMedicalLeave    = "medical_leave"
)

// Application lifecycle: pending → approved | rejected, once.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var (
	ErrInvalidDateRange = errors.New("return date before out date")
	ErrInvalidStatus    = errors.New("invalid target status")
	ErrAlreadyDecided   = errors.New("application already decided")
)

type Application struct {
	ID   string `json:"id" gorm:"primaryKey;size:36"`
	Type string `json:"type" gorm:"size:30;not null"` // outing/overnight_return/medical_leave

	StudentName string `json:"student_name" gorm:"size:120;not null"`
	StudentForm string `json:"student_form" gorm:"size:10;not null"` // Tingkatan 1-5

	ParentName  string `json:"parent_name" gorm:"size:120;not null"`
	ParentPhone string `json:"parent_phone" gorm:"size:20;not null"`
	ParentEmail string `json:"parent_email" gorm:"size:120;not null"`

	VehicleType  string `json:"vehicle_type" gorm:"size:40;not null"`
	VehiclePlate string `json:"vehicle_plate" gorm:"size:20;not null"` // uppercased at entry

	DateOut    string `json:"date_out" gorm:"size:10;not null"`    // YYYY-MM-DD
	DateReturn string `json:"date_return" gorm:"size:10;not null"` // YYYY-MM-DD

	Reason     string `json:"reason" gorm:"type:text"`
	Attachment string `json:"attachment,omitempty" gorm:"type:text"` // inline base64, optional

	Status string `json:"status" gorm:"size:20;not null;index"`

	// Decision metadata, empty while pending.
	WardenComment string     `json:"warden_comment,omitempty" gorm:"type:text"`
	WardenName    string     `json:"warden_name,omitempty" gorm:"size:120"`
	WardenPhone   string     `json:"warden_phone,omitempty" gorm:"size:20"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizePlate uppercases a vehicle plate the way the entry form does.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// ValidateWindow rejects a window whose return date precedes the out date.
// Equal dates are a valid same-day outing. Dates are YYYY-MM-DD strings, so
// lexicographic comparison is date comparison.
func ValidateWindow(dateOut, dateReturn string) error {
	if dateReturn < dateOut {
		return ErrInvalidDateRange
	}
	return nil
}

// Pending reports whether the application still awaits a decision.
func (a *Application) Pending() bool { return a.Status == StatusPending }

// Resolve applies the single permitted transition. It attaches the decision
// metadata and leaves every other field untouched. A record that is no
// longer pending cannot be decided again.
func (a *Application) Resolve(status, comment, wardenName, wardenPhone string, at time.Time) error {
	if status != StatusApproved && status != StatusRejected {
		return ErrInvalidStatus
	}
	if !a.Pending() {
		return ErrAlreadyDecided
	}
	if wardenName == "" {
		wardenName = "Warden Bertugas"
	}
	if wardenPhone == "" {
		wardenPhone = "-"
	}
	a.Status = status
	a.WardenComment = comment
	a.WardenName = wardenName
	a.WardenPhone = wardenPhone
	a.DecidedAt = &at
	return nil
}

// ValidType reports whether t is a known application category.
func ValidType(t string) bool {
	switch t {
	case TypeOuting, TypeOvernightReturn, TypeMedicalLeave:
		return true
	}
	return false
}
