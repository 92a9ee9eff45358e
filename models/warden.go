package models

import "time"

// Warden is a staff-approver account, managed by the super-admin.
type Warden struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:120;not null"`
	Phone        string `json:"phone" gorm:"size:20;not null"`
	Username     string `json:"username" gorm:"uniqueIndex;size:60;not null"`
	PasswordHash string `json:"-" gorm:"not null"` // bcrypt

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
