package models

import "time"

// SystemConfig is the single portal identity record (one row only).
type SystemConfig struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:120;not null"`
	LogoURL string `json:"logo_url" gorm:"type:text"` // inline base64 data URL, optional

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultSystemName is used until the super-admin configures an identity.
const DefaultSystemName = "e-Asrama"
