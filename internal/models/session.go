package models

import "time"

// Session is an opaque bearer grant. A session past ExpiresAt is treated as
// absent at lookup time; expired rows are never proactively purged.
type Session struct {
	Token     string    `json:"token" gorm:"primaryKey;size:64"`
	UserID    string    `json:"user_id" gorm:"index;size:36"`
	ExpiresAt time.Time `json:"expires_at"`
}
