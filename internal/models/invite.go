package models

import "time"

// Invite grants one email address access to join a session. The token is
// the sole capability for the public voting flow.
type Invite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID uint      `gorm:"not null;index" json:"session_id"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"token"`
	CreatedAt time.Time `json:"created_at"`
}
