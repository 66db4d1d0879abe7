package models

import "time"

type Participant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID uint      `gorm:"not null;index" json:"session_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255" json:"email,omitempty"`
	JoinedAt  time.Time `json:"joined_at"`
}
