package models

import "time"

type Session struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	ProjectID    uint          `gorm:"not null;index" json:"project_id"`
	Type         string        `gorm:"size:20;not null" json:"type"`
	Status       string        `gorm:"size:20;not null;default:'open'" json:"status"`
	Participants []Participant `gorm:"foreignKey:SessionID" json:"participants,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

const (
	SessionTypeBaseline   = "baseline"
	SessionTypeComparison = "comparison"

	SessionStatusOpen   = "open"
	SessionStatusClosed = "closed"
)
