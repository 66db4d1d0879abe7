package models

import "time"

type Project struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	OwnerID    uint        `gorm:"not null;index" json:"owner_id"`
	Owner      User        `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Name       string      `gorm:"size:255;not null" json:"name"`
	MinValue   int         `gorm:"not null;default:-5" json:"min_value"`
	MaxValue   int         `gorm:"not null;default:5" json:"max_value"`
	Continuums []Continuum `gorm:"foreignKey:ProjectID" json:"continuums,omitempty"`
	Sessions   []Session   `gorm:"foreignKey:ProjectID" json:"sessions,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
