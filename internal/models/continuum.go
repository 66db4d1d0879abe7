package models

import "time"

// Continuum is one bipolar rating dimension within a project, e.g.
// "risk-averse <> risk-seeking". Hidden continuums stay out of voting
// and results but keep their votes.
type Continuum struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	LeftAim   string    `gorm:"size:255" json:"left_aim"`
	RightAim  string    `gorm:"size:255" json:"right_aim"`
	LeftDesc  string    `gorm:"type:text" json:"left_desc"`
	RightDesc string    `gorm:"type:text" json:"right_desc"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	IsHidden  bool      `gorm:"not null;default:false" json:"is_hidden"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
