package models

import "time"

// Vote holds one participant's rating for one continuum within a session.
// The composite unique index backs the ON CONFLICT upsert on resubmission.
type Vote struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SessionID     uint      `gorm:"not null;uniqueIndex:idx_vote_unique" json:"session_id"`
	ParticipantID uint      `gorm:"not null;uniqueIndex:idx_vote_unique" json:"participant_id"`
	ContinuumID   uint      `gorm:"not null;uniqueIndex:idx_vote_unique;index" json:"continuum_id"`
	Value         int       `gorm:"not null" json:"value"`
	SubmittedAt   time.Time `gorm:"index" json:"submitted_at"`
}
