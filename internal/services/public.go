package services

import (
	"math"
	"strconv"
	"strings"
	"time"

	"polarity-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PublicService serves the unauthenticated invite/voting flow. Everything
// here is scoped by the invite token; the only other capability is the
// participant ID returned from Join.
type PublicService struct {
	db *gorm.DB
}

func NewPublicService(db *gorm.DB) *PublicService {
	return &PublicService{db: db}
}

type SessionInfo struct {
	ID     uint   `json:"id"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

type ProjectInfo struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	MinValue int    `json:"minValue"`
	MaxValue int    `json:"maxValue"`
}

type InviteView struct {
	Session     SessionInfo        `json:"session"`
	Project     ProjectInfo        `json:"project"`
	Continuums  []models.Continuum `json:"continuums"`
	InviteEmail string             `json:"inviteEmail"`
}

// GetInvite resolves token -> invite -> session -> project -> visible
// continuums. Lookup stays readable on a closed session; the status field
// tells the client voting is over.
func (s *PublicService) GetInvite(token string) (*InviteView, error) {
	invite, session, err := s.resolve(token)
	if err != nil {
		return nil, err
	}

	var project models.Project
	if err := s.db.First(&project, session.ProjectID).Error; err != nil {
		return nil, NewNotFoundError("invalid project")
	}

	var continuums []models.Continuum
	if err := s.db.Where("project_id = ? AND is_hidden = ?", project.ID, false).
		Order("sort_order ASC").
		Find(&continuums).Error; err != nil {
		return nil, err
	}

	return &InviteView{
		Session:     SessionInfo{ID: session.ID, Type: session.Type, Status: session.Status},
		Project:     ProjectInfo{ID: project.ID, Name: project.Name, MinValue: project.MinValue, MaxValue: project.MaxValue},
		Continuums:  continuums,
		InviteEmail: invite.Email,
	}, nil
}

func (s *PublicService) Join(token, name, email string) (*models.Participant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewInvalidError("name required")
	}

	_, session, err := s.resolve(token)
	if err != nil {
		return nil, err
	}
	if session.Status != models.SessionStatusOpen {
		return nil, NewForbiddenError("session closed")
	}

	participant := models.Participant{
		SessionID: session.ID,
		Name:      name,
		Email:     email,
		JoinedAt:  time.Now(),
	}
	if err := s.db.Create(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

type VoteInput struct {
	ContinuumID uint `json:"continuumId"`
	// Value is decoded untyped: numbers round, numeric strings parse,
	// anything else clamps to the project minimum.
	Value any `json:"value"`
}

// Submit upserts one vote row per (session, participant, continuum).
// Continuums outside the session's project are skipped silently; each vote
// is a single conditional write against the unique index, so a concurrent
// resubmission can never produce a duplicate row.
func (s *PublicService) Submit(token string, participantID uint, votes []VoteInput) (uint, error) {
	_, session, err := s.resolve(token)
	if err != nil {
		return 0, err
	}
	if session.Status != models.SessionStatusOpen {
		return 0, NewForbiddenError("session closed")
	}

	var participant models.Participant
	if err := s.db.Where("id = ? AND session_id = ?", participantID, session.ID).
		First(&participant).Error; err != nil {
		return 0, NewInvalidError("invalid participant")
	}

	var project models.Project
	if err := s.db.First(&project, session.ProjectID).Error; err != nil {
		return 0, NewNotFoundError("invalid project")
	}

	for _, v := range votes {
		var count int64
		if err := s.db.Model(&models.Continuum{}).
			Where("id = ? AND project_id = ?", v.ContinuumID, session.ProjectID).
			Count(&count).Error; err != nil {
			return 0, err
		}
		if count == 0 {
			continue
		}

		vote := models.Vote{
			SessionID:     session.ID,
			ParticipantID: participant.ID,
			ContinuumID:   v.ContinuumID,
			Value:         clampValue(v.Value, project.MinValue, project.MaxValue),
			SubmittedAt:   time.Now(),
		}
		err := s.db.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "session_id"}, {Name: "participant_id"}, {Name: "continuum_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"value", "submitted_at"}),
		}).Create(&vote).Error
		if err != nil {
			return 0, err
		}
	}
	return session.ID, nil
}

func (s *PublicService) resolve(token string) (*models.Invite, *models.Session, error) {
	var invite models.Invite
	if err := s.db.Where("token = ?", token).First(&invite).Error; err != nil {
		return nil, nil, NewNotFoundError("invalid invite")
	}

	var session models.Session
	if err := s.db.First(&session, invite.SessionID).Error; err != nil {
		return nil, nil, NewNotFoundError("invalid session")
	}
	return &invite, &session, nil
}

func clampValue(raw any, minValue, maxValue int) int {
	var n float64
	switch v := raw.(type) {
	case float64:
		n = v
	case int:
		n = float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return minValue
		}
		n = f
	default:
		return minValue
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return minValue
	}
	rounded := int(math.Round(n))
	if rounded < minValue {
		return minValue
	}
	if rounded > maxValue {
		return maxValue
	}
	return rounded
}
