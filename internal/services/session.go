package services

import (
	"math"
	"time"

	"polarity-backend/internal/models"
	"polarity-backend/internal/security"

	"gorm.io/gorm"
)

type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

func (s *SessionService) ListByProject(projectID, ownerID uint) ([]models.Session, error) {
	if err := s.checkProjectOwner(projectID, ownerID); err != nil {
		return nil, err
	}

	var sessions []models.Session
	if err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *SessionService) Create(projectID, ownerID uint, sessionType string) (*models.Session, error) {
	if sessionType != models.SessionTypeBaseline && sessionType != models.SessionTypeComparison {
		return nil, NewInvalidError("invalid type")
	}
	if err := s.checkProjectOwner(projectID, ownerID); err != nil {
		return nil, err
	}

	session := models.Session{
		ProjectID: projectID,
		Type:      sessionType,
		Status:    models.SessionStatusOpen,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *SessionService) UpdateStatus(sessionID, ownerID uint, status string) (*models.Session, error) {
	if status != models.SessionStatusOpen && status != models.SessionStatusClosed {
		return nil, NewInvalidError("invalid status")
	}

	session, err := s.GetOwned(sessionID, ownerID)
	if err != nil {
		return nil, err
	}

	session.Status = status
	session.UpdatedAt = time.Now()
	if err := s.db.Save(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// CreateInvite issues an unguessable token for one email address. Tokens
// never expire and cannot be revoked.
func (s *SessionService) CreateInvite(sessionID, ownerID uint, email string) (*models.Invite, error) {
	if _, err := s.GetOwned(sessionID, ownerID); err != nil {
		return nil, err
	}

	token, err := security.RandomToken(security.InviteTokenLength)
	if err != nil {
		return nil, err
	}

	invite := models.Invite{
		SessionID: sessionID,
		Email:     email,
		Token:     token,
	}
	if err := s.db.Create(&invite).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

func (s *SessionService) Participants(sessionID, ownerID uint) ([]models.Participant, error) {
	if _, err := s.GetOwned(sessionID, ownerID); err != nil {
		return nil, err
	}

	var participants []models.Participant
	if err := s.db.Where("session_id = ?", sessionID).
		Order("joined_at ASC").
		Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

type ContinuumResult struct {
	ContinuumID uint    `json:"continuumId"`
	Title       string  `json:"title"`
	Values      []int   `json:"values"`
	Count       int     `json:"count"`
	Avg         float64 `json:"avg"`
}

// Results aggregates votes per visible continuum: count and arithmetic
// mean rounded to one decimal, 0 when the continuum has no votes.
func (s *SessionService) Results(sessionID, ownerID uint) ([]ContinuumResult, error) {
	session, err := s.GetOwned(sessionID, ownerID)
	if err != nil {
		return nil, err
	}

	var continuums []models.Continuum
	if err := s.db.Where("project_id = ? AND is_hidden = ?", session.ProjectID, false).
		Order("sort_order ASC").
		Find(&continuums).Error; err != nil {
		return nil, err
	}

	var votes []models.Vote
	if err := s.db.Where("session_id = ?", sessionID).Find(&votes).Error; err != nil {
		return nil, err
	}

	byContinuum := make(map[uint][]int, len(continuums))
	for _, v := range votes {
		byContinuum[v.ContinuumID] = append(byContinuum[v.ContinuumID], v.Value)
	}

	results := make([]ContinuumResult, 0, len(continuums))
	for _, c := range continuums {
		values := byContinuum[c.ID]
		if values == nil {
			values = []int{}
		}

		avg := 0.0
		if len(values) > 0 {
			sum := 0
			for _, v := range values {
				sum += v
			}
			avg = math.Round(float64(sum)/float64(len(values))*10) / 10
		}

		results = append(results, ContinuumResult{
			ContinuumID: c.ID,
			Title:       c.Title,
			Values:      values,
			Count:       len(values),
			Avg:         avg,
		})
	}
	return results, nil
}

type ExportRow struct {
	SubmittedAt time.Time
	Participant string
	Email       string
	Continuum   string
	Value       int
}

// ExportRows joins votes to participant and continuum names for the CSV
// dump, ordered by submission time.
func (s *SessionService) ExportRows(sessionID, ownerID uint) ([]ExportRow, error) {
	if _, err := s.GetOwned(sessionID, ownerID); err != nil {
		return nil, err
	}

	var rows []ExportRow
	err := s.db.Raw(`SELECT v.submitted_at, p.name AS participant, p.email, c.title AS continuum, v.value
		FROM votes v
		JOIN participants p ON p.id = v.participant_id
		JOIN continuums c ON c.id = v.continuum_id
		WHERE v.session_id = ?
		ORDER BY v.submitted_at ASC`, sessionID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *SessionService) GetOwned(sessionID, ownerID uint) (*models.Session, error) {
	var session models.Session
	if err := s.db.Where("id = ? AND project_id IN (SELECT id FROM projects WHERE owner_id = ?)",
		sessionID, ownerID).First(&session).Error; err != nil {
		return nil, NewNotFoundError("session not found")
	}
	return &session, nil
}

func (s *SessionService) checkProjectOwner(projectID, ownerID uint) error {
	var count int64
	if err := s.db.Model(&models.Project{}).
		Where("id = ? AND owner_id = ?", projectID, ownerID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return NewNotFoundError("project not found")
	}
	return nil
}
