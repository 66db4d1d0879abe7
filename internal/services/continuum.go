package services

import (
	"time"

	"polarity-backend/internal/models"

	"gorm.io/gorm"
)

type ContinuumService struct {
	db *gorm.DB
}

func NewContinuumService(db *gorm.DB) *ContinuumService {
	return &ContinuumService{db: db}
}

func (s *ContinuumService) ListByProject(projectID, ownerID uint) ([]models.Continuum, error) {
	if err := s.checkProjectOwner(projectID, ownerID); err != nil {
		return nil, err
	}

	var continuums []models.Continuum
	if err := s.db.Where("project_id = ?", projectID).
		Order("sort_order ASC, created_at ASC").
		Find(&continuums).Error; err != nil {
		return nil, err
	}
	return continuums, nil
}

type CreateContinuumInput struct {
	Title     string
	LeftAim   string
	RightAim  string
	LeftDesc  string
	RightDesc string
}

// Create assigns sort_order inside the insert itself, so two concurrent
// creates under the same project cannot read the same maximum.
func (s *ContinuumService) Create(projectID, ownerID uint, in CreateContinuumInput) (*models.Continuum, error) {
	if err := s.checkProjectOwner(projectID, ownerID); err != nil {
		return nil, err
	}

	now := time.Now()
	var id uint
	err := s.db.Raw(`INSERT INTO continuums
		(project_id, title, left_aim, right_aim, left_desc, right_desc, sort_order, is_hidden, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(sort_order), 0) + 1 FROM continuums WHERE project_id = ?),
			?, ?, ?)
		RETURNING id`,
		projectID, in.Title, in.LeftAim, in.RightAim, in.LeftDesc, in.RightDesc,
		projectID, false, now, now,
	).Scan(&id).Error
	if err != nil {
		return nil, err
	}

	var continuum models.Continuum
	if err := s.db.First(&continuum, id).Error; err != nil {
		return nil, err
	}
	return &continuum, nil
}

// UpdateContinuumInput carries a partial update; nil fields keep the
// current value.
type UpdateContinuumInput struct {
	Title     *string
	LeftAim   *string
	RightAim  *string
	LeftDesc  *string
	RightDesc *string
	IsHidden  *bool
}

func (s *ContinuumService) Update(continuumID, ownerID uint, in UpdateContinuumInput) (*models.Continuum, error) {
	continuum, err := s.getOwned(continuumID, ownerID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		continuum.Title = *in.Title
	}
	if in.LeftAim != nil {
		continuum.LeftAim = *in.LeftAim
	}
	if in.RightAim != nil {
		continuum.RightAim = *in.RightAim
	}
	if in.LeftDesc != nil {
		continuum.LeftDesc = *in.LeftDesc
	}
	if in.RightDesc != nil {
		continuum.RightDesc = *in.RightDesc
	}
	if in.IsHidden != nil {
		continuum.IsHidden = *in.IsHidden
	}

	if err := s.db.Save(continuum).Error; err != nil {
		return nil, err
	}
	return continuum, nil
}

// Delete removes the continuum and its votes only; sessions and
// participants are untouched.
func (s *ContinuumService) Delete(continuumID, ownerID uint) error {
	if _, err := s.getOwned(continuumID, ownerID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("continuum_id = ?", continuumID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Continuum{}, continuumID).Error
	})
}

func (s *ContinuumService) getOwned(continuumID, ownerID uint) (*models.Continuum, error) {
	var continuum models.Continuum
	if err := s.db.Where("id = ? AND project_id IN (SELECT id FROM projects WHERE owner_id = ?)",
		continuumID, ownerID).First(&continuum).Error; err != nil {
		return nil, NewNotFoundError("continuum not found")
	}
	return &continuum, nil
}

func (s *ContinuumService) checkProjectOwner(projectID, ownerID uint) error {
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
