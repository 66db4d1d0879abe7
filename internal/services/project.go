package services

import (
	"polarity-backend/internal/models"

	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

func (s *ProjectService) List(ownerID uint) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) Create(ownerID uint, name string, minValue, maxValue int) (*models.Project, error) {
	if minValue > maxValue {
		return nil, NewInvalidError("minValue must not exceed maxValue")
	}

	project := models.Project{
		OwnerID:  ownerID,
		Name:     name,
		MinValue: minValue,
		MaxValue: maxValue,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) Get(projectID, ownerID uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.Where("id = ? AND owner_id = ?", projectID, ownerID).
		First(&project).Error; err != nil {
		return nil, NewNotFoundError("project not found")
	}
	return &project, nil
}

// Delete removes the project and every dependent row. The store carries no
// cascade constraints across the survey tables, so deletes run explicitly
// in dependency order inside one transaction.
func (s *ProjectService) Delete(projectID, ownerID uint) error {
	if _, err := s.Get(projectID, ownerID); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		sessionIDs := tx.Model(&models.Session{}).Select("id").Where("project_id = ?", projectID)

		if err := tx.Where("session_id IN (?)", sessionIDs).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id IN (?)", sessionIDs).Delete(&models.Participant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id IN (?)", sessionIDs).Delete(&models.Invite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Continuum{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, projectID).Error
	})
}
