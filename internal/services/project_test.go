package services

import (
	"testing"
	"time"

	"polarity-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCreateDefaultsAndValidation(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner@example.com")
	svc := NewProjectService(db)

	project, err := svc.Create(owner.ID, "Retro", -5, 5)
	require.NoError(t, err)
	assert.Equal(t, -5, project.MinValue)
	assert.Equal(t, 5, project.MaxValue)

	_, err = svc.Create(owner.ID, "Broken", 3, -3)
	se, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorInvalid, se.Code)
}

func TestProjectListScopedAndOrdered(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	svc := NewProjectService(db)

	first, err := svc.Create(owner.ID, "First", -5, 5)
	require.NoError(t, err)
	second, err := svc.Create(owner.ID, "Second", 0, 10)
	require.NoError(t, err)
	_, err = svc.Create(other.ID, "Theirs", -5, 5)
	require.NoError(t, err)

	// Touch the older project so it sorts first.
	require.NoError(t, db.Model(first).Update("updated_at", time.Now().Add(time.Minute)).Error)

	projects, err := svc.List(owner.ID)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, first.ID, projects[0].ID)
	assert.Equal(t, second.ID, projects[1].ID)
}

func TestProjectGetCrossOwner(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	svc := NewProjectService(db)

	project, err := svc.Create(owner.ID, "Private", -5, 5)
	require.NoError(t, err)

	_, err = svc.Get(project.ID, other.ID)
	se, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorNotFound, se.Code)
}

func TestProjectDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner@example.com")
	svc := NewProjectService(db)

	project := createProject(t, db, owner.ID, -5, 5)
	continuum := createContinuum(t, db, project.ID, "Pace", 1)
	session := createSession(t, db, project.ID, models.SessionStatusOpen)
	createInvite(t, db, session.ID, "tok-cascade")
	participant := models.Participant{SessionID: session.ID, Name: "Ana", JoinedAt: time.Now()}
	require.NoError(t, db.Create(&participant).Error)
	vote := models.Vote{
		SessionID:     session.ID,
		ParticipantID: participant.ID,
		ContinuumID:   continuum.ID,
		Value:         3,
		SubmittedAt:   time.Now(),
	}
	require.NoError(t, db.Create(&vote).Error)

	require.NoError(t, svc.Delete(project.ID, owner.ID))

	for _, model := range []any{
		&models.Project{}, &models.Continuum{}, &models.Session{},
		&models.Invite{}, &models.Participant{}, &models.Vote{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}
}

func TestProjectDeleteCrossOwner(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	svc := NewProjectService(db)

	project := createProject(t, db, owner.ID, -5, 5)

	err := svc.Delete(project.ID, other.ID)
	se, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorNotFound, se.Code)

	var count int64
	require.NoError(t, db.Model(&models.Project{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
