package services

import (
	"testing"
	"time"

	"polarity-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCreateValidatesType(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner@example.com")
	project := createProject(t, db, owner.ID, -5, 5)
	svc := NewSessionService(db)

	session, err := svc.Create(project.ID, owner.ID, models.SessionTypeBaseline)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusOpen, session.Status)

	_, err = svc.Create(project.ID, owner.ID, "retrospective")
	se, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorInvalid, se.Code)
}

func TestSessionUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner@example.com")
	project := createProject(t, db, owner.ID, -5, 5)
	svc := NewSessionService(db)

	session := createSession(t, db, project.ID, models.SessionStatusOpen)

	updated, err := svc.UpdateStatus(session.ID, owner.ID, models.SessionStatusClosed)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusClosed, updated.Status)

	var stored models.Session
	require.NoError(t, db.First(&stored, session.ID).Error)
	assert.Equal(t, models.SessionStatusClosed, stored.Status)

	// Reopening works too.
	updated, err = svc.UpdateStatus(session.ID, owner.ID, models.SessionStatusOpen)
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusOpen, updated.Status)

	_, err = svc.UpdateStatus(session.ID, owner.ID, "paused")
	se, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorInvalid, se.Code)
}

func TestSessionCreateInvite(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	project := createProject(t, db, owner.ID, -5, 5)
	svc := NewSessionService(db)

	session := createSession(t, db, project.ID, models.SessionStatusOpen)

	invite, err := svc.CreateInvite(session.ID, owner.ID, "guest@example.com")
	require.NoError(t, err)
	assert.Len(t, invite.Token, 24)
	assert.Equal(t, "guest@example.com", invite.Email)

	second, err := svc.CreateInvite(session.ID, owner.ID, "guest@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, invite.Token, second.Token)

	_, err = svc.CreateInvite(session.ID, other.ID, "guest@example.com")
	se, ok := AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, ErrorNotFound, se.Code)
}

func TestSessionResults(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner@example.com")
	project := createProject(t, db, owner.ID, -5, 5)
	svc := NewSessionService(db)

	voted := createContinuum(t, db, project.ID, "Pace", 1)
	empty := createContinuum(t, db, project.ID, "Risk", 2)
	hidden := createContinuum(t, db, project.ID, "Secret", 3)
	require.NoError(t, db.Model(hidden).Update("is_hidden", true).Error)

	session := createSession(t, db, project.ID, models.SessionStatusOpen)
	for i, value := range []int{2, 4, 5} {
		participant := models.Participant{SessionID: session.ID, Name: "P", JoinedAt: time.Now()}
		require.NoError(t, db.Create(&participant).Error)
		vote := models.Vote{
			SessionID:     session.ID,
			ParticipantID: participant.ID,
			ContinuumID:   voted.ID,
			Value:         value,
			SubmittedAt:   time.Now().Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, db.Create(&vote).Error)
	}

	results, err := svc.Results(session.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, voted.ID, results[0].ContinuumID)
	assert.Equal(t, []int{2, 4, 5}, results[0].Values)
	assert.Equal(t, 3, results[0].Count)
	assert.Equal(t, 3.7, results[0].Avg)

	assert.Equal(t, empty.ID, results[1].ContinuumID)
	assert.Equal(t, []int{}, results[1].Values)
	assert.Equal(t, 0, results[1].Count)
	assert.Equal(t, 0.0, results[1].Avg)
}

func TestSessionExportRows(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner@example.com")
	project := createProject(t, db, owner.ID, -5, 5)
	svc := NewSessionService(db)

	continuum := createContinuum(t, db, project.ID, "Pace", 1)
	session := createSession(t, db, project.ID, models.SessionStatusOpen)

	base := time.Now().Truncate(time.Second)
	names := []string{"Late", "Early"}
	offsets := []time.Duration{time.Minute, 0}
	for i := range names {
		participant := models.Participant{SessionID: session.ID, Name: names[i], JoinedAt: base}
		require.NoError(t, db.Create(&participant).Error)
		vote := models.Vote{
			SessionID:     session.ID,
			ParticipantID: participant.ID,
			ContinuumID:   continuum.ID,
			Value:         i,
			SubmittedAt:   base.Add(offsets[i]),
		}
		require.NoError(t, db.Create(&vote).Error)
	}

	rows, err := svc.ExportRows(session.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Early", rows[0].Participant)
	assert.Equal(t, "Late", rows[1].Participant)
	assert.Equal(t, "Pace", rows[0].Continuum)
}

func TestSessionOwnerScoping(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	project := createProject(t, db, owner.ID, -5, 5)
	svc := NewSessionService(db)

	session := createSession(t, db, project.ID, models.SessionStatusOpen)

	for _, err := range []error{
		func() error { _, err := svc.GetOwned(session.ID, other.ID); return err }(),
		func() error { _, err := svc.Results(session.ID, other.ID); return err }(),
		func() error { _, err := svc.Participants(session.ID, other.ID); return err }(),
		func() error { _, err := svc.ExportRows(session.ID, other.ID); return err }(),
	} {
		se, ok := AsServiceError(err)
		require.True(t, ok)
		assert.Equal(t, ErrorNotFound, se.Code)
	}
}
