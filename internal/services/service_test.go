package services

import (
	"path/filepath"
	"testing"

	"polarity-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway SQLite database. A file under t.TempDir is
// used instead of :memory: because the connection pool would otherwise hand
// each goroutine its own empty database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Continuum{},
		&models.Session{},
		&models.Invite{},
		&models.Participant{},
		&models.Vote{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createProject(t *testing.T, db *gorm.DB, ownerID uint, minValue, maxValue int) *models.Project {
	t.Helper()
	project := models.Project{OwnerID: ownerID, Name: "Team Survey", MinValue: minValue, MaxValue: maxValue}
	require.NoError(t, db.Create(&project).Error)
	return &project
}

func createContinuum(t *testing.T, db *gorm.DB, projectID uint, title string, sortOrder int) *models.Continuum {
	t.Helper()
	continuum := models.Continuum{ProjectID: projectID, Title: title, SortOrder: sortOrder}
	require.NoError(t, db.Create(&continuum).Error)
	return &continuum
}

func createSession(t *testing.T, db *gorm.DB, projectID uint, status string) *models.Session {
	t.Helper()
	session := models.Session{ProjectID: projectID, Type: models.SessionTypeBaseline, Status: status}
	require.NoError(t, db.Create(&session).Error)
	return &session
}

func createInvite(t *testing.T, db *gorm.DB, sessionID uint, token string) *models.Invite {
	t.Helper()
	invite := models.Invite{SessionID: sessionID, Email: "invitee@example.com", Token: token}
	require.NoError(t, db.Create(&invite).Error)
	return &invite
}
