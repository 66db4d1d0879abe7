package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"polarity-backend/internal/middleware"
	"polarity-backend/internal/models"
	"polarity-backend/internal/services"
	"polarity-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

// newTestEnv wires the full API against a throwaway SQLite database, the
// same route layout the server binary uses.
func newTestEnv(t *testing.T) *testEnv {
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

	hub := ws.NewHub()
	authService := services.NewAuthService(db, "test-secret")

	authHandler := NewAuthHandler(authService)
	projectHandler := NewProjectHandler(services.NewProjectService(db))
	continuumHandler := NewContinuumHandler(services.NewContinuumService(db))
	sessionHandler := NewSessionHandler(services.NewSessionService(db), "http://localhost:3000", hub)
	publicHandler := NewPublicHandler(services.NewPublicService(db), hub)

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		projects := api.Group("/projects", middleware.JWTAuth(authService))
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/continuums", continuumHandler.ListContinuums)
			projects.POST("/:id/continuums", continuumHandler.CreateContinuum)
			projects.GET("/:id/sessions", sessionHandler.ListSessions)
			projects.POST("/:id/sessions", sessionHandler.CreateSession)
		}

		continuums := api.Group("/continuums", middleware.JWTAuth(authService))
		{
			continuums.PUT("/:id", continuumHandler.UpdateContinuum)
			continuums.DELETE("/:id", continuumHandler.DeleteContinuum)
		}

		sessions := api.Group("/sessions", middleware.JWTAuth(authService))
		{
			sessions.PUT("/:id/status", sessionHandler.UpdateStatus)
			sessions.POST("/:id/invite", sessionHandler.CreateInvite)
			sessions.GET("/:id/participants", sessionHandler.ListParticipants)
			sessions.GET("/:id/results", sessionHandler.GetResults)
			sessions.GET("/:id/export.csv", sessionHandler.ExportCSV)
		}

		public := api.Group("/public")
		{
			public.GET("/invite/:token", publicHandler.GetInvite)
			public.POST("/invite/:token/join", publicHandler.Join)
			public.POST("/invite/:token/submit", publicHandler.Submit)
		}
	}
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	return &testEnv{db: db, router: r}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) register(t *testing.T, email string) string {
	t.Helper()
	w := e.request(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
