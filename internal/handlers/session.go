package handlers

import (
	"fmt"
	"net/http"

	"polarity-backend/internal/services"
	"polarity-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService  *services.SessionService
	frontendBaseURL string
	hub             *ws.Hub
}

func NewSessionHandler(sessionService *services.SessionService, frontendBaseURL string, hub *ws.Hub) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, frontendBaseURL: frontendBaseURL, hub: hub}
}

type CreateSessionRequest struct {
	Type string `json:"type" binding:"required" example:"baseline"`
}

type UpdateSessionStatusRequest struct {
	Status string `json:"status" binding:"required" example:"closed"`
}

type CreateInviteRequest struct {
	Email string `json:"email" binding:"required,email" example:"participant@example.com"`
}

type InviteResponse struct {
	Ok        bool   `json:"ok" example:"true"`
	InviteURL string `json:"inviteUrl" example:"http://localhost:3000/participant.html?token=..."`
}

type ResultsResponse struct {
	SessionID uint                       `json:"sessionId"`
	Results   []services.ContinuumResult `json:"results"`
}

// ListSessions godoc
// @Summary      List sessions of a project
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Project ID"
// @Success      200 {array} Session
// @Failure      404 {object} ErrorResponse
// @Router       /api/projects/{id}/sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	userID := c.GetUint("user_id")
	projectID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid project id"})
		return
	}

	sessions, err := h.sessionService.ListByProject(projectID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// CreateSession godoc
// @Summary      Create a session
// @Description  Open a baseline or comparison voting session for the project
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Project ID"
// @Param        request body CreateSessionRequest true "Session data"
// @Success      201 {object} Session
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/projects/{id}/sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	userID := c.GetUint("user_id")
	projectID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid project id"})
		return
	}

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.sessionService.Create(projectID, userID, req.Type)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// UpdateStatus godoc
// @Summary      Open or close a session
// @Description  A closed session rejects joins and vote submissions
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Param        request body UpdateSessionStatusRequest true "New status"
// @Success      200 {object} Session
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/sessions/{id}/status [put]
func (h *SessionHandler) UpdateStatus(c *gin.Context) {
	userID := c.GetUint("user_id")
	sessionID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	var req UpdateSessionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.sessionService.UpdateStatus(sessionID, userID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(session.ID, ws.Event{
		Type: "status_changed",
		Data: gin.H{"session_id": session.ID, "status": session.Status},
	})

	c.JSON(http.StatusOK, session)
}

// CreateInvite godoc
// @Summary      Invite a participant
// @Description  Issue an invite token for an email address and return the invite URL
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Param        request body CreateInviteRequest true "Invite data"
// @Success      200 {object} InviteResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/sessions/{id}/invite [post]
func (h *SessionHandler) CreateInvite(c *gin.Context) {
	userID := c.GetUint("user_id")
	sessionID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	var req CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	invite, err := h.sessionService.CreateInvite(sessionID, userID, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	inviteURL := fmt.Sprintf("%s/participant.html?token=%s", h.frontendBaseURL, invite.Token)
	c.JSON(http.StatusOK, InviteResponse{Ok: true, InviteURL: inviteURL})
}

// ListParticipants godoc
// @Summary      List participants of a session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {array} Participant
// @Failure      404 {object} ErrorResponse
// @Router       /api/sessions/{id}/participants [get]
func (h *SessionHandler) ListParticipants(c *gin.Context) {
	userID := c.GetUint("user_id")
	sessionID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	participants, err := h.sessionService.Participants(sessionID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, participants)
}

// GetResults godoc
// @Summary      Session results
// @Description  Vote count and average per visible continuum
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {object} ResultsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/sessions/{id}/results [get]
func (h *SessionHandler) GetResults(c *gin.Context) {
	userID := c.GetUint("user_id")
	sessionID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	results, err := h.sessionService.Results(sessionID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ResultsResponse{SessionID: sessionID, Results: results})
}
