package handlers

import (
	"net/http"

	"polarity-backend/internal/services"
	"polarity-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type PublicHandler struct {
	publicService *services.PublicService
	hub           *ws.Hub
}

func NewPublicHandler(publicService *services.PublicService, hub *ws.Hub) *PublicHandler {
	return &PublicHandler{publicService: publicService, hub: hub}
}

type JoinRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100" example:"Ada"`
	Email string `json:"email" example:"ada@example.com"`
}

type JoinResponse struct {
	ParticipantID uint `json:"participantId"`
}

type SubmitRequest struct {
	ParticipantID uint                 `json:"participantId" binding:"required"`
	Votes         []services.VoteInput `json:"votes" binding:"required"`
}

// GetInvite godoc
// @Summary      Resolve an invite token
// @Description  Session, project scale and visible continuums for the invited participant
// @Tags         public
// @Produce      json
// @Param        token path string true "Invite token"
// @Success      200 {object} services.InviteView
// @Failure      404 {object} ErrorResponse
// @Router       /api/public/invite/{token} [get]
func (h *PublicHandler) GetInvite(c *gin.Context) {
	view, err := h.publicService.GetInvite(c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Join godoc
// @Summary      Join a session
// @Description  Register as a participant; keep the returned ID for vote submission
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        token path string true "Invite token"
// @Param        request body JoinRequest true "Participant data"
// @Success      200 {object} JoinResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/public/invite/{token}/join [post]
func (h *PublicHandler) Join(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	participant, err := h.publicService.Join(c.Param("token"), req.Name, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(participant.SessionID, ws.Event{
		Type: "participant_joined",
		Data: participant,
	})

	c.JSON(http.StatusOK, JoinResponse{ParticipantID: participant.ID})
}

// Submit godoc
// @Summary      Submit votes
// @Description  Upsert one clamped vote per continuum; resubmission overwrites
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        token path string true "Invite token"
// @Param        request body SubmitRequest true "Votes"
// @Success      200 {object} OkResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/public/invite/{token}/submit [post]
func (h *PublicHandler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	sessionID, err := h.publicService.Submit(c.Param("token"), req.ParticipantID, req.Votes)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(sessionID, ws.Event{
		Type: "votes_submitted",
		Data: gin.H{"session_id": sessionID, "participant_id": req.ParticipantID},
	})

	c.JSON(http.StatusOK, OkResponse{Ok: true})
}
