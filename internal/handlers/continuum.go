package handlers

import (
	"net/http"

	"polarity-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ContinuumHandler struct {
	continuumService *services.ContinuumService
}

func NewContinuumHandler(continuumService *services.ContinuumService) *ContinuumHandler {
	return &ContinuumHandler{continuumService: continuumService}
}

type CreateContinuumRequest struct {
	Title     string `json:"title" binding:"required,min=1,max=255" example:"risk-averse <> risk-seeking"`
	LeftAim   string `json:"leftAim" example:"risk-averse"`
	RightAim  string `json:"rightAim" example:"risk-seeking"`
	LeftDesc  string `json:"leftDesc"`
	RightDesc string `json:"rightDesc"`
}

type UpdateContinuumRequest struct {
	Title     *string `json:"title"`
	LeftAim   *string `json:"leftAim"`
	RightAim  *string `json:"rightAim"`
	LeftDesc  *string `json:"leftDesc"`
	RightDesc *string `json:"rightDesc"`
	IsHidden  *bool   `json:"isHidden"`
}

// ListContinuums godoc
// @Summary      List continuums of a project
// @Tags         continuums
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Project ID"
// @Success      200 {array} Continuum
// @Failure      404 {object} ErrorResponse
// @Router       /api/projects/{id}/continuums [get]
func (h *ContinuumHandler) ListContinuums(c *gin.Context) {
	userID := c.GetUint("user_id")
	projectID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid project id"})
		return
	}

	continuums, err := h.continuumService.ListByProject(projectID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, continuums)
}

// CreateContinuum godoc
// @Summary      Create a continuum
// @Description  Append a continuum to the project; sort order is assigned automatically
// @Tags         continuums
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Project ID"
// @Param        request body CreateContinuumRequest true "Continuum data"
// @Success      201 {object} Continuum
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/projects/{id}/continuums [post]
func (h *ContinuumHandler) CreateContinuum(c *gin.Context) {
	userID := c.GetUint("user_id")
	projectID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid project id"})
		return
	}

	var req CreateContinuumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	continuum, err := h.continuumService.Create(projectID, userID, services.CreateContinuumInput{
		Title:     req.Title,
		LeftAim:   req.LeftAim,
		RightAim:  req.RightAim,
		LeftDesc:  req.LeftDesc,
		RightDesc: req.RightDesc,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, continuum)
}

// UpdateContinuum godoc
// @Summary      Update a continuum
// @Description  Partial update; omitted fields keep their current values
// @Tags         continuums
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Continuum ID"
// @Param        request body UpdateContinuumRequest true "Fields to update"
// @Success      200 {object} Continuum
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/continuums/{id} [put]
func (h *ContinuumHandler) UpdateContinuum(c *gin.Context) {
	userID := c.GetUint("user_id")
	continuumID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid continuum id"})
		return
	}

	var req UpdateContinuumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	continuum, err := h.continuumService.Update(continuumID, userID, services.UpdateContinuumInput{
		Title:     req.Title,
		LeftAim:   req.LeftAim,
		RightAim:  req.RightAim,
		LeftDesc:  req.LeftDesc,
		RightDesc: req.RightDesc,
		IsHidden:  req.IsHidden,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, continuum)
}

// DeleteContinuum godoc
// @Summary      Delete a continuum
// @Description  Remove the continuum and its votes
// @Tags         continuums
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Continuum ID"
// @Success      200 {object} OkResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/continuums/{id} [delete]
func (h *ContinuumHandler) DeleteContinuum(c *gin.Context) {
	userID := c.GetUint("user_id")
	continuumID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid continuum id"})
		return
	}

	if err := h.continuumService.Delete(continuumID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, OkResponse{Ok: true})
}
