package handlers

import (
	"net/http"
	"strconv"

	"polarity-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type CreateProjectRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255" example:"Team climate survey"`
	MinValue *int   `json:"minValue" example:"-5"`
	MaxValue *int   `json:"maxValue" example:"5"`
}

// ListProjects godoc
// @Summary      List projects
// @Description  Get the authenticated user's projects, most recently updated first
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Project
// @Failure      401 {object} ErrorResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID := c.GetUint("user_id")

	projects, err := h.projectService.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// CreateProject godoc
// @Summary      Create a project
// @Description  Create a project with an integer rating scale (defaults -5..5)
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateProjectRequest true "Project data"
// @Success      201 {object} Project
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	minValue, maxValue := -5, 5
	if req.MinValue != nil {
		minValue = *req.MinValue
	}
	if req.MaxValue != nil {
		maxValue = *req.MaxValue
	}

	project, err := h.projectService.Create(userID, req.Name, minValue, maxValue)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Project ID"
// @Success      200 {object} Project
// @Failure      404 {object} ErrorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID := c.GetUint("user_id")
	projectID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid project id"})
		return
	}

	project, err := h.projectService.Get(projectID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary      Delete a project
// @Description  Delete a project and all dependent continuums, sessions, invites, participants and votes
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Project ID"
// @Success      200 {object} OkResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID := c.GetUint("user_id")
	projectID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid project id"})
		return
	}

	if err := h.projectService.Delete(projectID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, OkResponse{Ok: true})
}

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
