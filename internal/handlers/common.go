package handlers

import (
	"log"
	"net/http"

	"polarity-backend/internal/models"
	"polarity-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type OkResponse struct {
	Ok bool `json:"ok" example:"true"`
}

// Type aliases so swag can resolve models in annotations.
type Project = models.Project
type Continuum = models.Continuum
type Session = models.Session
type Participant = models.Participant

// respondError maps service error codes onto HTTP statuses. Unexpected
// failures are logged and surface as a generic 500.
func respondError(c *gin.Context, err error) {
	if se, ok := services.AsServiceError(err); ok {
		c.JSON(statusFor(se.Code), ErrorResponse{Error: se.Message})
		return
	}
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func statusFor(code services.ErrorCode) int {
	switch code {
	case services.ErrorInvalid:
		return http.StatusBadRequest
	case services.ErrorUnauthorized:
		return http.StatusUnauthorized
	case services.ErrorForbidden:
		return http.StatusForbidden
	case services.ErrorNotFound:
		return http.StatusNotFound
	case services.ErrorConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
