package handlers

import (
	"encoding/csv"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// ExportCSV godoc
// @Summary      Export raw votes as CSV
// @Description  One row per vote joined to participant and continuum, ordered by submission time
// @Tags         sessions
// @Produce      text/csv
// @Security     BearerAuth
// @Param        id path int true "Session ID"
// @Success      200 {string} string "CSV attachment"
// @Failure      404 {object} ErrorResponse
// @Router       /api/sessions/{id}/export.csv [get]
func (h *SessionHandler) ExportCSV(c *gin.Context) {
	userID := c.GetUint("user_id")
	sessionID, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	rows, err := h.sessionService.ExportRows(sessionID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="session.csv"`)

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"submitted_at", "participant", "email", "continuum", "value"})
	for _, r := range rows {
		w.Write([]string{
			r.SubmittedAt.UTC().Format(time.RFC3339),
			r.Participant,
			r.Email,
			r.Continuum,
			strconv.Itoa(r.Value),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		// Headers are already sent; all we can do is avoid serving a
		// truncated file as if it were complete.
		log.Printf("csv export for session %d aborted: %v", sessionID, err)
		c.Abort()
	}
}
