package handlers

import (
	"net/http"

	"teamwork-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PreferenceHandler handles HTTP requests for per-person preferences
type PreferenceHandler struct {
	preferenceService service.PreferenceServiceInterface
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(preferenceService service.PreferenceServiceInterface) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// SelectedTeam handles GET /preferences/selected-team
func (h *PreferenceHandler) SelectedTeam(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	teamID, err := h.preferenceService.SelectedTeam(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"team_id": teamID})
}

// SetSelectedTeamRequest represents the request to remember a team selection
type SetSelectedTeamRequest struct {
	TeamID string `json:"team_id"`
}

// SetSelectedTeam handles PUT /preferences/selected-team
func (h *PreferenceHandler) SetSelectedTeam(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	var req SetSelectedTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.preferenceService.SetSelectedTeam(c.Request.Context(), sess, req.TeamID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Selection saved"})
}
