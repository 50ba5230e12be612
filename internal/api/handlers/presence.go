package handlers

import (
	"net/http"

	"teamwork-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// PresenceHandler handles HTTP requests for presence reporting
type PresenceHandler struct {
	presenceService service.PresenceServiceInterface
	validator       *validator.Validate
}

// NewPresenceHandler creates a new presence handler
func NewPresenceHandler(presenceService service.PresenceServiceInterface, validator *validator.Validate) *PresenceHandler {
	return &PresenceHandler{
		presenceService: presenceService,
		validator:       validator,
	}
}

// ReportRequest represents a reported device position
type ReportRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// Report handles POST /presence
func (h *PresenceHandler) Report(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.presenceService.UpdateWith(c.Request.Context(), sess, req.Latitude, req.Longitude); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Presence updated"})
}
