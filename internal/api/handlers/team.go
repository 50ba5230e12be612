package handlers

import (
	"net/http"

	"teamwork-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// TeamHandler handles HTTP requests for teams
type TeamHandler struct {
	teamService service.TeamServiceInterface
	validator   *validator.Validate
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface, validator *validator.Validate) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		validator:   validator,
	}
}

// Create handles POST /teams
func (h *TeamHandler) Create(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), sess, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// List handles GET /teams
func (h *TeamHandler) List(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	teams, err := h.teamService.List(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// Get handles GET /teams/:id
func (h *TeamHandler) Get(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	team, err := h.teamService.Get(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// Exists handles GET /teams/exists?name=
func (h *TeamHandler) Exists(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}

	exists, err := h.teamService.Exists(c.Request.Context(), sess, name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// Delete handles DELETE /teams/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), sess, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}

// Members handles GET /teams/:id/members
func (h *TeamHandler) Members(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	members, err := h.teamService.Members(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// AddMemberRequest represents the request to add a team member
type AddMemberRequest struct {
	PersonID string `json:"person_id" validate:"required"`
}

// AddMember handles POST /teams/:id/members
func (h *TeamHandler) AddMember(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.teamService.AddMember(c.Request.Context(), sess, c.Param("id"), req.PersonID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Member added successfully"})
}

// RemoveMember handles DELETE /teams/:id/members/:personId
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	if err := h.teamService.RemoveMember(c.Request.Context(), sess, c.Param("id"), c.Param("personId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}

// Stats handles GET /teams/:id/stats
func (h *TeamHandler) Stats(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	stats, err := h.teamService.Stats(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
