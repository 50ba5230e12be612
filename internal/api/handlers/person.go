package handlers

import (
	"errors"
	"net/http"

	apperrors "teamwork-backend/internal/errors"
	"teamwork-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PersonHandler handles HTTP requests for people
type PersonHandler struct{}

// NewPersonHandler creates a new person handler
func NewPersonHandler() *PersonHandler {
	return &PersonHandler{}
}

// Me handles GET /me
func (h *PersonHandler) Me(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess.Person)
}

// List handles GET /people
func (h *PersonHandler) List(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	people, err := repository.NewPersonRepository(sess.Common).List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, people)
}

// Get handles GET /people/:id
func (h *PersonHandler) Get(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	person, err := repository.NewPersonRepository(sess.Common).GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, apperrors.ErrPersonNotFound)
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

// Teams handles GET /people/:id/teams
func (h *PersonHandler) Teams(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}

	teamIDs, err := repository.NewPersonRepository(sess.Common).TeamIDs(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"team_ids": teamIDs})
}
