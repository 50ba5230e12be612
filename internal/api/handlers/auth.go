package handlers

import (
	"net/http"

	"teamwork-backend/internal/auth"
	"teamwork-backend/internal/database/models"
	"teamwork-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler handles login and token issuance
type AuthHandler struct {
	authService     *auth.Service
	identityService service.IdentityServiceInterface
	validator       *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service, identityService service.IdentityServiceInterface, validator *validator.Validate) *AuthHandler {
	return &AuthHandler{
		authService:     authService,
		identityService: identityService,
		validator:       validator,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Identity string `json:"identity" validate:"required,min=1,max=64"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token   *auth.TokenResponse `json:"token"`
	Profile *models.Person      `json:"profile"`
}

// Login handles POST /auth/login. Issues a token and runs the first-login
// provisioning flow: the person record is created if absent, server
// administrators are promoted, and presence tracking starts.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.GenerateToken(req.Identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	claims, err := h.authService.ValidateToken(token.AccessToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.identityService.Login(c.Request.Context(), claims.Principal())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, Profile: sess.Person})
}
