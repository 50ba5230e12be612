package handlers

import (
	"errors"
	"net/http"

	"teamwork-backend/internal/auth"
	apperrors "teamwork-backend/internal/errors"
	"teamwork-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const contextKeySession = "session"

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps service errors onto HTTP statuses. Partition timeouts
// map to 503 with Retry-After, since they are transient by contract.
func respondError(c *gin.Context, err error) {
	var notFound *apperrors.NotFoundError
	var exists *apperrors.AlreadyExistsError
	var authErr *apperrors.AuthenticationError
	var validation *apperrors.ValidationError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &exists), errors.Is(err, apperrors.ErrMemberAlreadyInTeam):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotPermitted), errors.Is(err, apperrors.ErrMemberNotInTeam):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrPartitionUnavailable):
		c.Header("Retry-After", "5")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrWriteInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// RequireSession resolves the authenticated principal into a session and
// stores it in the request context. Must run after auth.Middleware.
func RequireSession(identityService service.IdentityServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.PrincipalFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		sess, err := identityService.Resolve(c.Request.Context(), principal)
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}

		c.Set(contextKeySession, sess)
		c.Next()
	}
}

// SessionFromContext extracts the resolved session from context
func SessionFromContext(c *gin.Context) (*service.Session, bool) {
	value, exists := c.Get(contextKeySession)
	if !exists {
		return nil, false
	}
	sess, ok := value.(*service.Session)
	return sess, ok
}

// mustSession fetches the session or writes a 401 and reports failure.
func mustSession(c *gin.Context) (*service.Session, bool) {
	sess, ok := SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	}
	return sess, ok
}
