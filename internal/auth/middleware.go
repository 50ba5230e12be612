package auth

import (
	"net/http"
	"strings"

	"teamwork-backend/internal/store"

	"github.com/gin-gonic/gin"
)

const (
	contextKeyPrincipal = "principal"
	contextKeyClaims    = "auth_claims"
)

// Middleware provides JWT authentication middleware
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth validates JWT tokens and sets the principal context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		c.Set(contextKeyPrincipal, claims.Principal())
		c.Set(contextKeyClaims, claims)

		c.Next()
	}
}

// PrincipalFromContext extracts the authenticated principal from context
func PrincipalFromContext(c *gin.Context) (store.Principal, bool) {
	value, exists := c.Get(contextKeyPrincipal)
	if !exists {
		return store.Principal{}, false
	}
	principal, ok := value.(store.Principal)
	return principal, ok
}

// ClaimsFromContext extracts the validated claims from context
func ClaimsFromContext(c *gin.Context) (*Claims, bool) {
	value, exists := c.Get(contextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*Claims)
	return claims, ok
}
