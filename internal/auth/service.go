package auth

import (
	"fmt"
	"time"

	"teamwork-backend/internal/config"
	"teamwork-backend/internal/store"

	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 24 * time.Hour

// Claims represents JWT token claims. ServerAdmin is baked into the token at
// issue time: plain users and server administrators authenticate through
// different credential paths, and the flag records which path was taken.
type Claims struct {
	Identity    string `json:"identity"`
	ServerAdmin bool   `json:"server_admin"`
	jwt.RegisteredClaims
}

// Service issues and validates bearer tokens and maps them to principals.
type Service struct {
	config *config.Config
}

// NewService creates a new authentication service
func NewService(cfg *config.Config) *Service {
	return &Service{config: cfg}
}

// TokenResponse represents the response for a successful login
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
	Identity    string `json:"identity"`
	ServerAdmin bool   `json:"serverAdmin"`
}

// GenerateToken creates a signed JWT for an identity. Identities listed in
// the server's admin set get the ServerAdmin claim.
func (s *Service) GenerateToken(identity string) (*TokenResponse, error) {
	if identity == "" {
		return nil, fmt.Errorf("identity cannot be empty")
	}

	now := time.Now()
	claims := &Claims{
		Identity:    identity,
		ServerAdmin: s.config.IsAdminIdentity(identity),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "teamwork-backend",
			Subject:   identity,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(tokenLifetime.Seconds()),
		Identity:    claims.Identity,
		ServerAdmin: claims.ServerAdmin,
	}, nil
}

// ValidateToken validates and parses a JWT token
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// Principal converts validated claims into a store principal.
func (c *Claims) Principal() store.Principal {
	return store.Principal{Identity: c.Identity, ServerAdmin: c.ServerAdmin}
}
