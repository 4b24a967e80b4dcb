package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by API access tokens.
type Claims struct {
	Scopes []string `json:"scopes,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates bearer tokens for API clients.
type TokenService interface {
	// IssueToken signs an access token for subject valid for ttl.
	IssueToken(subject string, scopes []string, ttl time.Duration) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
