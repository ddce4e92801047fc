package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claims carried by access tokens from the identity provider.
// UserID mirrors the "sub" claim.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Roles  []string  `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService validates bearer tokens. Issuing is only used for local
// development, the identity provider issues production tokens.
type TokenService interface {
	// IssueAccessToken signs an access token for userID with roles.
	IssueAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
