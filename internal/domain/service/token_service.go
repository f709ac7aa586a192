package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the access-token claims issued by the account service.
type Claims struct {
	UserID uuid.UUID
	Type   string
	jwt.RegisteredClaims
}

// TokenService validates access tokens. Issuing tokens belongs to the account service.
type TokenService interface {
	// ValidateAccessToken parses and verifies tokenString and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
