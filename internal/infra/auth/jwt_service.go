// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"nexttoyou/config"
	"nexttoyou/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const accessTokenType = "access"

// accessClaims mirrors the claims the account service signs into access tokens.
type accessClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// jwtService verifies HMAC-signed access tokens.
type jwtService struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateAccessToken parses tokenString and returns its claims when it is a valid access token.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	claims := &accessClaims{}

	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return nil, errors.New("access token is not valid")
	}

	// Tokens without a type predate typed tokens and are treated as access tokens.
	if claims.Type != "" && claims.Type != accessTokenType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in access token")
	}

	return &service.Claims{
		UserID:           userID,
		Type:             accessTokenType,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
