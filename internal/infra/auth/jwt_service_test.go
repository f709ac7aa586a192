package auth

import (
	"testing"
	"time"

	"nexttoyou/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testAccessSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func signToken(t *testing.T, method jwt.SigningMethod, secret any, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	require.NoError(t, err)

	return token
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
}

func TestJWTService_ValidateAccessToken(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	token := signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), jwt.MapClaims{
		"sub":  userID.String(),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(15 * time.Minute).Unix(),
		"type": "access",
	})

	claims, err := svc.ValidateAccessToken(token)

	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_ValidateAccessToken_Rejects(t *testing.T) {
	userID := uuid.New()
	valid := jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Minute).Unix(),
	}

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "malformed",
			token: func(*testing.T) string { return "clearly-not-a-jwt-token-format" },
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), valid)
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), jwt.MapClaims{
					"sub": userID.String(),
					"exp": time.Now().Add(-time.Minute).Unix(),
				})
			},
		},
		{
			name: "missing expiry",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), jwt.MapClaims{
					"sub": userID.String(),
				})
			},
		},
		{
			name: "refresh token",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), jwt.MapClaims{
					"sub":  userID.String(),
					"exp":  time.Now().Add(time.Minute).Unix(),
					"type": "refresh",
				})
			},
		},
		{
			name: "subject is not a uuid",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), jwt.MapClaims{
					"sub": "alice",
					"exp": time.Now().Add(time.Minute).Unix(),
				})
			},
		},
		{
			name: "unexpected algorithm",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS512, []byte(testAccessSecret), valid)
			},
		},
	}

	svc := newTestJWTService(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateAccessToken(tt.token(t))

			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
