package auth

import (
	"testing"
	"time"

	"gravity/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": uuid.NewString(),
		"iat": time.Now().Unix(),
		"exp": exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestValidateToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		tokenString := signToken(t, "test-secret", time.Now().Add(time.Hour))

		token, err := svc.ValidateToken(tokenString, "test-secret")
		require.NoError(t, err)
		assert.True(t, token.Valid)
	})

	t.Run("expired token", func(t *testing.T) {
		tokenString := signToken(t, "test-secret", time.Now().Add(-time.Hour))

		_, err := svc.ValidateToken(tokenString, "test-secret")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tokenString := signToken(t, "other-secret", time.Now().Add(time.Hour))

		_, err := svc.ValidateToken(tokenString, "test-secret")
		assert.Error(t, err)
	})
}
