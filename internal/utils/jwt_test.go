package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		token, err := GenerateToken(secret, userID, "user", time.Hour)
		require.NoError(t, err)

		claims, status := ValidateToken(secret, token)
		assert.Equal(t, TokenValid, status)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "user", claims.Role)
	})

	t.Run("expired token reports a distinct status", func(t *testing.T) {
		token, err := GenerateToken(secret, userID, "user", -time.Minute)
		require.NoError(t, err)

		_, status := ValidateToken(secret, token)
		assert.Equal(t, TokenExpired, status)
	})

	t.Run("wrong secret is invalid", func(t *testing.T) {
		token, err := GenerateToken(secret, userID, "user", time.Hour)
		require.NoError(t, err)

		_, status := ValidateToken("other-secret", token)
		assert.Equal(t, TokenInvalid, status)
	})

	t.Run("garbage is invalid", func(t *testing.T) {
		_, status := ValidateToken(secret, "not.a.token")
		assert.Equal(t, TokenInvalid, status)
	})

	t.Run("role carries through", func(t *testing.T) {
		token, err := GenerateToken(secret, userID, "admin", time.Hour)
		require.NoError(t, err)

		claims, status := ValidateToken(secret, token)
		assert.Equal(t, TokenValid, status)
		assert.Equal(t, "admin", claims.Role)
	})
}
