//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"restaurant-booking/internal/domain/user"
	"restaurant-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	principal := user.Principal{ID: uuid.New(), Email: "host@example.com", Role: user.RoleOperator}

	t.Run("access token round trip", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Minute, time.Hour)

		token, err := svc.GenerateAccessToken(principal)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)

		got, err := claims.Principal()
		require.NoError(t, err)
		assert.Equal(t, principal, got)
	})

	t.Run("refresh token carries its type", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Minute, time.Hour)

		token, err := svc.GenerateRefreshToken(principal)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := jwt.NewService("secret", -time.Minute, time.Hour)

		token, err := svc.GenerateAccessToken(principal)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("secret", time.Minute, time.Hour).GenerateAccessToken(principal)
		require.NoError(t, err)

		_, err = jwt.NewService("other", time.Minute, time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Minute, time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
