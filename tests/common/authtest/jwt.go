//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"restaurant-booking/internal/domain/user"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, access time.Duration) *jwt.Service {
	t.Helper()
	refreshDuration, err := time.ParseDuration(h.cfg.RefreshTokenDuration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, access, refreshDuration)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, email string, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	token, err := h.service(t, duration).GenerateAccessToken(user.Principal{ID: userID, Email: email, Role: role})
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateRefreshToken(t *testing.T, userID uuid.UUID, email string, role user.Role) string {
	t.Helper()
	token, err := h.service(t, time.Minute).GenerateRefreshToken(user.Principal{ID: userID, Email: email, Role: role})
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(t, time.Millisecond).GenerateAccessToken(user.Principal{ID: userID, Email: "expired@example.com", Role: role})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
