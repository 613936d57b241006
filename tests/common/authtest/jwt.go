//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"rental-market/internal/domain/user"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/config"
	"rental-market/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TokenMinter signs tokens with the application's secret, skipping login.
type TokenMinter struct {
	cfg config.JWTConfig
}

func NewTokenMinter(cfg config.JWTConfig) *TokenMinter {
	return &TokenMinter{cfg: cfg}
}

// Mint issues a token now with the configured lifetime.
func (m *TokenMinter) Mint(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return m.MintAt(t, time.Now(), m.cfg.Duration, userID, role)
}

// MintAt issues a token as if signed at issuedAt.
func (m *TokenMinter) MintAt(t *testing.T, issuedAt time.Time, ttl time.Duration, userID uuid.UUID, role user.Role) string {
	t.Helper()
	svc := jwt.NewService(m.cfg.Secret, ttl, clock.NewMockClock(issuedAt))
	token, _, err := svc.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// Expired issues a token that lapsed an hour ago.
func (m *TokenMinter) Expired(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return m.MintAt(t, time.Now().Add(-2*time.Hour), time.Hour, userID, role)
}
