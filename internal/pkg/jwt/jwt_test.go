//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"rental-market/internal/domain/user"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/errs"
	"rental-market/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

func TestService_RoundTrip(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	svc := jwt.NewService(secret, time.Hour, clk)
	userID := uuid.New()

	token, expiresAt, err := svc.GenerateToken(userID, user.RoleOperator)
	require.NoError(t, err)
	assert.Equal(t, clk.Now().Add(time.Hour), expiresAt)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	got, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, got)
	assert.Equal(t, "operator", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestService_ValidateToken_Rejects(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	svc := jwt.NewService(secret, time.Hour, clk)

	sign := func(t *testing.T, method gojwt.SigningMethod, key any, claims gojwt.Claims) string {
		t.Helper()
		s, err := gojwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	registered := func() gojwt.RegisteredClaims {
		return gojwt.RegisteredClaims{
			Issuer:    "rental-market",
			Subject:   uuid.NewString(),
			IssuedAt:  gojwt.NewNumericDate(clk.Now()),
			ExpiresAt: gojwt.NewNumericDate(clk.Now().Add(time.Hour)),
		}
	}

	t.Run("expired", func(t *testing.T) {
		token, _, err := svc.GenerateToken(uuid.New(), user.RoleMember)
		require.NoError(t, err)
		later := jwt.NewService(secret, time.Hour, clock.NewMockClock(clk.Now().Add(2*time.Hour)))

		_, err = later.ValidateToken(token)

		assert.True(t, errs.Is(err, jwt.ErrExpiredToken))
	})

	cases := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{"garbage", func(*testing.T) string { return "not-a-token" }},
		{"other secret", func(t *testing.T) string {
			token, _, err := jwt.NewService("other-secret", time.Hour, clk).GenerateToken(uuid.New(), user.RoleMember)
			require.NoError(t, err)
			return token
		}},
		{"unsigned", func(t *testing.T) string {
			return sign(t, gojwt.SigningMethodNone, gojwt.UnsafeAllowNoneSignatureType, &jwt.Claims{Role: "admin", RegisteredClaims: registered()})
		}},
		{"foreign issuer", func(t *testing.T) string {
			rc := registered()
			rc.Issuer = "someone-else"
			return sign(t, gojwt.SigningMethodHS256, []byte(secret), &jwt.Claims{Role: "member", RegisteredClaims: rc})
		}},
		{"no expiry", func(t *testing.T) string {
			rc := registered()
			rc.ExpiresAt = nil
			return sign(t, gojwt.SigningMethodHS256, []byte(secret), &jwt.Claims{Role: "member", RegisteredClaims: rc})
		}},
		{"subject is not a user id", func(t *testing.T) string {
			rc := registered()
			rc.Subject = "admin"
			return sign(t, gojwt.SigningMethodHS256, []byte(secret), &jwt.Claims{Role: "member", RegisteredClaims: rc})
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tc.token(t))

			assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
		})
	}
}
