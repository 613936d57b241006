//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"rental-market/internal/domain/user"
	"rental-market/internal/handler/dto/request"
	resdto "rental-market/internal/handler/dto/response"
	"rental-market/tests/common/authtest"
	"rental-market/tests/common/dbtest"
	"rental-market/tests/common/httptest"
	"rental-market/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL = "/api/auth/login"
	meURL    = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	tokens *authtest.TokenMinter
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.tokens = authtest.NewTokenMinter(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "member@example.com", string(user.RoleMember))
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	inactive := dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleMember))
	dbtest.DeactivateUser(s.T(), s.DB, inactive)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "member@example.com", password: "password123", expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: "password123", expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "member@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", email: "inactive@example.com", password: "password123", expectedStatus: http.StatusForbidden},
		{name: "empty email", email: "", password: "password123", expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "member@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				return
			}
			var res resdto.LoginResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			require.NotEmpty(t, res.AccessToken)
			require.Equal(t, "Bearer", res.TokenType)
			require.Equal(t, tt.email, res.User.Email)

			var lastLogin any
			err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
			require.NoError(t, err)
			require.NotNil(t, lastLogin, "last_login not updated")
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("returns the caller without credentials", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var res resdto.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "admin@example.com", res.Email)
		require.Equal(t, string(user.RoleAdmin), res.Role)
		require.NotContains(t, w.Body.String(), "password")
	})

	s.Run("rejects missing and malformed tokens", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "invalid-token")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("rejects an expired token", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleMember))
		expired := s.tokens.Expired(t, userID, user.RoleMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("a deactivated account loses access with a live token", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "later@example.com", string(user.RoleMember))
		token := s.tokens.Mint(t, userID, user.RoleMember)
		dbtest.DeactivateUser(t, s.DB, userID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Account is inactive")
	})
}

func (s *authSuite) TestProvision() {
	const usersURL = "/api/admin/users"
	newHost := request.CreateUserRequest{
		Email:       "host@example.com",
		DisplayName: "Host",
		Password:    "correct-horse",
		Role:        string(user.RoleOperator),
	}

	s.Run("admin creates an account that can log in", func() {
		t := s.T()
		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, newHost, adminToken)
		var created resdto.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, string(user.RoleOperator), created.Role)

		token := authtest.LoginUser(t, s.Router, newHost.Email, newHost.Password)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		var me resdto.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, created.ID, me.ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, newHost, adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "email already registered")
	})

	s.Run("members cannot create accounts", func() {
		t := s.T()
		memberToken := authtest.LoginUser(t, s.Router, "member@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, newHost, memberToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
		require.Equal(t, 0, countUsersByEmail(t, s, newHost.Email))
	})
}

func countUsersByEmail(t *testing.T, s *authSuite, email string) int {
	t.Helper()
	var n int
	require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM users WHERE email = $1", email).Scan(&n))
	return n
}
