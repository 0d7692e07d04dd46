//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"booking-calendar-sync/internal/handler/dto/request"
	"booking-calendar-sync/tests/common/authtest"
	"booking-calendar-sync/tests/common/httptest"
	"booking-calendar-sync/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/admin/login"
	settingsURL = "/api/admin/settings"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", username: e2e.AdminUsername, password: e2e.AdminPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", username: "root", password: e2e.AdminPassword, expectedStatus: http.StatusForbidden},
		{name: "wrong password", username: e2e.AdminUsername, password: "wrong-password", expectedStatus: http.StatusForbidden},
		{name: "empty username", username: "", password: e2e.AdminPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", username: e2e.AdminUsername, password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Username: tt.username, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func (s *authSuite) TestSessionGuardsDashboard() {
	s.Run("session cookie opens the settings", func() {
		t := s.T()
		session := authtest.LoginAdmin(t, s.Router, e2e.AdminUsername, e2e.AdminPassword)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, settingsURL, nil, []*http.Cookie{session}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("bearer token opens the settings", func() {
		t := s.T()
		token := authtest.SessionToken(t, s.Config.JWT, e2e.AdminUsername)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, settingsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("no session", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, settingsURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("expired session", func() {
		t := s.T()
		token := authtest.ExpiredSessionToken(t, s.Config.JWT, e2e.AdminUsername)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, settingsURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("logout clears the cookie", func() {
		t := s.T()
		session := authtest.LoginAdmin(t, s.Router, e2e.AdminUsername, e2e.AdminPassword)
		authtest.LogoutAdmin(t, s.Router, []*http.Cookie{session})
	})
}
