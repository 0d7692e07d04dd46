//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"booking-calendar-sync/internal/handler/dto/request"
	"booking-calendar-sync/internal/pkg/cookie"
	"booking-calendar-sync/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginAdmin signs in and returns the session cookie.
func LoginAdmin(t *testing.T, router *gin.Engine, username, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	session := httptest.ExtractCookie(w, cookie.AdminSessionCookieName)
	require.NotNil(t, session, "session cookie not set")
	require.NotEmpty(t, session.Value, "session cookie is empty")
	return session
}

func LogoutAdmin(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/admin/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
