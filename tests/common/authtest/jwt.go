//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"booking-calendar-sync/internal/pkg/clock"
	"booking-calendar-sync/internal/pkg/config"
	"booking-calendar-sync/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// SessionToken signs a dashboard session the way the login endpoint does.
func SessionToken(t *testing.T, cfg config.JWTConfig, username string) string {
	t.Helper()
	service := jwt.NewService(cfg.Secret, cfg.Duration, clock.NewRealClock(time.UTC))
	token, err := service.GenerateToken(username)
	require.NoError(t, err)
	return token
}

// ExpiredSessionToken is issued far enough in the past to have expired already.
func ExpiredSessionToken(t *testing.T, cfg config.JWTConfig, username string) string {
	t.Helper()
	issued := clock.NewMockClock(time.Now().Add(-2 * cfg.Duration))
	token, err := jwt.NewService(cfg.Secret, cfg.Duration, issued).GenerateToken(username)
	require.NoError(t, err)
	return token
}
