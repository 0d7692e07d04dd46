//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"booking-calendar-sync/internal/pkg/clock"
	"booking-calendar-sync/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC))
	svc := jwt.NewService("secret", time.Hour, clk)

	tok, err := svc.GenerateToken("owner")
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		claims, err := svc.ValidateToken(tok)
		require.NoError(t, err)
		assert.Equal(t, "owner", claims.Username)
	})

	t.Run("foreign secret", func(t *testing.T) {
		other := jwt.NewService("other", time.Hour, clk)
		_, err := other.ValidateToken(tok)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		clk.Add(2 * time.Hour)
		defer clk.Add(-2 * time.Hour)
		_, err := svc.ValidateToken(tok)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
