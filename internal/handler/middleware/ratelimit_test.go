//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking-calendar-sync/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_PerIP(t *testing.T) {
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	l := NewRateLimiter(config.RateLimitConfig{Requests: 2, Window: time.Minute})
	l.now = func() time.Time { return now }

	assert.True(t, l.allow("10.0.0.1"))
	assert.True(t, l.allow("10.0.0.1"))
	assert.False(t, l.allow("10.0.0.1"), "burst exhausted")
	assert.True(t, l.allow("10.0.0.2"), "other clients have their own bucket")

	now = now.Add(30 * time.Second)
	assert.True(t, l.allow("10.0.0.1"), "one token refilled after window/requests")
}

func TestRateLimiter_SweepsIdleVisitors(t *testing.T) {
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	l := NewRateLimiter(config.RateLimitConfig{Requests: 1, Window: time.Minute})
	l.now = func() time.Time { return now }

	l.allow("10.0.0.1")
	now = now.Add(visitorIdle + time.Minute)
	l.allow("10.0.0.2")

	assert.Len(t, l.visitors, 1)
	_, ok := l.visitors["10.0.0.2"]
	assert.True(t, ok)
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := NewRateLimiter(config.RateLimitConfig{Requests: 1, Window: time.Hour})

	r := gin.New()
	r.POST("/bookings", l.Middleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/bookings", nil))
	require.Equal(t, http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/bookings", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.JSONEq(t, `{"error":{"message":"Too many requests"}}`, second.Body.String())
}
