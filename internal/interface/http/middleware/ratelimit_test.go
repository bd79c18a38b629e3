package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestRateLimiter_AllowPerKey(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: rate.Every(time.Hour), Burst: 2, IdleTimeout: time.Minute})
	defer rl.Stop()

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"), "other clients keep their own bucket")
	assert.Equal(t, 2, rl.VisitorCount())
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: rate.Every(time.Hour), Burst: 1, IdleTimeout: time.Minute})
	defer rl.Stop()

	rl.Allow("a")
	rl.evictIdle(time.Now())
	assert.Equal(t, 1, rl.VisitorCount())

	rl.evictIdle(time.Now().Add(2 * time.Minute))
	assert.Equal(t, 0, rl.VisitorCount())
	assert.True(t, rl.Allow("a"), "evicted client starts with a fresh bucket")
}

func TestRateLimiter_Handler(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimiterConfig(0.001, 1))
	defer rl.Stop()

	app := fiber.New()
	app.Use(rl.Handler())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 1})
	rl.Stop()
	rl.Stop()
}
