package middlewares

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rdityas/weblog-core/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLimiter struct {
	allowed bool
}

func (s *stubLimiter) Allow(key string, limit ratelimit.Rate) (bool, ratelimit.RateLimitInfo) {
	return s.allowed, ratelimit.RateLimitInfo{
		Limit:     limit.Requests,
		Remaining: 0,
		Reset:     time.Now().Add(limit.Window),
	}
}

func (s *stubLimiter) Reset(key string) error {
	return nil
}

func TestLimitByIPAllowed(t *testing.T) {
	rateLimitMiddleware := NewRateLimitMiddleware(&stubLimiter{allowed: true})

	app := fiber.New()
	app.Get("/", rateLimitMiddleware.LimitByIP(ratelimit.PublicAPILimit), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "30", resp.Header.Get("X-RateLimit-Limit"))
}

func TestLimitByIPExceeded(t *testing.T) {
	rateLimitMiddleware := NewRateLimitMiddleware(&stubLimiter{allowed: false})

	app := fiber.New()
	app.Get("/", rateLimitMiddleware.LimitByIP(ratelimit.AuthLimit), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "10", resp.Header.Get("X-RateLimit-Limit"))
}
