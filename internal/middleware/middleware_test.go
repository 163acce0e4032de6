package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func echoSessionApp() *fiber.App {
	app := fiber.New()
	app.Use(Session())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(SessionID(c))
	})
	return app
}

func TestSession_DefaultsWhenHeaderMissing(t *testing.T) {
	resp, err := echoSessionApp().Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "default", string(body))
	assert.Equal(t, "default", resp.Header.Get(SessionHeader))
}

func TestSession_UsesHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(SessionHeader, "  team-a ")
	resp, err := echoSessionApp().Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "team-a", string(body))
}

func TestSession_IDOutlivesRequest(t *testing.T) {
	var kept []string
	app := fiber.New()
	app.Use(Session())
	app.Get("/", func(c *fiber.Ctx) error {
		kept = append(kept, SessionID(c))
		return c.SendStatus(fiber.StatusOK)
	})

	for _, id := range []string{"alice", "bob01", "carol"} {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(SessionHeader, id)
		_, err := app.Test(req)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"alice", "bob01", "carol"}, kept)
}

func TestSession_RejectsLongID(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(SessionHeader, strings.Repeat("x", maxSessionIDLen+1))
	resp, err := echoSessionApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSessionID_WithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(SessionID(c))
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "default", string(body))
}

func TestRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Use(Session())
	app.Get("/", RateLimiter(1, time.Minute), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "too many requests, slow down", gjson.GetBytes(body, "error").String())

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(SessionHeader, "other")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
