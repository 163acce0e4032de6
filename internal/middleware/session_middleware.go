package middleware

import (
	"strings"

	"github.com/fadilmartias/lead-scorer/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const (
	SessionHeader    = "X-Session-ID"
	sessionLocalsKey = "session_id"
	maxSessionIDLen  = 128
)

// Session resolves the caller's session id from the X-Session-ID header.
// Requests without one share the default session.
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Header values alias fasthttp's request buffer; the id outlives the request as a store key.
		id := utils.CopyString(strings.TrimSpace(c.Get(SessionHeader)))
		if id == "" {
			id = repository.DefaultSessionID
		}
		if len(id) > maxSessionIDLen {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "X-Session-ID is too long",
			})
		}
		c.Locals(sessionLocalsKey, id)
		c.Set(SessionHeader, id)
		return c.Next()
	}
}

// SessionID returns the id stored by Session, or the default session when the middleware did not run.
func SessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(sessionLocalsKey).(string); ok && id != "" {
		return id
	}
	return repository.DefaultSessionID
}
