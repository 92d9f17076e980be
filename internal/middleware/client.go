package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const ClientIDKey = "clientID"

// EnsureClientID resolves the caller's client ID from the X-Client-ID
// header or the clientId query parameter. Anonymous callers get a fresh
// ID, echoed back in the X-Client-ID response header.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(ClientIDKey) != nil {
			return c.Next()
		}

		clientID := c.Get("X-Client-ID")
		if clientID == "" {
			clientID = c.Query("clientId")
		}
		if clientID == "" {
			clientID = uuid.NewString()
			c.Set("X-Client-ID", clientID)
		}

		// Store in context for this request
		c.Locals(ClientIDKey, clientID)
		return c.Next()
	}
}
