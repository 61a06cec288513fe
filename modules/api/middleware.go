package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/work-tracker/modules/session"
)

const (
	// SessionContextKey is the key used to store the session's display
	// name in the Fiber context.
	SessionContextKey = "display_name"
)

// SessionMiddleware creates a middleware that resolves the bearer
// token into a display name. Handlers read the name from the context;
// nothing identity-related lives in shared state.
func SessionMiddleware(sessionAdapter session.SessionPort) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Authorization header is required",
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Invalid authorization header format. Use: Bearer <token>",
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Token is required",
			})
		}

		resolved, err := sessionAdapter.ResolveSession(c.UserContext(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Invalid or expired token",
			})
		}

		c.Locals(SessionContextKey, resolved.DisplayName)

		return c.Next()
	}
}

// sessionName reads the resolved display name from the Fiber context.
func sessionName(c *fiber.Ctx) string {
	name, _ := c.Locals(SessionContextKey).(string)
	return name
}
