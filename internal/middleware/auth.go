package middleware

import (
	"Vaulted/internal/services"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Context local keys holding the authenticated identity.
const (
	LocalUserID = "userID"
	LocalEmail  = "email"
)

// RequireAuth resolves the bearer token to a user identity and stores it in
// the request locals. Everything behind it can assume UserID is set.
func RequireAuth(authService services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(http.StatusUnauthorized).JSON(map[string]interface{}{"error": "unauthorized"})
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(http.StatusUnauthorized).JSON(map[string]interface{}{"error": "invalid authorization header"})
		}
		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(map[string]interface{}{"error": "invalid token"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		return c.Next()
	}
}

// UserID reads the authenticated user from the request locals.
func UserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals(LocalUserID).(uint); ok {
		return id
	}
	return 0
}
