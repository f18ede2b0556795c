package middleware

import (
	"crypto/hmac"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
)

// RequireAPIKey guards back-office routes with the ADMIN_API_KEY header.
// Comparison is constant time.
func RequireAPIKey() fiber.Handler {
	return func(c *fiber.Ctx) error {
		apiKey := c.Get("X-API-Key")
		if apiKey == "" {
			return c.Status(401).JSON(fiber.Map{
				"error": "Missing API key",
			})
		}

		expected := os.Getenv("ADMIN_API_KEY")
		if expected == "" {
			// Log error but don't expose to client
			fmt.Println("ERROR: ADMIN_API_KEY not set")
			return c.Status(500).JSON(fiber.Map{
				"error": "Server configuration error",
			})
		}

		if !hmac.Equal([]byte(apiKey), []byte(expected)) {
			return c.Status(401).JSON(fiber.Map{
				"error": "Invalid API key",
			})
		}

		return c.Next()
	}
}
