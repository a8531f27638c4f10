package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Middleware validates the Authorization header and stores the supplier
// identity in request locals. Write paths re-derive identity from here and
// never trust a client-supplied id.
func Middleware(manager *JWTManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No token provided"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token format is invalid"})
		}

		claims, err := manager.Validate(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token is invalid"})
		}

		c.Locals(supplierIDKey, claims.SupplierID)
		return c.Next()
	}
}
