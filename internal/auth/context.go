package auth

import "github.com/gofiber/fiber/v2"

const supplierIDKey = "supplier_id"

// SupplierID returns the authenticated supplier identity placed into the
// request by the middleware, or 0 on an unauthenticated request.
func SupplierID(c *fiber.Ctx) int64 {
	if id, ok := c.Locals(supplierIDKey).(int64); ok {
		return id
	}
	return 0
}
