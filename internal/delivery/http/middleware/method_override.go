package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// MethodOverride lets HTML forms issue PUT and DELETE requests through
// POST with a ?_method= query parameter.
func MethodOverride() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodPost {
			switch c.Query("_method") {
			case fiber.MethodPut:
				c.Method(fiber.MethodPut)
			case fiber.MethodDelete:
				c.Method(fiber.MethodDelete)
			}
		}
		return c.Next()
	}
}
