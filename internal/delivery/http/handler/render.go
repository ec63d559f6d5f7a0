package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/VinayNoogler000/RentEase/internal/delivery/http/middleware"
	"github.com/VinayNoogler000/RentEase/internal/delivery/http/session"
)

// render wraps c.Render with the data every template expects: the
// one-shot alerts and the current actor for the navbar.
func render(c *fiber.Ctx, sessions *session.Manager, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Alerts"] = sessions.PopAlerts(c)
	data["CurrentUser"] = c.Locals(middleware.LocalsUserKey)
	return c.Render(view, data, "layouts/main")
}
