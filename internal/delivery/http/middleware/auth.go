package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/VinayNoogler000/RentEase/internal/delivery/http/session"
	"github.com/VinayNoogler000/RentEase/internal/usecase"
)

// LocalsUserKey is where LoadUser stores the resolved actor.
const LocalsUserKey = "currentUser"

// LoadUser resolves the session's user id into a domain.User and makes
// it available to handlers and templates. Anonymous requests pass
// through untouched; a stale session id is treated as anonymous.
func LoadUser(sessions *session.Manager, userUC *usecase.UserUseCase, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id := sessions.UserID(c); id != "" {
			user, err := userUC.GetByID(c.Context(), id)
			if err != nil {
				logger.Warn("Session user lookup failed", zap.String("user_id", id), zap.Error(err))
			} else {
				c.Locals(LocalsUserKey, user)
			}
		}
		return c.Next()
	}
}

// RequireAuth guards routes that mutate listings or reviews. Anonymous
// visitors are flashed, remembered and sent to the login page.
func RequireAuth(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sessions.UserID(c) == "" {
			sessions.SetReturnTo(c, c.OriginalURL())
			sessions.Error(c, "You must be Logged-In to Create a New Listing!")
			return c.Redirect("/login")
		}
		return c.Next()
	}
}
