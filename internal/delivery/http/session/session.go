package session

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/VinayNoogler000/RentEase/internal/config"
	"github.com/VinayNoogler000/RentEase/internal/usecase/dto"
)

const (
	keyUserID       = "user_id"
	keyFlashSuccess = "flash_success"
	keyFlashError   = "flash_error"
	keyReturnTo     = "return_to"
)

// Alerts is the one-shot flash payload consumed by the next render.
type Alerts struct {
	Success string
	Error   string
}

// Manager wraps the fiber session store with the operations the
// handlers need: actor identity, flash messages and the post-login
// return URL.
type Manager struct {
	store *session.Store
}

func NewManager(cfg config.SessionConfig, storage fiber.Storage) *Manager {
	return &Manager{
		store: session.New(session.Config{
			Storage:        storage,
			Expiration:     cfg.Expiration,
			KeyLookup:      "cookie:" + cfg.CookieName,
			CookieHTTPOnly: true,
		}),
	}
}

// UserID returns the authenticated actor's id, or "" for anonymous.
func (m *Manager) UserID(c *fiber.Ctx) string {
	sess, err := m.store.Get(c)
	if err != nil {
		return ""
	}
	id, _ := sess.Get(keyUserID).(string)
	return id
}

// SignIn binds the session to a user.
func (m *Manager) SignIn(c *fiber.Ctx, userID string) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(keyUserID, userID)
	return sess.Save()
}

// SignOut drops the session entirely; flash messages set afterwards
// start a fresh one.
func (m *Manager) SignOut(c *fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// Success queues a one-shot success message for the next render.
func (m *Manager) Success(c *fiber.Ctx, msg string) {
	m.flash(c, keyFlashSuccess, msg)
}

// Error queues a one-shot error message for the next render.
func (m *Manager) Error(c *fiber.Ctx, msg string) {
	m.flash(c, keyFlashError, msg)
}

// FlashOutcome queues whichever message the operation outcome carries.
func (m *Manager) FlashOutcome(c *fiber.Ctx, out dto.Outcome) {
	if out.Success != "" {
		m.Success(c, out.Success)
	}
	if out.Error != "" {
		m.Error(c, out.Error)
	}
}

// PopAlerts consumes the queued flash messages.
func (m *Manager) PopAlerts(c *fiber.Ctx) Alerts {
	sess, err := m.store.Get(c)
	if err != nil {
		return Alerts{}
	}

	alerts := Alerts{}
	if v, ok := sess.Get(keyFlashSuccess).(string); ok {
		alerts.Success = v
		sess.Delete(keyFlashSuccess)
	}
	if v, ok := sess.Get(keyFlashError).(string); ok {
		alerts.Error = v
		sess.Delete(keyFlashError)
	}
	if alerts != (Alerts{}) {
		_ = sess.Save()
	}
	return alerts
}

// SetReturnTo remembers where an anonymous visitor was headed so login
// can send them back.
func (m *Manager) SetReturnTo(c *fiber.Ctx, url string) {
	sess, err := m.store.Get(c)
	if err != nil {
		return
	}
	sess.Set(keyReturnTo, url)
	_ = sess.Save()
}

// PopReturnTo consumes the saved return URL, if any.
func (m *Manager) PopReturnTo(c *fiber.Ctx) string {
	sess, err := m.store.Get(c)
	if err != nil {
		return ""
	}
	url, _ := sess.Get(keyReturnTo).(string)
	if url != "" {
		sess.Delete(keyReturnTo)
		_ = sess.Save()
	}
	return url
}

func (m *Manager) flash(c *fiber.Ctx, key, msg string) {
	sess, err := m.store.Get(c)
	if err != nil {
		return
	}
	sess.Set(key, msg)
	_ = sess.Save()
}
