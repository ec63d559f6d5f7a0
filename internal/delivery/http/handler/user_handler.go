package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/VinayNoogler000/RentEase/internal/delivery/http/session"
	"github.com/VinayNoogler000/RentEase/internal/usecase"
	"github.com/VinayNoogler000/RentEase/internal/usecase/dto"
)

// UserHandler serves signup, login and logout. Signup logs the new
// user straight in; login honors the remembered return URL.
type UserHandler struct {
	userUC   *usecase.UserUseCase
	sessions *session.Manager
	logger   *zap.Logger
}

func NewUserHandler(userUC *usecase.UserUseCase, sessions *session.Manager, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userUC:   userUC,
		sessions: sessions,
		logger:   logger,
	}
}

// SignupForm renders the registration page.
func (h *UserHandler) SignupForm(c *fiber.Ctx) error {
	return render(c, h.sessions, "users/signup", nil)
}

// Signup registers a user and starts their session.
func (h *UserHandler) Signup(c *fiber.Ctx) error {
	in := dto.SignupInput{
		Username: strings.TrimSpace(c.FormValue("username")),
		Email:    strings.TrimSpace(c.FormValue("email")),
		Password: c.FormValue("password"),
	}

	user, outcome, err := h.userUC.Signup(c.Context(), in)
	if err != nil {
		return err
	}
	h.sessions.FlashOutcome(c, outcome)
	if outcome.HasError() {
		return c.Redirect("/signup")
	}

	if err := h.sessions.SignIn(c, user.ID); err != nil {
		return err
	}
	return c.Redirect("/listings")
}

// LoginForm renders the login page.
func (h *UserHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, h.sessions, "users/login", nil)
}

// Login authenticates and sends the user back where they were headed.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	in := dto.LoginInput{
		Username: strings.TrimSpace(c.FormValue("username")),
		Password: c.FormValue("password"),
	}

	user, outcome, err := h.userUC.Login(c.Context(), in)
	if err != nil {
		return err
	}
	h.sessions.FlashOutcome(c, outcome)
	if outcome.HasError() {
		return c.Redirect("/login")
	}

	if err := h.sessions.SignIn(c, user.ID); err != nil {
		return err
	}

	if returnTo := h.sessions.PopReturnTo(c); returnTo != "" {
		return c.Redirect(returnTo)
	}
	return c.Redirect("/listings")
}

// Logout drops the session.
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.SignOut(c); err != nil {
		h.logger.Warn("Session destroy failed", zap.Error(err))
	}
	h.sessions.Success(c, "Logged you out!")
	return c.Redirect("/listings")
}
