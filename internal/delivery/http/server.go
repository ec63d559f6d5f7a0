package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"github.com/VinayNoogler000/RentEase/internal/config"
	"github.com/VinayNoogler000/RentEase/internal/delivery/http/handler"
	"github.com/VinayNoogler000/RentEase/internal/delivery/http/middleware"
	"github.com/VinayNoogler000/RentEase/internal/delivery/http/session"
	apperrors "github.com/VinayNoogler000/RentEase/internal/pkg/errors"
	"github.com/VinayNoogler000/RentEase/internal/usecase"
)

// Server is the Fiber HTTP server rendering the listing pages.
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	sessions *session.Manager

	listingHandler *handler.ListingHandler
	reviewHandler  *handler.ReviewHandler
	userHandler    *handler.UserHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	sessions *session.Manager,
	userUC *usecase.UserUseCase,
	listingHandler *handler.ListingHandler,
	reviewHandler *handler.ReviewHandler,
	userHandler *handler.UserHandler,
) *Server {
	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		AppName:      "RentEase",
		Views:        engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		sessions:       sessions,
		listingHandler: listingHandler,
		reviewHandler:  reviewHandler,
		userHandler:    userHandler,
	}

	s.setupMiddlewares(userUC)
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares(userUC *usecase.UserUseCase) {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.MethodOverride())
	s.app.Use(middleware.LoadUser(s.sessions, userUC, s.logger))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Static("/static", "./static")

	s.app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/listings")
	})

	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Listing routes. The literal segments must be registered before
	// the :id parameter so /new, /search and /filter are not captured
	// as ids.
	listings := s.app.Group("/listings")
	listings.Get("/", s.listingHandler.Index)
	listings.Get("/new", middleware.RequireAuth(s.sessions), s.listingHandler.NewForm)
	listings.Get("/search", s.listingHandler.Search)
	listings.Get("/filter", s.listingHandler.Filter)
	listings.Post("/", middleware.RequireAuth(s.sessions), s.listingHandler.Create)
	listings.Get("/:id", s.listingHandler.Show)
	listings.Get("/:id/edit", middleware.RequireAuth(s.sessions), s.listingHandler.EditForm)
	listings.Put("/:id", middleware.RequireAuth(s.sessions), s.listingHandler.Update)
	listings.Delete("/:id", middleware.RequireAuth(s.sessions), s.listingHandler.Delete)

	// Review routes, nested under their listing.
	listings.Post("/:id/reviews", middleware.RequireAuth(s.sessions), s.reviewHandler.Create)
	listings.Delete("/:id/reviews/:reviewId", middleware.RequireAuth(s.sessions), s.reviewHandler.Delete)

	// Auth routes.
	s.app.Get("/signup", s.userHandler.SignupForm)
	s.app.Post("/signup", s.userHandler.Signup)
	s.app.Get("/login", s.userHandler.LoginForm)
	s.app.Post("/login", s.userHandler.Login)
	s.app.Get("/logout", s.userHandler.Logout)

	// Everything else is a 404 page.
	s.app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("error", fiber.Map{
			"Message": "Page Not Found!",
		}, "layouts/main")
	})
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler renders the error page for failures the handlers
// let propagate: validation, store and unexpected errors.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			code = appErr.StatusCode
			message = appErr.Message
		} else if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).Render("error", fiber.Map{
			"Message": message,
		}, "layouts/main")
	}
}
