// Package app assembles the HTTP application from its dependencies.
package app

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"github.com/lapirenov/backend/internal/api/v1/handlers"
	"github.com/lapirenov/backend/internal/api/v1/middleware"
	"github.com/lapirenov/backend/internal/api/v1/routes"
	"github.com/lapirenov/backend/internal/config"
	"github.com/lapirenov/backend/internal/db/repos"
	"github.com/lapirenov/backend/internal/logger"
	"github.com/lapirenov/backend/internal/services"
	"github.com/lapirenov/backend/internal/uploads"
)

// SessionExpiration is the lifetime of an admin session cookie.
const SessionExpiration = 12 * time.Hour

// bodyLimit leaves room for a full gallery of maximum-size images; the
// per-file ceiling is enforced by the upload manager.
const bodyLimit = 80 * 1024 * 1024

// NewApp builds the fiber application with all routes and middleware wired
// to the given database and upload manager.
func NewApp(cfg config.Config, database *gorm.DB, uploadManager *uploads.Manager) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    bodyLimit,
		ErrorHandler: errorHandler,
	})

	app.Use(middleware.Logger())

	store := session.New(session.Config{
		KeyLookup:      "cookie:" + middleware.SessionCookieName,
		Expiration:     SessionExpiration,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   cfg.IsProduction(),
	})
	sessions := middleware.NewSessions(store)

	projectRepo := repos.NewProjectRepository(database)
	adminRepo := repos.NewAdminRepository(database)

	authService := services.NewAuthService(adminRepo)
	projectService := services.NewProjectService(projectRepo, uploadManager)

	app.Static(uploads.PublicPrefix, uploadManager.Dir())

	routes.Register(app, routes.Handlers{
		Auth:     handlers.NewAuthHandler(authService, sessions),
		Projects: handlers.NewProjectHandler(projectService, uploadManager),
		Sessions: sessions,
	})

	return app
}

// errorHandler translates uncaught errors into JSON responses. Upload
// rejections keep their specific user-facing messages; everything
// unexpected becomes a generic 500 with the details logged server-side
// only.
func errorHandler(c *fiber.Ctx, err error) error {
	if errors.Is(err, uploads.ErrNotAnImage) || errors.Is(err, uploads.ErrFileTooLarge) {
		return c.Status(fiber.StatusBadRequest).JSON(handlers.ErrorResponse{
			Error: err.Error(),
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(handlers.ErrorResponse{
			Error: fiberErr.Message,
		})
	}

	logger.ErrorWithFields("Unhandled error", map[string]interface{}{
		"method": c.Method(),
		"path":   c.Path(),
		"error":  err.Error(),
	})

	return c.Status(fiber.StatusInternalServerError).JSON(handlers.ErrorResponse{
		Error: "Erreur interne du serveur.",
	})
}
