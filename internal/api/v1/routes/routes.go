// Package routes wires the v1 handlers to their paths.
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lapirenov/backend/internal/api/v1/handlers"
	"github.com/lapirenov/backend/internal/api/v1/middleware"
)

// Handlers groups everything route registration needs.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Projects *handlers.ProjectHandler
	Sessions *middleware.Sessions
}

// Register registers the API routes on the app
func Register(app *fiber.App, h Handlers) {
	api := app.Group("/api")

	api.Get("/health", handlers.Health)
	api.Get("/projects", h.Projects.List)

	admin := api.Group("/admin")
	admin.Post("/login", h.Auth.Login)
	admin.Post("/logout", h.Auth.Logout)

	guard := h.Sessions.RequireAdmin()
	admin.Get("/me", guard, h.Auth.Me)
	admin.Get("/projects", guard, h.Projects.List)
	admin.Post("/projects", guard, h.Projects.Create)
	admin.Put("/projects/:id", guard, h.Projects.Update)
	admin.Delete("/projects/:id", guard, h.Projects.Delete)
}
