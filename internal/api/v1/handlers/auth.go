// Package handlers implements the HTTP handlers for the v1 API.
package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/lapirenov/backend/internal/api/v1/middleware"
	"github.com/lapirenov/backend/internal/services"
)

// AuthHandler serves login, logout and identity-check requests.
type AuthHandler struct {
	auth     *services.Auth
	sessions *middleware.Sessions
	validate *validator.Validate
}

// NewAuthHandler creates a new instance of AuthHandler
func NewAuthHandler(auth *services.Auth, sessions *middleware.Sessions) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		validate: validator.New(),
	}
}

// LoginRequest is the login request body.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Login authenticates an admin and binds the session to the account.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Email et mot de passe requis.",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Email et mot de passe requis.",
		})
	}

	admin, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error: services.ErrInvalidCredentials.Error(),
			})
		}
		return err
	}

	if err := h.sessions.LogIn(c, admin); err != nil {
		return err
	}

	return c.JSON(newAdminResponse(admin))
}

// Logout destroys the admin session. Responds 204 even without a session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.LogOut(c); err != nil {
		return err
	}
	c.ClearCookie(middleware.SessionCookieName)
	return c.SendStatus(fiber.StatusNoContent)
}

// Me returns the admin bound to the current session. A session whose admin
// id no longer resolves to a record is destroyed on the spot.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	admin, err := h.auth.GetAdmin(c.Context(), middleware.AdminIDFromLocals(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = h.sessions.LogOut(c)
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error: "Session invalide.",
			})
		}
		return err
	}

	return c.JSON(newAdminResponse(admin))
}
