package middleware

import (
	fiber "github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/lapirenov/backend/internal/db/models"
)

// SessionCookieName is the admin session cookie.
const SessionCookieName = "lapirenov_admin_session"

// Session value keys
const (
	sessionAdminID    = "admin_id"
	sessionAdminEmail = "admin_email"
)

// adminIDLocal is the fiber.Ctx local the guard stores the admin id under.
const adminIDLocal = "adminID"

// Sessions wraps the fiber session store with the admin login state machine:
// anonymous until a successful login, authenticated until logout or the
// session stops resolving to an admin record.
type Sessions struct {
	store *session.Store
}

// NewSessions creates a Sessions wrapper around a fiber session store.
func NewSessions(store *session.Store) *Sessions {
	return &Sessions{store: store}
}

// LogIn binds the session to an admin account.
func (s *Sessions) LogIn(c *fiber.Ctx, admin *models.Admin) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessionAdminID, admin.ID)
	sess.Set(sessionAdminEmail, admin.Email)
	return sess.Save()
}

// LogOut destroys the session. Idempotent when no session exists.
func (s *Sessions) LogOut(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return nil
	}
	return sess.Destroy()
}

// AdminID returns the admin id bound to the request's session, if any.
func (s *Sessions) AdminID(c *fiber.Ctx) (uint, bool) {
	sess, err := s.store.Get(c)
	if err != nil {
		return 0, false
	}
	id, ok := sess.Get(sessionAdminID).(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// RequireAdmin rejects requests without an authenticated admin session
// before any business logic runs.
func (s *Sessions) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := s.AdminID(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentification requise.",
			})
		}
		c.Locals(adminIDLocal, id)
		return c.Next()
	}
}

// AdminIDFromLocals returns the admin id stored by RequireAdmin.
func AdminIDFromLocals(c *fiber.Ctx) uint {
	id, _ := c.Locals(adminIDLocal).(uint)
	return id
}
