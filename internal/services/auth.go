// Package services implements the business logic over the repositories.
package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/lapirenov/backend/internal/db/models"
	"github.com/lapirenov/backend/internal/db/repos"
)

// ErrInvalidCredentials is returned for both unknown emails and password
// mismatches so login failures never reveal which one it was.
var ErrInvalidCredentials = errors.New("Identifiants invalides.")

// BcryptCost is the work factor used when hashing admin passwords.
const BcryptCost = 12

// Auth handles admin authentication.
type Auth struct {
	admins *repos.AdminRepository
}

// NewAuthService creates a new instance of Auth
func NewAuthService(admins *repos.AdminRepository) *Auth {
	return &Auth{
		admins: admins,
	}
}

// NormalizeEmail canonicalizes a submitted email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login checks the submitted credentials against the stored hash and
// returns the matching admin.
func (s *Auth) Login(ctx context.Context, email, password string) (*models.Admin, error) {
	admin, err := s.admins.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}

// GetAdmin resolves a session's admin id back to a record.
func (s *Auth) GetAdmin(ctx context.Context, id uint) (*models.Admin, error) {
	return s.admins.GetByID(ctx, id)
}

// ProvisionAdmin creates or rotates the admin account for the given email.
// Used by the seed CLI.
func (s *Auth) ProvisionAdmin(ctx context.Context, email, password string) (*models.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Email:        NormalizeEmail(email),
		PasswordHash: string(hash),
	}
	if err := s.admins.Upsert(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}
