package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lapirenov/backend/internal/db/models"
)

// AdminRepository handles database operations for admin accounts
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new instance of AdminRepository
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{
		db: db,
	}
}

// GetByEmail retrieves an admin by email from the database
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetByID retrieves an admin by ID from the database
func (r *AdminRepository) GetByID(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// Upsert creates the admin record for the given email, or rotates its
// password hash if the record already exists.
func (r *AdminRepository) Upsert(ctx context.Context, admin *models.Admin) error {
	var existing models.Admin
	err := r.db.WithContext(ctx).Where("email = ?", admin.Email).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(admin).Error
	}
	if err != nil {
		return err
	}

	existing.PasswordHash = admin.PasswordHash
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return err
	}
	admin.ID = existing.ID
	return nil
}
