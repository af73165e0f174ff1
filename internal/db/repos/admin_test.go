package repos

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lapirenov/backend/internal/db/models"
)

func (s *RepositoryTestSuite) TestUpsertCreatesAdmin() {
	admin := s.createTestAdmin("admin@lapirenov.fr")
	s.NotZero(admin.ID)

	found, err := s.adminRepo.GetByEmail(s.ctx, "admin@lapirenov.fr")
	s.Require().NoError(err)
	s.Equal(admin.ID, found.ID)
}

func (s *RepositoryTestSuite) TestUpsertRotatesPasswordHash() {
	first := s.createTestAdmin("admin@lapirenov.fr")

	rotated := &models.Admin{
		Email:        "admin@lapirenov.fr",
		PasswordHash: "$2a$12$rotatedrotatedrotatedrotatedrotatedrotatedrotated",
	}
	s.Require().NoError(s.adminRepo.Upsert(s.ctx, rotated))

	s.Equal(first.ID, rotated.ID)

	found, err := s.adminRepo.GetByID(s.ctx, first.ID)
	s.Require().NoError(err)
	s.Equal(rotated.PasswordHash, found.PasswordHash)
}

func (s *RepositoryTestSuite) TestGetAdminByEmailNotFound() {
	_, err := s.adminRepo.GetByEmail(s.ctx, "nobody@lapirenov.fr")
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (s *RepositoryTestSuite) TestGetAdminByIDNotFound() {
	_, err := s.adminRepo.GetByID(s.ctx, 404)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}
