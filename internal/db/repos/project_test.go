package repos

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lapirenov/backend/internal/db/models"
)

func (s *RepositoryTestSuite) TestCreateAndGetProject() {
	created := s.createTestProject("Renovation cuisine")
	s.NotZero(created.ID)

	found, err := s.projectRepo.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Renovation cuisine", found.Title)
	s.Equal(models.StringList{"/uploads/a.jpg", "/uploads/b.jpg"}, found.Images)
	s.Equal(models.StringList{"Chene massif", "Quartz"}, found.Materials)
	s.False(found.CreatedAt.IsZero())
}

func (s *RepositoryTestSuite) TestGetProjectNotFound() {
	_, err := s.projectRepo.Get(s.ctx, 9999)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (s *RepositoryTestSuite) TestListProjectsOrderedByID() {
	s.createTestProject("premier")
	s.createTestProject("deuxieme")
	s.createTestProject("troisieme")

	projects, err := s.projectRepo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(projects, 3)
	s.Equal("premier", projects[0].Title)
	s.Equal("deuxieme", projects[1].Title)
	s.Equal("troisieme", projects[2].Title)
	s.Less(projects[0].ID, projects[1].ID)
}

func (s *RepositoryTestSuite) TestUpdateProject() {
	project := s.createTestProject("avant")

	project.Title = "apres"
	project.Images = models.StringList{"/uploads/c.jpg"}
	project.Image = "/uploads/c.jpg"
	s.Require().NoError(s.projectRepo.Update(s.ctx, project))

	found, err := s.projectRepo.Get(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Equal("apres", found.Title)
	s.Equal(models.StringList{"/uploads/c.jpg"}, found.Images)
}

func (s *RepositoryTestSuite) TestDeleteProject() {
	project := s.createTestProject("ephemere")

	s.Require().NoError(s.projectRepo.Delete(s.ctx, project.ID))

	_, err := s.projectRepo.Get(s.ctx, project.ID)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (s *RepositoryTestSuite) TestDeleteAllProjects() {
	s.createTestProject("un")
	s.createTestProject("deux")

	s.Require().NoError(s.projectRepo.DeleteAll(s.ctx))

	projects, err := s.projectRepo.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(projects)
}
