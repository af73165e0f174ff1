package services

import (
	"context"

	"github.com/lapirenov/backend/internal/db/models"
	"github.com/lapirenov/backend/internal/db/repos"
	"github.com/lapirenov/backend/internal/types"
	"github.com/lapirenov/backend/internal/uploads"
)

// Project handles project-related operations. Besides persistence it owns
// the best-effort cleanup of upload files that stop being referenced: the
// database and the upload directory are only eventually consistent, a crash
// between the two can leave an orphaned file behind.
type Project struct {
	repo    *repos.ProjectRepository
	uploads *uploads.Manager
}

// NewProjectService creates a new instance of Project
func NewProjectService(repo *repos.ProjectRepository, uploads *uploads.Manager) *Project {
	return &Project{
		repo:    repo,
		uploads: uploads,
	}
}

// List retrieves all projects ordered by id ascending
func (s *Project) List(ctx context.Context) ([]models.Project, error) {
	return s.repo.List(ctx)
}

// Get retrieves a project by id
func (s *Project) Get(ctx context.Context, id uint) (*models.Project, error) {
	return s.repo.Get(ctx, id)
}

// Create persists a new project from validated data.
func (s *Project) Create(ctx context.Context, data types.ProjectData) (*models.Project, error) {
	var project models.Project
	data.ApplyTo(&project)
	if err := s.repo.Create(ctx, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Update persists an already-merged project and removes the files of any
// images dropped from its list. previousImages is the normalized image set
// the record referenced before the merge. Image files are only ever deleted
// on the strength of the project referencing them.
func (s *Project) Update(ctx context.Context, project *models.Project, previousImages []string) error {
	if err := s.repo.Update(ctx, project); err != nil {
		return err
	}

	kept := make(map[string]struct{}, len(project.Images))
	for _, image := range project.Images {
		kept[image] = struct{}{}
	}
	for _, image := range previousImages {
		if _, ok := kept[image]; !ok {
			s.uploads.Remove(image)
		}
	}

	return nil
}

// Delete removes a project and every image file it referenced.
func (s *Project) Delete(ctx context.Context, id uint) error {
	project, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.uploads.RemoveAll(types.NormalizeProjectImages([]string(project.Images), project.Image))
	return nil
}
