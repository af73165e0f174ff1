package types

import (
	"time"

	"github.com/lapirenov/backend/internal/db/models"
)

// ProjectPayload is the raw candidate payload built at the HTTP boundary
// before validation. Nil pointers mean the field was absent from the
// request, which drives partial validation on updates. Images and Materials
// accept the heterogeneous shapes clients send (array, JSON literal,
// delimited string), so they carry explicit presence flags instead.
type ProjectPayload struct {
	Title               *string
	Category            *string
	Image               *string
	Images              interface{}
	HasImages           bool
	Description         *string
	DetailedDescription *string
	Timeline            *string
	Budget              *string
	Materials           interface{}
	HasMaterials        bool
}

// ProjectData is the fully normalized payload produced by a successful
// validation, ready to persist.
type ProjectData struct {
	Title               string
	Category            string
	Image               string
	Images              []string
	Description         string
	DetailedDescription string
	Timeline            string
	Budget              string
	Materials           []string
}

// ApplyTo copies the validated data onto a project model.
func (d ProjectData) ApplyTo(project *models.Project) {
	project.Title = d.Title
	project.Category = d.Category
	project.Image = d.Image
	project.Images = models.StringList(d.Images)
	project.Description = d.Description
	project.DetailedDescription = d.DetailedDescription
	project.Timeline = d.Timeline
	project.Budget = d.Budget
	project.Materials = models.StringList(d.Materials)
}

// MergeInto copies onto project only the fields the payload carried,
// leaving everything else untouched. Pairs with partial validation on
// updates.
func (d ProjectData) MergeInto(project *models.Project, payload ProjectPayload) {
	if payload.Title != nil {
		project.Title = d.Title
	}
	if payload.Category != nil {
		project.Category = d.Category
	}
	if payload.HasImages || payload.Image != nil {
		project.Image = d.Image
		project.Images = models.StringList(d.Images)
	}
	if payload.Description != nil {
		project.Description = d.Description
	}
	if payload.DetailedDescription != nil {
		project.DetailedDescription = d.DetailedDescription
	}
	if payload.Timeline != nil {
		project.Timeline = d.Timeline
	}
	if payload.Budget != nil {
		project.Budget = d.Budget
	}
	if payload.HasMaterials {
		project.Materials = models.StringList(d.Materials)
	}
}

// ProjectDTO is the client-facing shape of a project.
type ProjectDTO struct {
	ID                  uint      `json:"id"`
	Title               string    `json:"title"`
	Category            string    `json:"category"`
	Image               string    `json:"image"`
	Images              []string  `json:"images"`
	Description         string    `json:"description"`
	DetailedDescription string    `json:"detailedDescription"`
	Timeline            string    `json:"timeline"`
	Budget              string    `json:"budget"`
	Materials           []string  `json:"materials"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// ToProjectDTO maps a persisted project to its client-facing shape. The
// image list is re-normalized on the way out so stale rows with an
// inconsistent legacy image field still produce a coherent DTO.
func ToProjectDTO(project *models.Project) ProjectDTO {
	images := NormalizeProjectImages([]string(project.Images), project.Image)

	image := ""
	if len(images) > 0 {
		image = images[0]
	}

	materials := []string(project.Materials)
	if materials == nil {
		materials = []string{}
	}

	return ProjectDTO{
		ID:                  project.ID,
		Title:               project.Title,
		Category:            project.Category,
		Image:               image,
		Images:              images,
		Description:         project.Description,
		DetailedDescription: project.DetailedDescription,
		Timeline:            project.Timeline,
		Budget:              project.Budget,
		Materials:           materials,
		CreatedAt:           project.CreatedAt,
		UpdatedAt:           project.UpdatedAt,
	}
}

// ToProjectDTOs maps a slice of persisted projects.
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i := range projects {
		dtos[i] = ToProjectDTO(&projects[i])
	}
	return dtos
}
