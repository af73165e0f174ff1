package handlers

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/lapirenov/backend/internal/services"
	"github.com/lapirenov/backend/internal/types"
	"github.com/lapirenov/backend/internal/uploads"
)

// ProjectHandler serves the public portfolio listing and the admin CRUD
// surface for projects.
type ProjectHandler struct {
	projects *services.Project
	uploads  *uploads.Manager
}

// NewProjectHandler creates a new instance of ProjectHandler
func NewProjectHandler(projects *services.Project, uploads *uploads.Manager) *ProjectHandler {
	return &ProjectHandler{
		projects: projects,
		uploads:  uploads,
	}
}

// List returns every project ordered by id ascending. Serves both the
// public and the admin listing; the admin route is guarded upstream.
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.projects.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(ProjectsResponse{Projects: types.ToProjectDTOs(projects)})
}

// parseForm returns the multipart form of the request, or nil when the
// request is not multipart.
func parseForm(c *fiber.Ctx) *multipart.Form {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	return form
}

// storeUploads saves the files of the request's upload slots and returns
// their public paths.
func (h *ProjectHandler) storeUploads(c *fiber.Ctx, form *multipart.Form) ([]string, error) {
	files := uploads.CollectFiles(form)
	if len(files) == 0 {
		return nil, nil
	}
	return h.uploads.Store(c, files)
}

// Create validates a new project payload and persists it. Files uploaded
// with the request are removed again on any failure path.
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	form := parseForm(c)
	uploaded, err := h.storeUploads(c, form)
	if err != nil {
		return err
	}

	body, err := requestBodyMap(c, form)
	if err != nil {
		h.uploads.RemoveAll(uploaded)
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	payload := buildProjectPayload(body, uploaded, nil, "")
	data, validationErrs := types.ValidateProjectPayload(payload, false)
	if validationErrs != nil {
		h.uploads.RemoveAll(uploaded)
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Validation impossible.",
			Details: validationErrs,
		})
	}

	project, err := h.projects.Create(c.Context(), *data)
	if err != nil {
		h.uploads.RemoveAll(uploaded)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(ProjectResponse{Project: types.ToProjectDTO(project)})
}

// Update validates changes against an existing project and persists them.
// Image files dropped from the project's list are deleted afterwards.
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	form := parseForm(c)
	uploaded, err := h.storeUploads(c, form)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		h.uploads.RemoveAll(uploaded)
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Identifiant projet invalide.",
		})
	}

	current, err := h.projects.Get(c.Context(), uint(id))
	if err != nil {
		h.uploads.RemoveAll(uploaded)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "Projet introuvable.",
			})
		}
		return err
	}

	body, err := requestBodyMap(c, form)
	if err != nil {
		h.uploads.RemoveAll(uploaded)
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	currentImages := types.NormalizeProjectImages([]string(current.Images), current.Image)
	payload := buildProjectPayload(body, uploaded, currentImages, current.Image)
	data, validationErrs := types.ValidateProjectPayload(payload, true)
	if validationErrs != nil {
		h.uploads.RemoveAll(uploaded)
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Validation impossible.",
			Details: validationErrs,
		})
	}

	data.MergeInto(current, payload)
	if err := h.projects.Update(c.Context(), current, currentImages); err != nil {
		h.uploads.RemoveAll(uploaded)
		return err
	}

	return c.JSON(ProjectResponse{Project: types.ToProjectDTO(current)})
}

// Delete removes a project and its referenced image files.
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Identifiant projet invalide.",
		})
	}

	if err := h.projects.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "Projet introuvable.",
			})
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
