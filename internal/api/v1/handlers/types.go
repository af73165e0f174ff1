package handlers

import (
	"github.com/lapirenov/backend/internal/db/models"
	"github.com/lapirenov/backend/internal/types"
)

// AdminInfo is the public shape of an admin account.
type AdminInfo struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// AdminResponse wraps an admin for login/me responses.
type AdminResponse struct {
	Admin AdminInfo `json:"admin"`
}

// ProjectResponse wraps a single project DTO.
type ProjectResponse struct {
	Project types.ProjectDTO `json:"project"`
}

// ProjectsResponse wraps a project listing.
type ProjectsResponse struct {
	Projects []types.ProjectDTO `json:"projects"`
}

// ErrorResponse is the error envelope for every non-2xx JSON response.
// Details carries the field-keyed messages of a validation failure.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func newAdminResponse(admin *models.Admin) AdminResponse {
	return AdminResponse{Admin: AdminInfo{ID: admin.ID, Email: admin.Email}}
}
