package types

import (
	"fmt"
	"strings"
)

// User-facing validation messages. The site serves a French audience.
const (
	msgRequired       = "Ce champ est requis."
	msgCategoryNeeded = "La categorie est requise."
	msgImagesNeeded   = "Ajoutez au moins une image."
	msgMaterialNeeded = "Ajoutez au moins un materiau."
)

// Field length limits
const (
	MaxTitleLength    = 255
	MaxTimelineLength = 120
	MaxBudgetLength   = 120
)

// ValidationErrors maps field names to user-facing messages.
type ValidationErrors map[string]string

func maxLengthMessage(max int) string {
	return fmt.Sprintf("Ce champ doit contenir %d caracteres maximum.", max)
}

func derefTrimmed(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}

func checkField(errs ValidationErrors, key, value string, max int) {
	if value == "" {
		errs[key] = msgRequired
		return
	}
	if max > 0 && len([]rune(value)) > max {
		errs[key] = maxLengthMessage(max)
	}
}

// ValidateProjectPayload normalizes every field of the payload and checks
// required-ness, category membership, and length limits. With partial set,
// only fields present on the payload are checked; images and the legacy
// image field count as one pair. On success the normalized data is
// returned; on failure a field-keyed error map and no data.
func ValidateProjectPayload(payload ProjectPayload, partial bool) (*ProjectData, ValidationErrors) {
	images := NormalizeProjectImages(payload.Images, derefTrimmed(payload.Image))

	image := ""
	if len(images) > 0 {
		image = images[0]
	}

	normalized := ProjectData{
		Title:               derefTrimmed(payload.Title),
		Category:            derefTrimmed(payload.Category),
		Image:               image,
		Images:              images,
		Description:         derefTrimmed(payload.Description),
		DetailedDescription: derefTrimmed(payload.DetailedDescription),
		Timeline:            derefTrimmed(payload.Timeline),
		Budget:              derefTrimmed(payload.Budget),
		Materials:           NormalizeMaterials(payload.Materials),
	}

	errs := ValidationErrors{}

	require := func(present bool) bool {
		return !partial || present
	}

	if require(payload.Title != nil) {
		checkField(errs, "title", normalized.Title, MaxTitleLength)
	}

	if require(payload.Category != nil) {
		switch {
		case normalized.Category == "":
			errs["category"] = msgCategoryNeeded
		case !IsValidCategory(normalized.Category):
			errs["category"] = "Categorie invalide. Valeurs autorisees: " + CategoryList()
		}
	}

	if require(payload.HasImages || payload.Image != nil) {
		if len(normalized.Images) == 0 {
			errs["images"] = msgImagesNeeded
		}
	}

	if require(payload.Description != nil) {
		checkField(errs, "description", normalized.Description, 0)
	}

	if require(payload.DetailedDescription != nil) {
		checkField(errs, "detailedDescription", normalized.DetailedDescription, 0)
	}

	if require(payload.Timeline != nil) {
		checkField(errs, "timeline", normalized.Timeline, MaxTimelineLength)
	}

	if require(payload.Budget != nil) {
		checkField(errs, "budget", normalized.Budget, MaxBudgetLength)
	}

	if require(payload.HasMaterials) && len(normalized.Materials) == 0 {
		errs["materials"] = msgMaterialNeeded
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &normalized, nil
}
