package handlers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lapirenov/backend/internal/types"
)

var errMalformedBody = errors.New("Corps de requete invalide.")

// requestBodyMap flattens the request body into a key/value map so payload
// building can key off which fields the client actually sent. Multipart
// text fields win when a multipart form is present; otherwise the body is
// decoded as JSON. A repeated multipart field becomes a string slice.
func requestBodyMap(c *fiber.Ctx, form *multipart.Form) (map[string]interface{}, error) {
	body := map[string]interface{}{}

	if form != nil {
		for key, values := range form.Value {
			switch len(values) {
			case 0:
			case 1:
				body[key] = values[0]
			default:
				body[key] = values
			}
		}
		return body, nil
	}

	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return nil, errMalformedBody
		}
	}
	return body, nil
}

func bodyString(body map[string]interface{}, key string) string {
	s, _ := body[key].(string)
	return s
}

// buildProjectPayload assembles the candidate payload for validation.
// Image sources are ranked: freshly uploaded files beat body-supplied
// images, which beat the legacy single image field, which beats whatever
// the existing record already referenced (updates only).
func buildProjectPayload(body map[string]interface{}, uploadedImages []string, fallbackImages []string, fallbackImage string) types.ProjectPayload {
	payload := types.ProjectPayload{}

	setString := func(dst **string, key string) {
		if _, ok := body[key]; ok {
			value := bodyString(body, key)
			*dst = &value
		}
	}
	setString(&payload.Title, "title")
	setString(&payload.Category, "category")
	setString(&payload.Description, "description")
	setString(&payload.DetailedDescription, "detailedDescription")
	setString(&payload.Timeline, "timeline")
	setString(&payload.Budget, "budget")

	if _, ok := body["materials"]; ok {
		payload.Materials = body["materials"]
		payload.HasMaterials = true
	}

	bodyImage := strings.TrimSpace(bodyString(body, "image"))
	normalizedFallback := types.NormalizeProjectImages(fallbackImages, fallbackImage)

	image := bodyImage
	if image == "" && len(normalizedFallback) > 0 {
		image = normalizedFallback[0]
	}
	var images interface{} = normalizedFallback

	_, hasImagesKey := body["images"]
	_, hasImageKey := body["image"]

	switch {
	case len(uploadedImages) > 0:
		images = uploadedImages
		image = uploadedImages[0]
	case hasImagesKey:
		images = body["images"]
		image = bodyImage
	case hasImageKey:
		images = bodyImage
		image = bodyImage
	}

	payload.Images = images
	payload.HasImages = true
	payload.Image = &image

	return payload
}
