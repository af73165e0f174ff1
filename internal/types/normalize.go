package types

import (
	"encoding/json"
	"strings"
)

func trimToString(value interface{}) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// uniqueNonEmpty trims every value, drops empties and duplicates, and
// preserves first-seen order.
func uniqueNonEmpty(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	output := make([]string, 0, len(values))

	for _, value := range values {
		normalized := strings.TrimSpace(value)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		output = append(output, normalized)
	}

	return output
}

// parseImageListJSON parses value as a JSON array of strings. Returns nil
// unless the string looks like an array literal and parses cleanly.
func parseImageListJSON(value string) []string {
	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
		return nil
	}

	var raw []interface{}
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return nil
	}

	parsed := make([]string, 0, len(raw))
	for _, item := range raw {
		parsed = append(parsed, trimToString(item))
	}
	return parsed
}

func splitLines(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
}

// toStringSlice coerces the heterogeneous list shapes clients send into a
// plain string slice. Non-string elements collapse to empty strings and are
// dropped later.
func toStringSlice(input interface{}) ([]string, bool) {
	switch v := input.(type) {
	case []string:
		return v, true
	case []interface{}:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = trimToString(item)
		}
		return out, true
	}
	return nil, false
}

// NormalizeImageList canonicalizes an image list submitted as an array, a
// JSON array literal, or a newline-delimited string into a deduplicated
// ordered list of non-empty trimmed entries.
func NormalizeImageList(input interface{}) []string {
	if list, ok := toStringSlice(input); ok {
		return uniqueNonEmpty(list)
	}

	if s, ok := input.(string); ok {
		if parsed := parseImageListJSON(s); parsed != nil {
			return uniqueNonEmpty(parsed)
		}
		return uniqueNonEmpty(splitLines(s))
	}

	return []string{}
}

// NormalizeProjectImages merges an image list with the legacy single-image
// field, still deduplicated.
func NormalizeProjectImages(images interface{}, image string) []string {
	merged := append(NormalizeImageList(images), strings.TrimSpace(image))
	return uniqueNonEmpty(merged)
}

// NormalizeMaterials canonicalizes a materials list submitted as an array or
// a newline/comma-delimited string. Unlike images, entries are not
// deduplicated.
func NormalizeMaterials(input interface{}) []string {
	if list, ok := toStringSlice(input); ok {
		out := make([]string, 0, len(list))
		for _, item := range list {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	}

	if s, ok := input.(string); ok {
		parts := strings.FieldsFunc(s, func(r rune) bool {
			return r == '\n' || r == '\r' || r == ','
		})
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	}

	return []string{}
}
