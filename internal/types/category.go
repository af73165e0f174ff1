// Package types holds the project payload types, their normalization and
// validation rules, and the client-facing DTO mapping.
package types

import "strings"

// Category represents the portfolio category of a project
type Category string

// Portfolio categories. The set is fixed; the validator rejects anything
// else and the seed tooling coerces unknown values to CategoryOther.
const (
	CategoryKitchen    Category = "Kitchen"
	CategoryBathroom   Category = "Bathroom"
	CategoryLivingRoom Category = "Living Room"
	CategoryOther      Category = "Other"
)

// Categories lists every allowed category in a stable order.
var Categories = []Category{
	CategoryKitchen,
	CategoryBathroom,
	CategoryLivingRoom,
	CategoryOther,
}

// IsValidCategory reports whether value names an allowed category.
func IsValidCategory(value string) bool {
	for _, c := range Categories {
		if string(c) == value {
			return true
		}
	}
	return false
}

// CategoryOrOther returns value as a Category, coercing anything outside
// the allowed set to CategoryOther.
func CategoryOrOther(value string) Category {
	if IsValidCategory(value) {
		return Category(value)
	}
	return CategoryOther
}

// CategoryList renders the allowed categories for user-facing messages.
func CategoryList() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
