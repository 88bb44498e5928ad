package constants

import (
	"strings"
)

type Category string

const (
	Groceries    Category = "Groceries"
	Household    Category = "Household"
	PersonalCare Category = "Personal Care"
	Electronics  Category = "Electronics"
	Clothing     Category = "Clothing"
	Dining       Category = "Dining"
	Health       Category = "Health"
	Other        Category = "Other"
)

var allCategories = []Category{
	Groceries,
	Household,
	PersonalCare,
	Electronics,
	Clothing,
	Dining,
	Health,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// IsValid reports whether label is one of the fixed category labels.
func IsValid(label string) bool {
	for _, cat := range allCategories {
		if label == string(cat) {
			return true
		}
	}
	return false
}

func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"grocery":       Groceries,
		"food":          Groceries,
		"supermarket":   Groceries,
		"restaurant":    Dining,
		"cafe":          Dining,
		"fast food":     Dining,
		"pharmacy":      Health,
		"medicine":      Health,
		"hygiene":       PersonalCare,
		"cosmetics":     PersonalCare,
		"apparel":       Clothing,
		"tech":          Electronics,
		"home supplies": Household,
		"cleaning":      Household,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
