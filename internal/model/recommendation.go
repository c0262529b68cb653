package model

import "strings"

// Category groups enrichment variables for prompt construction and display.
type Category string

// Known variable categories.
const (
	CategoryDemographics Category = "demographics"
	CategoryEconomic     Category = "economic"
	CategoryLifestyle    Category = "lifestyle"
	CategoryInterests    Category = "interests"
	CategoryShopping     Category = "shopping"
	CategoryMedia        Category = "media"
	CategoryOther        Category = "other"
)

// categoryAliases maps free-text labels the completion service tends to
// produce onto known categories.
var categoryAliases = map[string]Category{
	"demographics":        CategoryDemographics,
	"demographic":         CategoryDemographics,
	"economic":            CategoryEconomic,
	"economics":           CategoryEconomic,
	"lifestyle":           CategoryLifestyle,
	"interests":           CategoryInterests,
	"interest":            CategoryInterests,
	"interests/affinity":  CategoryInterests,
	"shopping":            CategoryShopping,
	"behavioral":          CategoryShopping,
	"purchase behavior":   CategoryShopping,
	"shopping/behavioral": CategoryShopping,
	"media":               CategoryMedia,
	"other":               CategoryOther,
}

// NormalizeCategory maps a free-text category label onto a known Category.
// Unrecognized or empty labels become CategoryOther.
func NormalizeCategory(label string) Category {
	key := strings.ToLower(strings.TrimSpace(label))
	if cat, ok := categoryAliases[key]; ok {
		return cat
	}
	return CategoryOther
}

// VariableRecommendation is one enrichment variable chosen for a business
// context, with the strategic rationale behind the choice. Recommendations
// are ordered; duplicates are not deduplicated.
type VariableRecommendation struct {
	Variable  string   `json:"variable"`
	Category  Category `json:"category"`
	Rationale string   `json:"rationale"`
}
