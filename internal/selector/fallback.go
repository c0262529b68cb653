package selector

import "github.com/brandresponse/brandintel/internal/model"

// FallbackVariables returns the fixed safety-net recommendation list used
// whenever the completion call or response parsing fails. The list must
// stay stable: downstream analysis of session logs relies on recognizing
// it to measure completion-service reliability.
func FallbackVariables() []model.VariableRecommendation {
	return []model.VariableRecommendation{
		{Variable: "AGE", Category: model.CategoryDemographics, Rationale: "Core demographic for market segmentation"},
		{Variable: "INCOME_HH", Category: model.CategoryEconomic, Rationale: "Essential for pricing and positioning strategy"},
		{Variable: "EDUCATION", Category: model.CategoryLifestyle, Rationale: "Indicates sophistication and messaging approach"},
		{Variable: "URBANICITY", Category: model.CategoryLifestyle, Rationale: "Geographic preferences affect brand positioning"},
		{Variable: "MARITAL_STATUS", Category: model.CategoryDemographics, Rationale: "Life stage affects purchasing behavior"},
		{Variable: "CHILDREN_HH", Category: model.CategoryDemographics, Rationale: "Family status impacts product usage patterns"},
		{Variable: "OCCUPATION_TYPE", Category: model.CategoryLifestyle, Rationale: "Professional vs blue-collar preferences differ"},
		{Variable: "LIFESTYLE_CLUSTER", Category: model.CategoryLifestyle, Rationale: "Behavioral segmentation for targeted messaging"},
		{Variable: "HIGH_TECH_AFFINITY", Category: model.CategoryInterests, Rationale: "Technology adoption affects marketing channels"},
		{Variable: "GOURMET_AFFINITY", Category: model.CategoryInterests, Rationale: "Quality appreciation aligns with premium positioning"},
		{Variable: "FITNESS_AFFINITY", Category: model.CategoryInterests, Rationale: "Health consciousness affects product preferences"},
		{Variable: "READING_MAGAZINES", Category: model.CategoryShopping, Rationale: "Media consumption patterns for advertising"},
	}
}
