package catalog

import "github.com/brandresponse/brandintel/internal/model"

// Default returns the built-in consumer intelligence catalog. This inline
// catalog is canonical; attribute names line up with what the fixture
// enricher produces.
func Default() *Catalog {
	return New([]Entry{
		// Demographics.
		{Name: "AGE", Description: "Age of the individual in years"},
		{Name: "GENDER", Description: "Gender of the individual"},
		{Name: "MARITAL_STATUS", Description: "Married, single, divorced, or widowed"},
		{Name: "CHILDREN_HH", Description: "Number of children in the household"},
		{Name: "GENERATION", Description: "Generational cohort (Gen Z, Millennial, Gen X, Boomer)"},
		{Name: "BIRTH_YEAR", Description: "Year of birth"},
		{Name: "SINGLE_PARENT", Description: "Single parent household indicator", Category: model.CategoryDemographics},

		// Economic.
		{Name: "INCOME_HH", Description: "Estimated household income bracket"},
		{Name: "PREMIUM_INCOME_HH", Description: "Refined household income estimate for premium targeting"},
		{Name: "CREDIT_RANGE", Description: "Credit score range for the household"},
		{Name: "NET_WORTH_HH", Description: "Estimated household net worth bracket"},
		{Name: "INVESTMENTS", Description: "Likelihood the household holds investments"},
		{Name: "BANK_CARD_HOLDER", Description: "Holds one or more bank cards"},

		// Lifestyle.
		{Name: "EDUCATION", Description: "Highest education level attained"},
		{Name: "OCCUPATION_TYPE", Description: "White collar, blue collar, or other occupation class"},
		{Name: "DWELLING_TYPE", Description: "Single family, multi-family, or apartment dwelling"},
		{Name: "URBANICITY", Description: "Urban, suburban, or rural location class"},
		{Name: "HOME_OWNER", Description: "Owns rather than rents the dwelling", Category: model.CategoryLifestyle},
		{Name: "LIFESTYLE_CLUSTER", Description: "Behavioral lifestyle segment assignment", Category: model.CategoryLifestyle},

		// Interests and affinities.
		{Name: "COFFEE_AFFINITY", Description: "Affinity for coffee and cafe culture"},
		{Name: "GOURMET_AFFINITY", Description: "Affinity for gourmet food and cooking"},
		{Name: "FITNESS_AFFINITY", Description: "Affinity for fitness and exercise"},
		{Name: "HIGH_TECH_AFFINITY", Description: "Affinity for technology and gadgets"},
		{Name: "TRAVEL_AFFINITY", Description: "Affinity for travel and vacations"},
		{Name: "OUTDOOR_AFFINITY", Description: "Affinity for outdoor recreation"},
		{Name: "LUXURY_AFFINITY", Description: "Affinity for luxury goods"},
		{Name: "PETS_AFFINITY", Description: "Pet ownership and pet product affinity"},
		{Name: "HEALTH_AFFINITY", Description: "Affinity for health and wellness products"},
		{Name: "DIY_AFFINITY", Description: "Affinity for home improvement and DIY"},
		{Name: "MUSIC_INTEREST", Description: "Interest in music and live performances"},
		{Name: "SPORTS_INTEREST", Description: "Interest in sports and sporting events"},
		{Name: "READING_MAGAZINES", Description: "Regular magazine readership"},
		{Name: "READING_BOOKS", Description: "Regular book readership"},

		// Purchase behavior.
		{Name: "ONLINE_PURCHASES", Description: "Frequency of online purchasing"},
		{Name: "CATALOG_SHOPPER", Description: "Purchases from mail-order catalogs"},
		{Name: "RECENT_HOME_PURCHASE", Description: "Purchased a home in the last 12 months"},
		{Name: "RECENT_AUTO_PURCHASE", Description: "Purchased a vehicle in the last 12 months"},
		{Name: "LUXURY_PURCHASES", Description: "History of luxury goods purchases"},
	})
}
