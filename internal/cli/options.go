package cli

// Choice lists offered during business context capture.
var (
	// Industries offered at the business context step.
	Industries = []string{
		"Food & Beverage",
		"Retail",
		"Professional Services",
		"Healthcare",
		"Technology",
		"Real Estate",
		"Other",
	}

	// BusinessModels offered at the business context step.
	BusinessModels = []string{
		"B2C Retail",
		"B2B Services",
		"Subscription",
		"Marketplace",
		"SaaS",
		"Other",
	}

	// AnalysisGoals offered as a multi-select at the business context step.
	AnalysisGoals = []string{
		"Understand customer demographics",
		"Identify market positioning opportunities",
		"Optimize marketing messaging",
		"Find new customer segments",
		"Improve targeting efficiency",
		"Competitive differentiation",
	}
)
