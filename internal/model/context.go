// Package model defines the core domain types shared across the workflow:
// the business context, variable recommendations, record sets, insight
// reports, session events, and the session aggregate itself.
package model

import "strings"

// BusinessContext describes the client business being analyzed. It is
// captured once at the business-context step and treated as immutable for
// the rest of the session; a restart replaces it wholesale.
type BusinessContext struct {
	BusinessName      string   `json:"business_name"`
	Industry          string   `json:"industry"`
	BusinessModel     string   `json:"business_model"`
	TargetCustomer    string   `json:"target_customer"`
	BrandPositioning  string   `json:"brand_positioning"`
	Goals             []string `json:"goals"`
	AdditionalContext string   `json:"additional_context"`
}

// IsEmpty reports whether no context field has been filled in.
func (c BusinessContext) IsEmpty() bool {
	return c.BusinessName == "" &&
		c.Industry == "" &&
		c.BusinessModel == "" &&
		c.TargetCustomer == "" &&
		c.BrandPositioning == "" &&
		len(c.Goals) == 0 &&
		c.AdditionalContext == ""
}

// GoalsLine joins the selected goals for display and prompt embedding.
func (c BusinessContext) GoalsLine() string {
	return strings.Join(c.Goals, "; ")
}

// OrNotSpecified substitutes a placeholder for empty context fields so
// prompts remain well-formed even when the context was skipped.
func OrNotSpecified(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Not specified"
	}
	return value
}
