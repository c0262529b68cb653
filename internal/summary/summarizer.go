// Package summary narrates a session's event log and turns it into an
// audience-tailored workflow summary via the completion service.
package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/brandresponse/brandintel/internal/llm"
	"github.com/brandresponse/brandintel/internal/model"
)

// Audience selects the framing of the generated summary.
type Audience string

// Supported audiences.
const (
	// AudienceInternal frames the summary for partners evaluating the
	// platform itself.
	AudienceInternal Audience = "internal"
	// AudienceCustomer frames the summary for the end client who received
	// the analysis.
	AudienceCustomer Audience = "customer"
)

// Summary call settings: factual transformation, extraction temperature.
const (
	summaryMaxTokens   = 1500
	summaryTemperature = 0.3
)

// Summarizer generates workflow summaries from session event logs.
type Summarizer struct {
	client llm.Client
}

// New creates a Summarizer over the given completion client.
func New(client llm.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Narrate converts the event stream into one deterministic sentence per
// recognized event, as a bulleted list in chronological order. Events
// without a template are omitted.
func Narrate(events []model.SessionEvent) string {
	var parts []string
	for _, event := range events {
		if line := narrateEvent(event); line != "" {
			parts = append(parts, "- "+line)
		}
	}
	return strings.Join(parts, "\n")
}

// narrateEvent renders one event through its fixed template, or "" for
// unrecognized event types.
func narrateEvent(e model.SessionEvent) string {
	switch e.Type {
	case model.EventDataUpload:
		return fmt.Sprintf("Uploaded customer dataset: %d records with %d data fields",
			e.DetailInt("records"), e.DetailInt("columns"))
	case model.EventBusinessContext:
		return fmt.Sprintf("Business context captured: %s industry, %s model",
			e.DetailString("industry", "Unknown"), e.DetailString("business_model", "Unknown"))
	case model.EventVariableSelection:
		return fmt.Sprintf("AI selected %d strategic variables based on business context",
			e.DetailInt("variable_count"))
	case model.EventEnrichmentComplete:
		return fmt.Sprintf("Enhanced customer data with %s match rate via identity graph",
			e.DetailString("match_rate", "N/A"))
	case model.EventInsightsGenerated:
		return fmt.Sprintf("Generated strategic insights analyzing %d records across %d variables",
			e.DetailInt("records_analyzed"), e.DetailInt("variables_analyzed"))
	case model.EventReportExported:
		return fmt.Sprintf("Exported customer intelligence report in %s format",
			e.DetailString("format", "unknown"))
	case model.EventAnalysisRefinement:
		return "Returned to variable selection to refine the analysis"
	case model.EventSessionCompleted:
		return "Completed the analysis session"
	default:
		return ""
	}
}

// Summarize narrates the events and asks the completion service for an
// audience-appropriate summary. On failure it returns an error-describing
// string rather than an error; the caller logs it like any other summary.
func (s *Summarizer) Summarize(ctx context.Context, events []model.SessionEvent, audience Audience) string {
	narrative := Narrate(events)
	if narrative == "" {
		return "No workflow data available."
	}

	text, err := s.client.Complete(ctx, llm.Request{
		Prompt:      buildPrompt(narrative, audience),
		MaxTokens:   summaryMaxTokens,
		Temperature: summaryTemperature,
	})
	if err != nil {
		return fmt.Sprintf("Error generating summary: %v", err)
	}
	return strings.TrimSpace(text)
}

// buildPrompt frames the identical factual narrative differently per
// audience.
func buildPrompt(narrative string, audience Audience) string {
	if audience == AudienceInternal {
		return fmt.Sprintf(`You are summarizing a Brand Response Customer Intelligence Platform session for potential partners evaluating the platform, such as SMB creative and branding agencies.

WORKFLOW DATA:
%s

Focus your summary on these key innovations:
1. **Contextually Optimized Data Enhancement** - How the platform moves beyond standardized data packages to select variables strategically for this specific business context
2. **Enterprise-Grade Data at SMB Economics** - Access to sophisticated identity graph data at a fraction of enterprise consulting costs
3. **Rapid Strategic Transformation** - Converting raw customer data into actionable brand insights in minutes

Write in factual, journalistic tone emphasizing demonstrated capabilities and competitive advantages. Speak in present tense, not past.`, narrative)
	}

	return fmt.Sprintf(`You are summarizing a Brand Response Customer Intelligence analysis for a client who wants to understand what was done and what value they received.

WORKFLOW DATA:
%s

Create a professional summary that explains:
1. The analysis that was performed on their customer data
2. The strategic insights that were generated
3. The value and actionability of the results
4. Next steps for implementing the recommendations

Write in consulting language that demonstrates expertise while being accessible to business owners.`, narrative)
}
