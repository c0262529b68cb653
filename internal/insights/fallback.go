package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brandresponse/brandintel/internal/model"
)

// fallbackNarrativeReport is the safety net when narrative generation
// fails outright.
func fallbackNarrativeReport() *model.InsightReport {
	return &model.InsightReport{
		NarrativeText: `# Executive Summary
Automated insight generation was unavailable for this analysis. The enriched customer data was processed successfully and remains available; the narrative below is a standard framing to review alongside the raw attribute distributions.

## Key Customer Reality vs. Assumptions
Compare the enriched attribute distributions against the stated target customer profile. Attention to age spread, household income brackets, and education levels typically surfaces the largest gaps between assumption and reality.

## Strategic Recommendations
1. **Brand Positioning Adjustment**: Validate current positioning against the enriched demographic profile before the next campaign cycle.
2. **Target Audience Refinement**: Re-segment the customer base using the enriched attributes rather than assumed personas.
3. **Messaging Strategy**: Align tone and channel mix with the observed education and media-consumption attributes.

## Most Surprising Discovery
Not available for this run; re-run insight generation to produce a data-specific finding.`,
	}
}

// fallbackStructuredInsights is the structured-mode safety net. The
// calling code attaches whatever raw statistics were computed before the
// failure.
func fallbackStructuredInsights() *model.StructuredInsights {
	return &model.StructuredInsights{
		ExecutiveSummary: "Automated narrative generation was unavailable; the computed statistics below are complete and reliable. Review the raw statistics for positioning gaps between the assumed and observed customer base.",
		KeyFindings: []string{
			"Customer demographics were computed locally from the enriched data and are attached to this report",
			"Narrative interpretation could not be generated for this run",
			"All computed percentages reflect only records with a usable value for each attribute",
		},
		DemographicSurprises: []string{
			"Re-run insight generation to surface data-specific surprises",
		},
		Segments: map[string]model.Segment{},
		Recommendations: []string{
			"Re-run insight generation once the completion service is reachable",
			"Use the attached raw statistics for immediate positioning review",
		},
	}
}

// renderStructured formats structured insights as the markdown narrative
// used for display and text export.
func renderStructured(s *model.StructuredInsights) string {
	var b strings.Builder

	b.WriteString("# Executive Summary\n")
	b.WriteString(s.ExecutiveSummary + "\n")

	if len(s.KeyFindings) > 0 {
		b.WriteString("\n## Key Findings\n")
		for _, f := range s.KeyFindings {
			b.WriteString("- " + f + "\n")
		}
	}

	if len(s.DemographicSurprises) > 0 {
		b.WriteString("\n## Demographic Surprises\n")
		for _, d := range s.DemographicSurprises {
			b.WriteString("- " + d + "\n")
		}
	}

	if len(s.Segments) > 0 {
		b.WriteString("\n## Customer Segments\n")
		names := make([]string, 0, len(s.Segments))
		for name := range s.Segments {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			seg := s.Segments[name]
			fmt.Fprintf(&b, "- **%s** (%.0f%%): %s\n", name, seg.Percentage, seg.Profile)
		}
	}

	if len(s.Recommendations) > 0 {
		b.WriteString("\n## Strategic Recommendations\n")
		for i, r := range s.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, r)
		}
	}

	return strings.TrimSpace(b.String())
}
