package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brandresponse/brandintel/internal/model"
)

// topValuesPerVariable caps the frequency breakdown embedded per variable.
const topValuesPerVariable = 5

// buildNarrativePrompt assembles the free-form report prompt: business
// context plus a frequency breakdown of each selected variable present in
// the enriched data.
func (g *Generator) buildNarrativePrompt(records *model.EnrichedRecordSet, bc model.BusinessContext, vars []model.VariableRecommendation) string {
	var summaries []string
	for _, v := range vars {
		counts := records.ValueCounts(v.Variable, topValuesPerVariable)
		if len(counts) == 0 {
			continue
		}
		parts := make([]string, 0, len(counts))
		for _, c := range counts {
			parts = append(parts, fmt.Sprintf("%s: %d", c.Value, c.Count))
		}
		summaries = append(summaries, fmt.Sprintf("%s: {%s}", v.Variable, strings.Join(parts, ", ")))
	}

	var b strings.Builder
	b.WriteString("Analyze this customer data and generate strategic brand insights.\n\n")
	b.WriteString("BUSINESS CONTEXT:\n")
	fmt.Fprintf(&b, "- Industry: %s\n", model.OrNotSpecified(bc.Industry))
	fmt.Fprintf(&b, "- Target Customer: %s\n", model.OrNotSpecified(bc.TargetCustomer))
	fmt.Fprintf(&b, "- Current Brand Assumptions: %s\n\n", model.OrNotSpecified(bc.BrandPositioning))
	b.WriteString("CUSTOMER DATA ANALYSIS:\n")
	b.WriteString(strings.Join(summaries, "\n"))
	b.WriteString("\n\n")

	b.WriteString(`Generate professional consulting-style insights in this format:

# Executive Summary
[2-3 sentences summarizing the most important findings]

## Key Customer Reality vs. Assumptions
[Table comparing what the business assumed vs what data reveals]

## Strategic Recommendations
1. **Brand Positioning Adjustment**: [Specific recommendation]
2. **Target Audience Refinement**: [Specific recommendation]
3. **Messaging Strategy**: [Specific recommendation]

## Most Surprising Discovery
[Highlight the most unexpected finding that challenges assumptions]

Write in professional business language suitable for client presentation.`)

	return b.String()
}

// buildStructuredPrompt embeds the locally computed statistics and asks
// for a JSON report shaped around them.
func (g *Generator) buildStructuredPrompt(stats model.RawStats, bc model.BusinessContext, vars []model.VariableRecommendation) string {
	varNames := make([]string, 0, len(vars))
	for _, v := range vars {
		varNames = append(varNames, v.Variable)
	}

	var b strings.Builder
	b.WriteString("Generate a customer intelligence report from these computed statistics.\n\n")
	b.WriteString("BUSINESS CONTEXT:\n")
	fmt.Fprintf(&b, "- Industry: %s\n", model.OrNotSpecified(bc.Industry))
	fmt.Fprintf(&b, "- Target Customer: %s\n", model.OrNotSpecified(bc.TargetCustomer))
	fmt.Fprintf(&b, "- Current Brand Assumptions: %s\n\n", model.OrNotSpecified(bc.BrandPositioning))

	b.WriteString("COMPUTED STATISTICS:\n")
	b.WriteString(formatStats(stats))
	fmt.Fprintf(&b, "\nVARIABLES ANALYZED: %s\n\n", strings.Join(varNames, ", "))

	b.WriteString(`Respond with a JSON object only, using exactly these keys:
{
  "executive_summary": "2-3 sentence summary of the most important findings",
  "key_findings": ["finding", ...],
  "demographic_surprises": ["surprise that challenges the stated assumptions", ...],
  "segments": {"Segment Name": {"percentage": 0, "profile": "description"}, ...},
  "recommendations": ["specific strategic recommendation", ...]
}

Base every number on the computed statistics above; do not invent statistics.`)

	return b.String()
}

// formatStats renders statistics one per line in key order, so the prompt
// is stable for identical inputs.
func formatStats(stats model.RawStats) string {
	if len(stats) == 0 {
		return "- none computed (expected columns missing)\n"
	}
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "- %s: %.1f\n", k, stats[k])
	}
	return b.String()
}
