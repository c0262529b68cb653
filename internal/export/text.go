// Package export renders the current session state into the deliverable
// report formats. Exports are produced on demand and never persisted
// automatically.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/brandresponse/brandintel/internal/model"
)

const bannerRule = "======================================================================"

// Text renders the plain-text customer intelligence report: a fixed
// banner, the business context, the selected variables with rationale,
// and the insight narrative stripped of markdown markup.
func Text(session *model.Session) string {
	var b strings.Builder

	b.WriteString(bannerRule + "\n")
	b.WriteString("BRAND RESPONSE | CUSTOMER INTELLIGENCE REPORT\n")
	b.WriteString(bannerRule + "\n\n")

	if session.Context != nil {
		fmt.Fprintf(&b, "Business: %s\n", model.OrNotSpecified(session.Context.BusinessName))
		fmt.Fprintf(&b, "Industry: %s\n", model.OrNotSpecified(session.Context.Industry))
	}
	fmt.Fprintf(&b, "Analysis Date: %s\n\n", reportDate(session).Format("January 2, 2006"))

	if len(session.Recommendations) > 0 {
		b.WriteString("SELECTED VARIABLES\n")
		b.WriteString(strings.Repeat("-", 18) + "\n")
		for _, rec := range session.Recommendations {
			fmt.Fprintf(&b, "%s (%s): %s\n", rec.Variable, rec.Category, rec.Rationale)
		}
		b.WriteString("\n")
	}

	if session.Report != nil {
		b.WriteString("CUSTOMER INTELLIGENCE\n")
		b.WriteString(strings.Repeat("-", 21) + "\n")
		b.WriteString(stripMarkdown(session.Report.NarrativeText) + "\n\n")
		fmt.Fprintf(&b, "Records analyzed: %d\n", session.Report.RecordsAnalyzed)
		fmt.Fprintf(&b, "Variables analyzed: %d\n\n", session.Report.VariablesAnalyzed)
	}

	b.WriteString(bannerRule + "\n")
	b.WriteString("Generated by the Brand Response Customer Intelligence Platform\n")
	b.WriteString(bannerRule + "\n")

	return b.String()
}

func reportDate(session *model.Session) time.Time {
	if session.Report != nil && !session.Report.GeneratedAt.IsZero() {
		return session.Report.GeneratedAt
	}
	return session.StartedAt
}

// stripMarkdown removes heading, emphasis, and code markers so the plain
// text deliverable reads cleanly.
func stripMarkdown(text string) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		trimmed = strings.TrimLeft(trimmed, "#")
		trimmed = strings.TrimSpace(trimmed)
		trimmed = strings.ReplaceAll(trimmed, "**", "")
		trimmed = strings.ReplaceAll(trimmed, "`", "")
		out = append(out, trimmed)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
