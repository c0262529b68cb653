package selector

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/brandresponse/brandintel/internal/model"
)

// ParseError is a typed parse failure. It feeds the same fallback path as
// a completion-call failure; the parser itself never substitutes defaults.
type ParseError struct {
	Format string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s response: %s", e.Format, e.Reason)
}

// ParseRecommendations extracts variable recommendations from a completion
// response. The markdown table is the canonical format; a fenced or bare
// JSON object with a selected_variables array is accepted as well.
func ParseRecommendations(text string) ([]model.VariableRecommendation, error) {
	stripped := stripFence(text)
	if strings.HasPrefix(strings.TrimSpace(stripped), "{") {
		return parseJSONSelection(stripped)
	}
	return parseMarkdownTable(text)
}

// parseMarkdownTable scans completion lines for a table with the expected
// header. Lines before the header are ignored; after it, a line counts as
// a data row only if it splits into at least four pipe segments whose
// variable, category, and rationale cells are all non-empty.
func parseMarkdownTable(text string) ([]model.VariableRecommendation, error) {
	var recs []model.VariableRecommendation
	inTable := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "|") || isSeparatorRow(line) {
			continue
		}

		if strings.Contains(line, "Variable") &&
			strings.Contains(line, "Category") &&
			strings.Contains(line, "Strategic Rationale") {
			inTable = true
			continue
		}

		if !inTable || strings.Count(line, "|") < 3 {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) < 4 {
			continue
		}
		variable := strings.TrimSpace(strings.Trim(strings.TrimSpace(parts[1]), "*`"))
		category := strings.TrimSpace(parts[2])
		rationale := strings.TrimSpace(parts[3])
		if variable == "" || category == "" || rationale == "" {
			continue
		}

		recs = append(recs, model.VariableRecommendation{
			Variable:  variable,
			Category:  model.NormalizeCategory(category),
			Rationale: rationale,
		})
	}

	if len(recs) == 0 {
		return nil, &ParseError{Format: "markdown table", Reason: "no valid data rows found"}
	}
	return recs, nil
}

// isSeparatorRow reports whether a line is a markdown table divider.
func isSeparatorRow(line string) bool {
	seen := false
	for _, r := range line {
		switch r {
		case '-', '|', ':', ' ':
			if r == '-' {
				seen = true
			}
		default:
			return false
		}
	}
	return seen
}

// jsonSelection is the strict schema for the JSON response variant.
type jsonSelection struct {
	SelectedVariables []struct {
		Variable  string `json:"variable"`
		Category  string `json:"category"`
		Rationale string `json:"rationale"`
	} `json:"selected_variables"`
}

// parseJSONSelection deserializes the JSON response variant. Shape
// mismatches are typed parse errors, never silent substitutions.
func parseJSONSelection(text string) ([]model.VariableRecommendation, error) {
	var sel jsonSelection
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &sel); err != nil {
		return nil, &ParseError{Format: "json", Reason: err.Error()}
	}
	if len(sel.SelectedVariables) == 0 {
		return nil, &ParseError{Format: "json", Reason: "selected_variables is empty"}
	}

	recs := make([]model.VariableRecommendation, 0, len(sel.SelectedVariables))
	for i, v := range sel.SelectedVariables {
		if strings.TrimSpace(v.Variable) == "" || strings.TrimSpace(v.Rationale) == "" {
			return nil, &ParseError{
				Format: "json",
				Reason: fmt.Sprintf("entry %d missing variable or rationale", i),
			}
		}
		recs = append(recs, model.VariableRecommendation{
			Variable:  strings.TrimSpace(v.Variable),
			Category:  model.NormalizeCategory(v.Category),
			Rationale: strings.TrimSpace(v.Rationale),
		})
	}
	return recs, nil
}

// stripFence removes an optional fenced-code wrapper from a completion
// response.
func stripFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		// Drop the language tag line (```json or similar).
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
