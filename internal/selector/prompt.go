package selector

import (
	"fmt"
	"strings"

	"github.com/brandresponse/brandintel/internal/model"
)

// buildPrompt assembles the variable-selection prompt: business context
// fields with placeholders for anything left blank, the capped catalog
// excerpt, and the output-format instruction.
func (s *Selector) buildPrompt(bc model.BusinessContext) string {
	var b strings.Builder

	b.WriteString("You are a strategic data analyst helping select the most valuable customer intelligence variables for brand strategy.\n\n")

	b.WriteString("BUSINESS CONTEXT:\n")
	fmt.Fprintf(&b, "- Business Name: %s\n", model.OrNotSpecified(bc.BusinessName))
	fmt.Fprintf(&b, "- Industry: %s\n", model.OrNotSpecified(bc.Industry))
	fmt.Fprintf(&b, "- Business Model: %s\n", model.OrNotSpecified(bc.BusinessModel))
	fmt.Fprintf(&b, "- Target Customer: %s\n", model.OrNotSpecified(bc.TargetCustomer))
	fmt.Fprintf(&b, "- Brand Positioning: %s\n", model.OrNotSpecified(bc.BrandPositioning))
	fmt.Fprintf(&b, "- Analysis Goals: %s\n", model.OrNotSpecified(bc.GoalsLine()))
	fmt.Fprintf(&b, "- Additional Context: %s\n\n", model.OrNotSpecified(bc.AdditionalContext))

	b.WriteString(s.catalog.PromptExcerpt())

	b.WriteString(`YOUR TASK: Select 8-12 variables that will provide the most strategic value for this specific business context.

SELECTION CRITERIA:
1. Choose variables that directly relate to this business context
2. Prioritize variables that can challenge current assumptions about customers
3. Include a strategic mix across different categories
4. Focus on variables that inform brand strategy and positioning decisions
5. Consider variables that reveal unexpected customer segments

RESPOND IN MARKDOWN TABLE FORMAT:

| Variable | Category | Strategic Rationale |
|----------|----------|-------------------|
| VARIABLE_NAME | demographics/economic/lifestyle/interests/shopping | Specific explanation of why this variable is critical for this business |

Select variables that will reveal the most surprising and actionable insights about who this business's customers really are.`)

	return b.String()
}
