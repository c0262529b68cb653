// Package selector chooses enrichment variables for a business context by
// prompting the completion service against the catalog excerpt and parsing
// the tabular response.
package selector

import (
	"context"
	"fmt"

	"github.com/brandresponse/brandintel/internal/catalog"
	"github.com/brandresponse/brandintel/internal/common"
	"github.com/brandresponse/brandintel/internal/llm"
	"github.com/brandresponse/brandintel/internal/model"
)

const selectionSystemPrompt = "You are a strategic data analyst helping select customer intelligence variables for brand strategy. Respond only in the requested table format."

// Request knobs for the extraction-style selection call.
const (
	selectionMaxTokens   = 2000
	selectionTemperature = 0.3
)

// Selector recommends enrichment variables for a business context.
type Selector struct {
	client  llm.Client
	catalog *catalog.Catalog
}

// New creates a Selector over the given completion client and catalog.
func New(client llm.Client, cat *catalog.Catalog) *Selector {
	return &Selector{client: client, catalog: cat}
}

// SelectVariables asks the completion service for a ranked variable list.
// Any failure, in the call or in parsing, substitutes the fixed fallback
// list; the outcome tag tells the caller which path was taken so it can
// log the degraded state.
func (s *Selector) SelectVariables(ctx context.Context, bc model.BusinessContext) common.Outcome[[]model.VariableRecommendation] {
	return common.Attempt(func() ([]model.VariableRecommendation, error) {
		prompt := s.buildPrompt(bc)

		text, err := s.client.Complete(ctx, llm.Request{
			Prompt:      prompt,
			System:      selectionSystemPrompt,
			MaxTokens:   selectionMaxTokens,
			Temperature: selectionTemperature,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrCompletionFailed, err)
		}

		recs, err := ParseRecommendations(text)
		if err != nil {
			return nil, err
		}
		return recs, nil
	}, FallbackVariables)
}
