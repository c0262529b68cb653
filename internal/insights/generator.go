package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/brandresponse/brandintel/internal/common"
	"github.com/brandresponse/brandintel/internal/llm"
	"github.com/brandresponse/brandintel/internal/model"
)

// Mode selects how the report is produced.
type Mode string

// Operating modes.
const (
	// ModeNarrative asks the completion service for a free-form markdown
	// report built from per-variable frequency breakdowns.
	ModeNarrative Mode = "narrative"
	// ModeStructured computes statistics locally first, then asks for a
	// JSON report shaped around them.
	ModeStructured Mode = "structured"
)

// Request knobs per mode: free-form narrative runs hot, JSON extraction
// runs cold.
const (
	narrativeMaxTokens    = 3000
	narrativeTemperature  = 0.7
	structuredMaxTokens   = 3000
	structuredTemperature = 0.3
)

// Generator produces the customer intelligence report.
type Generator struct {
	client llm.Client
	mode   Mode
	now    func() time.Time
}

// New creates a Generator. An empty mode defaults to narrative.
func New(client llm.Client, mode Mode) *Generator {
	if mode == "" {
		mode = ModeNarrative
	}
	return &Generator{client: client, mode: mode, now: time.Now}
}

// Mode returns the generator's operating mode.
func (g *Generator) Mode() Mode {
	return g.mode
}

// GenerateInsights builds the report for the enriched data. Failures in
// the completion call or response parsing substitute a mode-appropriate
// fallback report; in structured mode, locally computed statistics are
// attached to the result no matter what happens downstream.
func (g *Generator) GenerateInsights(ctx context.Context, records *model.EnrichedRecordSet, bc model.BusinessContext, vars []model.VariableRecommendation) common.Outcome[*model.InsightReport] {
	if g.mode == ModeStructured {
		return g.generateStructured(ctx, records, bc, vars)
	}
	return g.generateNarrative(ctx, records, bc, vars)
}

func (g *Generator) generateNarrative(ctx context.Context, records *model.EnrichedRecordSet, bc model.BusinessContext, vars []model.VariableRecommendation) common.Outcome[*model.InsightReport] {
	return common.Attempt(func() (*model.InsightReport, error) {
		prompt := g.buildNarrativePrompt(records, bc, vars)

		text, err := g.client.Complete(ctx, llm.Request{
			Prompt:      prompt,
			MaxTokens:   narrativeMaxTokens,
			Temperature: narrativeTemperature,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrCompletionFailed, err)
		}

		return &model.InsightReport{
			NarrativeText:     strings.TrimSpace(text),
			VariablesAnalyzed: len(vars),
			RecordsAnalyzed:   records.Len(),
			GeneratedAt:       g.now(),
		}, nil
	}, func() *model.InsightReport {
		report := fallbackNarrativeReport()
		report.VariablesAnalyzed = len(vars)
		report.RecordsAnalyzed = records.Len()
		report.GeneratedAt = g.now()
		return report
	})
}

func (g *Generator) generateStructured(ctx context.Context, records *model.EnrichedRecordSet, bc model.BusinessContext, vars []model.VariableRecommendation) common.Outcome[*model.InsightReport] {
	// Local statistics come first and must survive any downstream
	// completion failure.
	stats := ComputeStats(records)

	return common.Attempt(func() (*model.InsightReport, error) {
		prompt := g.buildStructuredPrompt(stats, bc, vars)

		text, err := g.client.Complete(ctx, llm.Request{
			Prompt:      prompt,
			MaxTokens:   structuredMaxTokens,
			Temperature: structuredTemperature,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrCompletionFailed, err)
		}

		structured, err := parseStructured(text)
		if err != nil {
			return nil, err
		}

		return &model.InsightReport{
			NarrativeText:     renderStructured(structured),
			VariablesAnalyzed: len(vars),
			RecordsAnalyzed:   records.Len(),
			RawStats:          stats,
			Structured:        structured,
			GeneratedAt:       g.now(),
		}, nil
	}, func() *model.InsightReport {
		structured := fallbackStructuredInsights()
		return &model.InsightReport{
			NarrativeText:     renderStructured(structured),
			VariablesAnalyzed: len(vars),
			RecordsAnalyzed:   records.Len(),
			RawStats:          stats,
			Structured:        structured,
			GeneratedAt:       g.now(),
		}
	})
}

// parseStructured deserializes the structured-mode JSON response.
func parseStructured(text string) (*model.StructuredInsights, error) {
	cleaned := stripFence(text)

	var structured model.StructuredInsights
	if err := json.Unmarshal([]byte(cleaned), &structured); err != nil {
		return nil, fmt.Errorf("failed to parse structured insights: %w", err)
	}
	if structured.ExecutiveSummary == "" && len(structured.KeyFindings) == 0 {
		return nil, fmt.Errorf("structured insights response is empty")
	}
	return &structured, nil
}

// stripFence removes an optional fenced-code wrapper.
func stripFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
