// Package workflow drives the six-step customer intelligence analysis:
// upload, business context, variable selection, enrichment, insights, and
// export. The controller owns the live session, enforces step
// preconditions, and records every step in the session event log before
// reporting success.
package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brandresponse/brandintel/internal/common"
	"github.com/brandresponse/brandintel/internal/enrich"
	"github.com/brandresponse/brandintel/internal/eventlog"
	"github.com/brandresponse/brandintel/internal/export"
	"github.com/brandresponse/brandintel/internal/insights"
	"github.com/brandresponse/brandintel/internal/model"
	"github.com/brandresponse/brandintel/internal/selector"
	"github.com/brandresponse/brandintel/internal/storage"
	"github.com/brandresponse/brandintel/internal/summary"
)

// Options configure a Controller. Selector, Enricher, Generator, and
// Summarizer are required; Archive is optional.
type Options struct {
	Selector   *selector.Selector
	Enricher   enrich.Enricher
	Generator  *insights.Generator
	Summarizer *summary.Summarizer
	Archive    *storage.SQLiteStorage
	LogDir     string
	Logger     *slog.Logger
}

// Controller owns the live analysis session. Exactly one session is live
// at a time; StartNewAnalysis retires it and creates a fresh one.
type Controller struct {
	opts     Options
	session  *model.Session
	events   *eventlog.Logger
	logger   *slog.Logger
	furthest int
}

// New creates a Controller with a fresh session and its event log.
func New(opts Options) (*Controller, error) {
	if opts.Selector == nil || opts.Enricher == nil || opts.Generator == nil || opts.Summarizer == nil {
		return nil, fmt.Errorf("selector, enricher, generator, and summarizer are required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	c := &Controller{opts: opts, logger: opts.Logger}
	if err := c.startSession(); err != nil {
		return nil, err
	}
	return c, nil
}

// startSession creates a new session and opens its event log.
func (c *Controller) startSession() error {
	session := model.NewSession()
	events, err := eventlog.New(c.opts.LogDir, session.ID)
	if err != nil {
		return fmt.Errorf("failed to open session log: %w", err)
	}

	c.session = session
	c.events = events
	c.furthest = model.StepUploadData
	c.logger.Info("session started", "session_id", session.ID)
	return nil
}

// Session returns the live session.
func (c *Controller) Session() *model.Session {
	return c.session
}

// Events returns the live session's event log in append order.
func (c *Controller) Events() ([]model.SessionEvent, error) {
	return c.events.Read()
}

// advanceTo moves the session to the given step and remembers the furthest
// step reached so forward navigation can be bounded.
func (c *Controller) advanceTo(step int) {
	c.session.Step = step
	if step > c.furthest {
		c.furthest = step
	}
}

// GoTo navigates to a previously reached step. Backward navigation is
// always allowed and preserves all session state; forward navigation past
// the furthest completed step is rejected.
func (c *Controller) GoTo(step int) error {
	if step < model.StepUploadData || step > model.StepCount {
		return fmt.Errorf("no such step: %d", step)
	}
	if step > c.furthest {
		return common.NewUserError(
			fmt.Sprintf("complete %s before jumping ahead", model.StepName(c.furthest)), nil)
	}
	c.session.Step = step
	return nil
}

// UploadRecords installs the uploaded record set and advances to the
// business context step. Source names where the data came from, such as a
// file path or "sample".
func (c *Controller) UploadRecords(records *model.RecordSet, source string) error {
	if records == nil || records.Len() == 0 {
		return common.NewUserError("uploaded file contains no data rows", common.ErrEmptyUpload)
	}

	c.session.Records = records
	if err := c.events.Log(model.EventDataUpload, map[string]any{
		"records": records.Len(),
		"columns": len(records.Columns),
		"source":  source,
	}); err != nil {
		return err
	}

	c.logger.Info("data uploaded", "records", records.Len(), "columns", len(records.Columns))
	c.advanceTo(model.StepBusinessContext)
	return nil
}

// CaptureContext installs the business context and advances to variable
// selection. An empty context is allowed; downstream prompts substitute
// placeholders.
func (c *Controller) CaptureContext(bc model.BusinessContext) error {
	c.session.Context = &bc
	if err := c.events.Log(model.EventBusinessContext, map[string]any{
		"business_name":  bc.BusinessName,
		"industry":       bc.Industry,
		"business_model": bc.BusinessModel,
		"goals":          bc.GoalsLine(),
	}); err != nil {
		return err
	}

	c.advanceTo(model.StepVariableSelection)
	return nil
}

// SelectVariables runs the AI variable selection against the captured
// context. A completion or parse failure substitutes the fixed fallback
// list and is recorded in the event log; selection itself never fails.
func (c *Controller) SelectVariables(ctx context.Context) ([]model.VariableRecommendation, error) {
	if c.session.Records == nil {
		return nil, common.NewUserError("upload customer data before selecting variables", nil)
	}

	var bc model.BusinessContext
	if c.session.Context != nil {
		bc = *c.session.Context
	}

	outcome := c.opts.Selector.SelectVariables(ctx, bc)
	if outcome.FellBack {
		c.logger.Warn("variable selection fell back", "reason", outcome.Reason)
		if err := c.events.Log(model.EventVariableSelection.ErrVariant(), map[string]any{
			"error": outcome.Reason,
		}); err != nil {
			return nil, err
		}
	}

	c.session.Recommendations = outcome.Value
	if err := c.events.Log(model.EventVariableSelection, map[string]any{
		"variable_count": len(outcome.Value),
		"fallback_used":  outcome.FellBack,
	}); err != nil {
		return nil, err
	}

	c.advanceTo(model.StepEnrichment)
	return outcome.Value, nil
}

// Enrich runs identity-graph enrichment over the uploaded records with the
// selected variables.
func (c *Controller) Enrich(ctx context.Context) (*model.EnrichedRecordSet, error) {
	if c.session.Records == nil || len(c.session.Recommendations) == 0 {
		return nil, common.NewUserError("select variables before running enrichment", nil)
	}

	enriched, err := c.opts.Enricher.Enrich(ctx, c.session.Records, c.session.Recommendations)
	if err != nil {
		if logErr := c.events.Log(model.EventEnrichmentComplete.ErrVariant(), map[string]any{
			"error": err.Error(),
		}); logErr != nil {
			return nil, logErr
		}
		return nil, err
	}

	c.session.Enriched = enriched
	if err := c.events.Log(model.EventEnrichmentComplete, map[string]any{
		"input_records":   enriched.InputCount,
		"matched_records": enriched.Len(),
		"match_rate":      fmt.Sprintf("%.1f%%", enriched.MatchRate()),
		"variables":       len(c.session.Recommendations),
	}); err != nil {
		return nil, err
	}

	c.logger.Info("enrichment complete",
		"matched", enriched.Len(), "input", enriched.InputCount)
	c.advanceTo(model.StepInsights)
	return enriched, nil
}

// GenerateInsights produces the customer intelligence report. It requires
// completed enrichment and a variable selection; called early it warns and
// leaves the session untouched.
func (c *Controller) GenerateInsights(ctx context.Context) (*model.InsightReport, error) {
	if c.session.Enriched == nil || len(c.session.Recommendations) == 0 {
		c.logger.Warn("insights requested before enrichment completed")
		return nil, common.NewUserError("complete data enrichment before generating insights", nil)
	}

	var bc model.BusinessContext
	if c.session.Context != nil {
		bc = *c.session.Context
	}

	outcome := c.opts.Generator.GenerateInsights(ctx, c.session.Enriched, bc, c.session.Recommendations)
	if outcome.FellBack {
		c.logger.Warn("insight generation fell back", "reason", outcome.Reason)
		if err := c.events.Log(model.EventInsightsGenerated.ErrVariant(), map[string]any{
			"error": outcome.Reason,
		}); err != nil {
			return nil, err
		}
	}

	c.session.Report = outcome.Value
	if err := c.events.Log(model.EventInsightsGenerated, map[string]any{
		"records_analyzed":   outcome.Value.RecordsAnalyzed,
		"variables_analyzed": outcome.Value.VariablesAnalyzed,
		"mode":               string(c.opts.Generator.Mode()),
		"fallback_used":      outcome.FellBack,
	}); err != nil {
		return nil, err
	}

	c.advanceTo(model.StepExport)
	return outcome.Value, nil
}

// ExportText renders the plain-text report for the live session.
func (c *Controller) ExportText() (string, error) {
	if c.session.Report == nil {
		return "", common.NewUserError("generate insights before exporting", nil)
	}
	text := export.Text(c.session)
	if err := c.events.Log(model.EventReportExported, map[string]any{"format": "text"}); err != nil {
		return "", err
	}
	return text, nil
}

// ExportJSON renders the JSON report document for the live session.
func (c *Controller) ExportJSON() ([]byte, error) {
	if c.session.Report == nil {
		return nil, common.NewUserError("generate insights before exporting", nil)
	}
	data, err := export.JSON(c.session)
	if err != nil {
		return nil, err
	}
	if err := c.events.Log(model.EventReportExported, map[string]any{"format": "json"}); err != nil {
		return nil, err
	}
	return data, nil
}

// SummarizeWorkflow generates an audience-tailored summary of everything
// the session has done so far.
func (c *Controller) SummarizeWorkflow(ctx context.Context, audience summary.Audience) (string, error) {
	events, err := c.events.Read()
	if err != nil {
		return "", err
	}

	text := c.opts.Summarizer.Summarize(ctx, events, audience)
	if err := c.events.Log(model.EventWorkflowSummary, map[string]any{
		"audience": string(audience),
	}); err != nil {
		return "", err
	}
	return text, nil
}

// RefineAnalysis returns to variable selection with all session state
// intact so the user can re-run selection with the same data and context.
func (c *Controller) RefineAnalysis() error {
	if err := c.events.Log(model.EventAnalysisRefinement, nil); err != nil {
		return err
	}
	c.session.Step = model.StepVariableSelection
	return nil
}

// StartNewAnalysis retires the live session and creates a fresh one with a
// new identity and a new event log. The completion event is written to the
// old log before any state is cleared, and the finished report, if any, is
// archived.
func (c *Controller) StartNewAnalysis(ctx context.Context) error {
	if err := c.events.Log(model.EventSessionCompleted, map[string]any{
		"final_step": c.session.Step,
	}); err != nil {
		return err
	}

	if c.opts.Archive != nil && c.session.Report != nil {
		if err := c.opts.Archive.SaveSession(ctx, c.session); err != nil {
			c.logger.Warn("failed to archive session", "session_id", c.session.ID, "error", err)
		}
	}

	c.logger.Info("session completed", "session_id", c.session.ID)
	return c.startSession()
}
