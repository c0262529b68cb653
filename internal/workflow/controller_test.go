package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/brandresponse/brandintel/internal/catalog"
	"github.com/brandresponse/brandintel/internal/common"
	"github.com/brandresponse/brandintel/internal/enrich"
	"github.com/brandresponse/brandintel/internal/eventlog"
	"github.com/brandresponse/brandintel/internal/insights"
	"github.com/brandresponse/brandintel/internal/llm"
	"github.com/brandresponse/brandintel/internal/model"
	"github.com/brandresponse/brandintel/internal/selector"
	"github.com/brandresponse/brandintel/internal/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectionTable = `| Variable | Category | Strategic Rationale |
|----------|----------|---------------------|
| AGE | Demographics | Core demographic for targeting |
| INCOME_HH | Economic | Purchasing power indicator |
| URBANICITY | Lifestyle | Store placement planning |`

// routingMock answers selection calls with a variable table and everything
// else with a narrative.
func routingMock() *llm.MockClient {
	return &llm.MockClient{
		CompleteFunc: func(_ context.Context, req llm.Request) (string, error) {
			if strings.Contains(req.Prompt, "Strategic Rationale") {
				return selectionTable, nil
			}
			return "## Customer Intelligence\n\nCustomers skew young and urban.", nil
		},
	}
}

func newTestController(t *testing.T, client llm.Client) *Controller {
	t.Helper()
	c, err := New(Options{
		Selector:   selector.New(client, catalog.Default()),
		Enricher:   enrich.NewFixtureEnricher(),
		Generator:  insights.New(client, insights.ModeNarrative),
		Summarizer: summary.New(client),
		LogDir:     t.TempDir(),
	})
	require.NoError(t, err)
	return c
}

func testRecords(n int) *model.RecordSet {
	rows := make([]map[string]string, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, map[string]string{
			"customer_id": fmt.Sprintf("CUST_%04d", i+1),
			"email":       fmt.Sprintf("c%d@example.com", i+1),
		})
	}
	return &model.RecordSet{Columns: []string{"customer_id", "email"}, Rows: rows}
}

func testContext() model.BusinessContext {
	return model.BusinessContext{
		BusinessName:  "Mountain Peak Coffee",
		Industry:      "Food & Beverage",
		BusinessModel: "B2C Retail",
		Goals:         []string{"Increase customer retention"},
	}
}

func eventTypes(t *testing.T, c *Controller) []model.EventType {
	t.Helper()
	events, err := c.Events()
	require.NoError(t, err)
	types := make([]model.EventType, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}

func TestWorkflowEndToEnd(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, routingMock())

	require.NoError(t, c.UploadRecords(testRecords(100), "upload.csv"))
	assert.Equal(t, model.StepBusinessContext, c.Session().Step)

	require.NoError(t, c.CaptureContext(testContext()))
	assert.Equal(t, model.StepVariableSelection, c.Session().Step)

	recs, err := c.SelectVariables(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "AGE", recs[0].Variable)
	assert.Equal(t, model.StepEnrichment, c.Session().Step)

	enriched, err := c.Enrich(ctx)
	require.NoError(t, err)
	assert.Equal(t, 96, enriched.Len())
	assert.True(t, enriched.HasColumn("INCOME_HH"))
	assert.Equal(t, model.StepInsights, c.Session().Step)

	report, err := c.GenerateInsights(ctx)
	require.NoError(t, err)
	assert.Contains(t, report.NarrativeText, "urban")
	assert.Equal(t, 3, report.VariablesAnalyzed)
	assert.Equal(t, model.StepExport, c.Session().Step)

	text, err := c.ExportText()
	require.NoError(t, err)
	assert.Contains(t, text, "Mountain Peak Coffee")

	data, err := c.ExportJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), "selected_variables")

	assert.Equal(t, []model.EventType{
		model.EventSessionStart,
		model.EventDataUpload,
		model.EventBusinessContext,
		model.EventVariableSelection,
		model.EventEnrichmentComplete,
		model.EventInsightsGenerated,
		model.EventReportExported,
		model.EventReportExported,
	}, eventTypes(t, c))
}

func TestSelectVariablesFallbackLogged(t *testing.T) {
	c := newTestController(t, &llm.MockClient{Err: errors.New("api down")})

	require.NoError(t, c.UploadRecords(testRecords(10), "sample"))
	require.NoError(t, c.CaptureContext(testContext()))

	recs, err := c.SelectVariables(context.Background())
	require.NoError(t, err)
	assert.Len(t, recs, len(selector.FallbackVariables()))
	assert.Equal(t, model.StepEnrichment, c.Session().Step)

	events, readErr := c.Events()
	require.NoError(t, readErr)
	require.Len(t, events, 5)
	assert.Equal(t, model.EventVariableSelection.ErrVariant(), events[3].Type)
	assert.Contains(t, events[3].DetailString("error", ""), "api down")
	assert.Equal(t, model.EventVariableSelection, events[4].Type)
	assert.Equal(t, true, events[4].Details["fallback_used"])
}

func TestGenerateInsightsRequiresEnrichment(t *testing.T) {
	c := newTestController(t, routingMock())
	require.NoError(t, c.UploadRecords(testRecords(10), "sample"))

	_, err := c.GenerateInsights(context.Background())
	require.Error(t, err)
	var userErr *common.UserError
	assert.True(t, errors.As(err, &userErr))

	// The failed attempt leaves no trace in the log or session.
	assert.Nil(t, c.Session().Report)
	assert.NotContains(t, eventTypes(t, c), model.EventInsightsGenerated)
}

func TestExportRequiresReport(t *testing.T) {
	c := newTestController(t, routingMock())

	_, err := c.ExportText()
	require.Error(t, err)
	_, err = c.ExportJSON()
	require.Error(t, err)
}

func TestRefineAnalysisReturnsToSelection(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, routingMock())

	require.NoError(t, c.UploadRecords(testRecords(10), "sample"))
	require.NoError(t, c.CaptureContext(testContext()))
	_, err := c.SelectVariables(ctx)
	require.NoError(t, err)
	_, err = c.Enrich(ctx)
	require.NoError(t, err)

	require.NoError(t, c.RefineAnalysis())
	assert.Equal(t, model.StepVariableSelection, c.Session().Step)

	// Prior state survives so selection can be re-run in place.
	assert.NotNil(t, c.Session().Records)
	assert.NotNil(t, c.Session().Enriched)
	assert.Contains(t, eventTypes(t, c), model.EventAnalysisRefinement)
}

func TestGoToNavigation(t *testing.T) {
	c := newTestController(t, routingMock())
	require.NoError(t, c.UploadRecords(testRecords(10), "sample"))
	require.NoError(t, c.CaptureContext(testContext()))

	// Backward is always allowed.
	require.NoError(t, c.GoTo(model.StepUploadData))
	assert.Equal(t, model.StepUploadData, c.Session().Step)

	// Forward only up to the furthest completed step.
	require.NoError(t, c.GoTo(model.StepVariableSelection))
	require.Error(t, c.GoTo(model.StepExport))
	require.Error(t, c.GoTo(0))
	require.Error(t, c.GoTo(7))
}

func TestStartNewAnalysis(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, routingMock())

	require.NoError(t, c.UploadRecords(testRecords(10), "sample"))
	oldID := c.Session().ID
	oldLogPath := c.events.Path()

	require.NoError(t, c.StartNewAnalysis(ctx))

	// Completion is recorded in the old session's log before the reset.
	oldEvents, err := eventlog.ReadFile(oldLogPath)
	require.NoError(t, err)
	require.NotEmpty(t, oldEvents)
	assert.Equal(t, model.EventSessionCompleted, oldEvents[len(oldEvents)-1].Type)

	// The replacement session is a clean slate with a new identity.
	assert.NotEqual(t, oldID, c.Session().ID)
	assert.Equal(t, model.StepUploadData, c.Session().Step)
	assert.Nil(t, c.Session().Records)
	assert.Equal(t, []model.EventType{model.EventSessionStart}, eventTypes(t, c))
}

func TestSummarizeWorkflow(t *testing.T) {
	mock := &llm.MockClient{Response: "The platform analyzed the data."}
	c := newTestController(t, mock)
	require.NoError(t, c.UploadRecords(testRecords(10), "sample"))

	text, err := c.SummarizeWorkflow(context.Background(), summary.AudienceInternal)
	require.NoError(t, err)
	assert.Equal(t, "The platform analyzed the data.", text)
	assert.Contains(t, eventTypes(t, c), model.EventWorkflowSummary)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Prompt, "Uploaded customer dataset: 10 records")
}
