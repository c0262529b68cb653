package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brandresponse/brandintel/internal/catalog"
	"github.com/brandresponse/brandintel/internal/enrich"
	"github.com/brandresponse/brandintel/internal/insights"
	"github.com/brandresponse/brandintel/internal/llm"
	"github.com/brandresponse/brandintel/internal/model"
	"github.com/brandresponse/brandintel/internal/selector"
	"github.com/brandresponse/brandintel/internal/summary"
	"github.com/brandresponse/brandintel/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wizardSelectionTable = `| Variable | Category | Strategic Rationale |
|----------|----------|---------------------|
| AGE | Demographics | Core demographic for targeting |
| INCOME_HH | Economic | Purchasing power indicator |`

func wizardMock() *llm.MockClient {
	return &llm.MockClient{
		CompleteFunc: func(_ context.Context, req llm.Request) (string, error) {
			if strings.Contains(req.Prompt, "Strategic Rationale") {
				return wizardSelectionTable, nil
			}
			return "Customers skew young and urban.", nil
		},
	}
}

func newTestWizard(t *testing.T, script string) (*Wizard, *bytes.Buffer) {
	t.Helper()

	ctrl, err := workflow.New(workflow.Options{
		Selector:   selector.New(wizardMock(), catalog.Default()),
		Enricher:   enrich.NewFixtureEnricher(),
		Generator:  insights.New(wizardMock(), insights.ModeNarrative),
		Summarizer: summary.New(wizardMock()),
		LogDir:     t.TempDir(),
	})
	require.NoError(t, err)

	var out bytes.Buffer
	w := NewWizard(ctrl, strings.NewReader(script), &out)
	w.enrichDelay = 0
	return w, &out
}

func TestWizardFullRun(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "report.txt")
	script := strings.Join([]string{
		"sample",                // step 1: demo data
		"Mountain Peak Coffee",  // business name
		"1",                     // industry
		"1",                     // business model
		"Young professionals",   // target customer
		"Premium local roaster", // positioning
		"1,3",                   // goals
		"",                      // additional context
		"1",                     // export menu: save text report
		reportPath,              // output path
		"7",                     // quit
	}, "\n") + "\n"

	w, out := newTestWizard(t, script)
	require.NoError(t, w.Run(context.Background()))

	assert.Equal(t, model.StepExport, w.ctrl.Session().Step)
	assert.Contains(t, out.String(), "Selected 2 variables")
	assert.Contains(t, out.String(), "match rate")

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Mountain Peak Coffee")
	assert.Contains(t, string(data), "AGE (demographics)")
}

func TestWizardQuitAtFirstPrompt(t *testing.T) {
	w, _ := newTestWizard(t, "quit\n")
	require.NoError(t, w.Run(context.Background()))
	assert.Equal(t, model.StepUploadData, w.ctrl.Session().Step)
}

func TestWizardBadUploadRetries(t *testing.T) {
	script := "/nonexistent/file.csv\nquit\n"
	w, out := newTestWizard(t, script)
	require.NoError(t, w.Run(context.Background()))

	assert.Contains(t, out.String(), "could not open")
	assert.Equal(t, model.StepUploadData, w.ctrl.Session().Step)
}

func TestWizardBackNavigation(t *testing.T) {
	script := strings.Join([]string{
		"sample", // step 1
		"back",   // step 2: go back to upload
		"quit",
	}, "\n") + "\n"

	w, _ := newTestWizard(t, script)
	require.NoError(t, w.Run(context.Background()))
	assert.Equal(t, model.StepUploadData, w.ctrl.Session().Step)
}

func TestWizardEndsOnEOF(t *testing.T) {
	// Input exhausted mid-context: the wizard exits cleanly.
	w, _ := newTestWizard(t, "sample\n")
	require.NoError(t, w.Run(context.Background()))
	assert.Equal(t, model.StepBusinessContext, w.ctrl.Session().Step)
}

func TestChooseManyParsesSelections(t *testing.T) {
	w, _ := newTestWizard(t, "2, 4, 2, 99\n")

	chosen, err := w.chooseMany(context.Background(), "Goals", AnalysisGoals)
	require.NoError(t, err)
	assert.Equal(t, []string{AnalysisGoals[1], AnalysisGoals[3]}, chosen)
}

func TestChooseOneDefaultsToFirst(t *testing.T) {
	w, _ := newTestWizard(t, "\n")

	choice, err := w.chooseOne(context.Background(), "Industry", Industries)
	require.NoError(t, err)
	assert.Equal(t, Industries[0], choice)
}
