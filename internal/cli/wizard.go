package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/brandresponse/brandintel/internal/common"
	"github.com/brandresponse/brandintel/internal/ingest"
	"github.com/brandresponse/brandintel/internal/model"
	"github.com/brandresponse/brandintel/internal/summary"
	"github.com/brandresponse/brandintel/internal/workflow"
	"github.com/schollz/progressbar/v3"
)

// Sentinel results of a prompt.
var (
	errQuit = errors.New("quit requested")
	errBack = errors.New("back requested")
)

// Wizard runs the six-step analysis workflow as an interactive terminal
// session. Typing "back" at any prompt returns to the previous step and
// "quit" exits; session state survives both.
type Wizard struct {
	ctrl *workflow.Controller
	in   *NonBlockingReader
	out  io.Writer

	// enrichDelay paces the enrichment progress animation. Zero disables
	// the animation pause, which tests rely on.
	enrichDelay time.Duration
}

// NewWizard creates a wizard over the given controller and streams.
func NewWizard(ctrl *workflow.Controller, in io.Reader, out io.Writer) *Wizard {
	return &Wizard{
		ctrl:        ctrl,
		in:          NewNonBlockingReader(in),
		out:         out,
		enrichDelay: 10 * time.Millisecond,
	}
}

// Run drives the workflow until the user quits or input ends.
func (w *Wizard) Run(ctx context.Context) error {
	fmt.Fprintln(w.out, FormatTitle("Brand Response Customer Intelligence Platform"))
	fmt.Fprintln(w.out, SubtitleStyle.Render("Transform your customer data into strategic brand insights"))

	for {
		step := w.ctrl.Session().Step
		fmt.Fprintln(w.out)
		fmt.Fprintln(w.out, TitleStyle.Render(fmt.Sprintf("Step %d of %d: %s", step, model.StepCount, model.StepName(step))))

		var err error
		switch step {
		case model.StepUploadData:
			err = w.stepUpload(ctx)
		case model.StepBusinessContext:
			err = w.stepContext(ctx)
		case model.StepVariableSelection:
			err = w.stepSelection(ctx)
		case model.StepEnrichment:
			err = w.stepEnrichment(ctx)
		case model.StepInsights:
			err = w.stepInsights(ctx)
		case model.StepExport:
			err = w.stepExport(ctx)
		}

		switch {
		case err == nil:
		case errors.Is(err, errQuit), errors.Is(err, io.EOF), errors.Is(err, ErrInputCancelled):
			fmt.Fprintln(w.out, SubtleStyle.Render("Goodbye."))
			return nil
		case errors.Is(err, errBack):
			if step > model.StepUploadData {
				_ = w.ctrl.GoTo(step - 1)
			}
		default:
			var userErr *common.UserError
			if errors.As(err, &userErr) {
				fmt.Fprintln(w.out, FormatError(userErr.UserMessage))
				continue
			}
			return err
		}
	}
}

// ask prompts for one line and maps the navigation keywords.
func (w *Wizard) ask(ctx context.Context, label string) (string, error) {
	fmt.Fprint(w.out, FormatPrompt(label))
	line, err := w.in.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	switch strings.ToLower(line) {
	case "quit", "exit":
		return "", errQuit
	case "back":
		return "", errBack
	}
	return line, nil
}

// chooseOne prompts for a numbered choice, defaulting to the first option.
func (w *Wizard) chooseOne(ctx context.Context, label string, options []string) (string, error) {
	fmt.Fprintln(w.out, PromptStyle.Render(label))
	for i, opt := range options {
		fmt.Fprintf(w.out, "  %d. %s\n", i+1, opt)
	}

	for {
		line, err := w.ask(ctx, fmt.Sprintf("Choice [1-%d, default 1]", len(options)))
		if err != nil {
			return "", err
		}
		if line == "" {
			return options[0], nil
		}
		if n, convErr := strconv.Atoi(line); convErr == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		fmt.Fprintln(w.out, FormatWarning("Please enter a number from the list."))
	}
}

// chooseMany prompts for a comma-separated set of numbered choices.
func (w *Wizard) chooseMany(ctx context.Context, label string, options []string) ([]string, error) {
	fmt.Fprintln(w.out, PromptStyle.Render(label))
	for i, opt := range options {
		fmt.Fprintf(w.out, "  %d. %s\n", i+1, opt)
	}

	line, err := w.ask(ctx, "Choices (comma-separated, empty for none)")
	if err != nil {
		return nil, err
	}

	var chosen []string
	seen := make(map[int]bool)
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n, convErr := strconv.Atoi(part); convErr == nil && n >= 1 && n <= len(options) && !seen[n] {
			seen[n] = true
			chosen = append(chosen, options[n-1])
		}
	}
	return chosen, nil
}

func (w *Wizard) stepUpload(ctx context.Context) error {
	path, err := w.ask(ctx, "Path to customer CSV (or 'sample' for demo data)")
	if err != nil {
		return err
	}

	var records *model.RecordSet
	source := path
	if path == "" || strings.EqualFold(path, "sample") {
		records = ingest.SampleData()
		source = "sample"
		fmt.Fprintln(w.out, FormatInfo("Using the built-in coffee shop demo dataset."))
	} else {
		records, err = ingest.ReadCSVFile(path)
		if err != nil {
			return err
		}
	}

	if err := w.ctrl.UploadRecords(records, source); err != nil {
		return err
	}

	fmt.Fprintln(w.out, FormatSuccess(fmt.Sprintf("Loaded %d records with %d fields.", records.Len(), len(records.Columns))))
	for _, col := range ingest.ColumnInfo(records) {
		fmt.Fprintf(w.out, "  %s %s\n",
			TableCellStyle.Render(col.Name),
			SubtleStyle.Render(fmt.Sprintf("(%d values, e.g. %s)", col.NonNull, col.Sample)))
	}
	return nil
}

func (w *Wizard) stepContext(ctx context.Context) error {
	fmt.Fprintln(w.out, SubtitleStyle.Render("Tell us about the business so the right data variables get selected."))

	name, err := w.ask(ctx, "Business name")
	if err != nil {
		return err
	}
	industry, err := w.chooseOne(ctx, "Industry", Industries)
	if err != nil {
		return err
	}
	businessModel, err := w.chooseOne(ctx, "Business model", BusinessModels)
	if err != nil {
		return err
	}
	target, err := w.ask(ctx, "Who do you think your customers are?")
	if err != nil {
		return err
	}
	positioning, err := w.ask(ctx, "How do you currently position your brand?")
	if err != nil {
		return err
	}
	goals, err := w.chooseMany(ctx, "What are your main goals for this analysis?", AnalysisGoals)
	if err != nil {
		return err
	}
	extra, err := w.ask(ctx, "Additional context (optional)")
	if err != nil {
		return err
	}

	return w.ctrl.CaptureContext(model.BusinessContext{
		BusinessName:      name,
		Industry:          industry,
		BusinessModel:     businessModel,
		TargetCustomer:    target,
		BrandPositioning:  positioning,
		Goals:             goals,
		AdditionalContext: extra,
	})
}

func (w *Wizard) stepSelection(ctx context.Context) error {
	fmt.Fprintln(w.out, InfoStyle.Render(RobotIcon+" Selecting strategic variables for this business..."))

	recs, err := w.ctrl.SelectVariables(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w.out, FormatSuccess(fmt.Sprintf("Selected %d variables:", len(recs))))
	fmt.Fprintln(w.out, TableHeaderStyle.Render(fmt.Sprintf("%-24s %-14s %s", "Variable", "Category", "Rationale")))
	for _, rec := range recs {
		fmt.Fprintf(w.out, "%-24s %-14s %s\n", rec.Variable, rec.Category, rec.Rationale)
	}
	return nil
}

func (w *Wizard) stepEnrichment(ctx context.Context) error {
	records := w.ctrl.Session().Records
	total := records.Len()

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Matching identities"),
		progressbar.OptionSetWriter(w.out),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	chunk := total / 10
	if chunk == 0 {
		chunk = 1
	}
	for done := 0; done < total; done += chunk {
		if err := ctx.Err(); err != nil {
			return err
		}
		_ = bar.Add(min(chunk, total-done))
		time.Sleep(w.enrichDelay)
	}
	_ = bar.Finish()

	enriched, err := w.ctrl.Enrich(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w.out, FormatSuccess(fmt.Sprintf(
		"Enriched %d of %d records (%.1f%% match rate) with %d variables.",
		enriched.Len(), enriched.InputCount, enriched.MatchRate(), len(w.ctrl.Session().Recommendations))))
	return nil
}

func (w *Wizard) stepInsights(ctx context.Context) error {
	fmt.Fprintln(w.out, InfoStyle.Render(ChartIcon+" Generating customer intelligence..."))

	report, err := w.ctrl.GenerateInsights(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w.out, RenderBox("Customer Intelligence", report.NarrativeText))
	fmt.Fprintln(w.out, SubtleStyle.Render(fmt.Sprintf(
		"Analyzed %d records across %d variables.", report.RecordsAnalyzed, report.VariablesAnalyzed)))
	return nil
}

func (w *Wizard) stepExport(ctx context.Context) error {
	choice, err := w.chooseOne(ctx, ReportIcon+" What next?", []string{
		"Save text report",
		"Save JSON report",
		"Summarize session (internal)",
		"Summarize session (customer)",
		"Refine analysis",
		"Start new analysis",
		"Quit",
	})
	if err != nil {
		return err
	}

	switch choice {
	case "Save text report":
		return w.saveReport(ctx, "customer_intelligence_report.txt", func() ([]byte, error) {
			text, exportErr := w.ctrl.ExportText()
			return []byte(text), exportErr
		})
	case "Save JSON report":
		return w.saveReport(ctx, "customer_intelligence_report.json", w.ctrl.ExportJSON)
	case "Summarize session (internal)":
		return w.printSummary(ctx, summary.AudienceInternal)
	case "Summarize session (customer)":
		return w.printSummary(ctx, summary.AudienceCustomer)
	case "Refine analysis":
		return w.ctrl.RefineAnalysis()
	case "Start new analysis":
		return w.ctrl.StartNewAnalysis(ctx)
	default:
		return errQuit
	}
}

func (w *Wizard) saveReport(ctx context.Context, defaultPath string, render func() ([]byte, error)) error {
	path, err := w.ask(ctx, fmt.Sprintf("Output path [%s]", defaultPath))
	if err != nil {
		return err
	}
	if path == "" {
		path = defaultPath
	}

	data, err := render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Fprintln(w.out, FormatSuccess("Report saved to "+path))
	return nil
}

func (w *Wizard) printSummary(ctx context.Context, audience summary.Audience) error {
	text, err := w.ctrl.SummarizeWorkflow(ctx, audience)
	if err != nil {
		return err
	}
	fmt.Fprintln(w.out, RenderBox("Workflow Summary", text))
	return nil
}
