package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/brandresponse/brandintel/internal/catalog"
	"github.com/brandresponse/brandintel/internal/cli"
	"github.com/brandresponse/brandintel/internal/config"
	"github.com/brandresponse/brandintel/internal/enrich"
	"github.com/brandresponse/brandintel/internal/insights"
	"github.com/brandresponse/brandintel/internal/selector"
	"github.com/brandresponse/brandintel/internal/storage"
	"github.com/brandresponse/brandintel/internal/summary"
	"github.com/brandresponse/brandintel/internal/workflow"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the interactive customer intelligence analysis",
		Long: `Run walks through the six-step analysis workflow: upload customer
data, capture business context, select variables, enrich via the
identity graph, generate insights, and export the report.`,
		RunE: runAnalysis,
	}

	cmd.Flags().String("mode", "", "insight mode (narrative, structured)")
	cmd.Flags().Float64("match-rate", 0, "simulated identity-graph match rate (0-1)")
	_ = viper.BindPFlag("insights.mode", cmd.Flags().Lookup("mode"))
	_ = viper.BindPFlag("enrichment.match_rate", cmd.Flags().Lookup("match-rate"))

	return cmd
}

func runAnalysis(cmd *cobra.Command, _ []string) error {
	client, err := buildLLMClient()
	if err != nil {
		return err
	}

	mode := insights.Mode(viper.GetString("insights.mode"))
	if mode != insights.ModeNarrative && mode != insights.ModeStructured {
		return fmt.Errorf("invalid insights mode: %s", mode)
	}

	enricher := enrich.NewFixtureEnricher()
	if rate := viper.GetFloat64("enrichment.match_rate"); rate > 0 {
		enricher.MatchRate = rate
	}

	archive, err := storage.NewSQLiteStorage(config.ExpandPath(viper.GetString("database.path")))
	if err != nil {
		return fmt.Errorf("failed to open session archive: %w", err)
	}
	defer func() {
		if closeErr := archive.Close(); closeErr != nil {
			slog.Error("failed to close session archive", "error", closeErr)
		}
	}()

	ctrl, err := workflow.New(workflow.Options{
		Selector:   selector.New(client, catalog.Default()),
		Enricher:   enricher,
		Generator:  insights.New(client, mode),
		Summarizer: summary.New(client),
		Archive:    archive,
		LogDir:     config.ExpandPath(viper.GetString("logs.dir")),
	})
	if err != nil {
		return err
	}

	wizard := cli.NewWizard(ctrl, os.Stdin, os.Stdout)
	return wizard.Run(cmd.Context())
}
