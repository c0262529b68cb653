package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/brandresponse/brandintel/internal/export"
	"github.com/brandresponse/brandintel/internal/model"
	"github.com/brandresponse/brandintel/internal/storage"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export <session-id>",
		Short: "Re-export an archived session's report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("invalid format: %s (want text or json)", format)
			}

			return withArchive(func(archive *storage.SQLiteStorage) error {
				doc, err := archive.GetSession(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				var data []byte
				if format == "json" {
					data, err = json.MarshalIndent(doc, "", "  ")
					if err != nil {
						return fmt.Errorf("failed to render report: %w", err)
					}
				} else {
					session := model.NewSessionWithID(args[0])
					session.Context = &doc.BusinessContext
					session.Recommendations = doc.SelectedVariables
					session.Report = doc.Insights
					data = []byte(export.Text(session))
				}

				if output == "" {
					fmt.Fprintln(cmd.OutOrStdout(), string(data))
					return nil
				}
				if err := os.WriteFile(output, data, 0644); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Report saved to "+output)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "export format (text, json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
