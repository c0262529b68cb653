package main

import (
	"fmt"

	"github.com/brandresponse/brandintel/internal/config"
	"github.com/brandresponse/brandintel/internal/export"
	"github.com/brandresponse/brandintel/internal/model"
	"github.com/brandresponse/brandintel/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func sessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Browse archived analysis sessions",
	}
	cmd.AddCommand(sessionsListCmd())
	cmd.AddCommand(sessionsShowCmd())
	return cmd
}

func withArchive(fn func(*storage.SQLiteStorage) error) error {
	archive, err := storage.NewSQLiteStorage(config.ExpandPath(viper.GetString("database.path")))
	if err != nil {
		return fmt.Errorf("failed to open session archive: %w", err)
	}
	defer func() { _ = archive.Close() }()
	return fn(archive)
}

func sessionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List archived sessions, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withArchive(func(archive *storage.SQLiteStorage) error {
				sessions, err := archive.ListSessions(cmd.Context())
				if err != nil {
					return err
				}
				if len(sessions) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No archived sessions.")
					return nil
				}

				for _, s := range sessions {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %-30s %-20s %5d records  %2d variables\n",
						s.ID, s.BusinessName, s.Industry, s.RecordCount, s.VariableCount)
				}
				return nil
			})
		},
	}
}

func sessionsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Print an archived session's report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withArchive(func(archive *storage.SQLiteStorage) error {
				doc, err := archive.GetSession(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				session := model.NewSessionWithID(args[0])
				session.Context = &doc.BusinessContext
				session.Recommendations = doc.SelectedVariables
				session.Report = doc.Insights
				fmt.Fprintln(cmd.OutOrStdout(), export.Text(session))
				return nil
			})
		},
	}
}
