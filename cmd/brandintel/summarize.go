package main

import (
	"fmt"

	"github.com/brandresponse/brandintel/internal/eventlog"
	"github.com/brandresponse/brandintel/internal/summary"
	"github.com/spf13/cobra"
)

func summarizeCmd() *cobra.Command {
	var audience string

	cmd := &cobra.Command{
		Use:   "summarize <session-log-file>",
		Short: "Summarize a session's event log for a chosen audience",
		Long: `Summarize reads a session event log and produces an AI-written
summary. The internal audience framing targets partners evaluating the
platform; the customer framing targets the client who received the
analysis.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			aud := summary.Audience(audience)
			if aud != summary.AudienceInternal && aud != summary.AudienceCustomer {
				return fmt.Errorf("invalid audience: %s (want internal or customer)", audience)
			}

			events, err := eventlog.ReadFile(args[0])
			if err != nil {
				return err
			}

			client, err := buildLLMClient()
			if err != nil {
				return err
			}

			text := summary.New(client).Summarize(cmd.Context(), events, aud)
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&audience, "audience", string(summary.AudienceInternal), "summary audience (internal, customer)")
	return cmd
}
