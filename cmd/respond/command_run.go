package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/flowkit-dev/respond"
	"github.com/flowkit-dev/respond/internal/batch"
	"github.com/spf13/cobra"
)

func init() {
	runCommand.Flags().Bool("continue-on-fail", false, "record row failures and keep going")
	runCommand.Flags().Bool("quick", false, "trade quality for latency on every row")
	runCommand.Flags().Bool("raw", false, "emit the provider's raw response bodies")
	runCommand.Flags().Duration("timeout", 5*time.Minute, "per-request timeout")

	rootCmd.AddCommand(runCommand)
}

var runCommand = &cobra.Command{
	Use:   "run <rows.json>",
	Short: "Run a batch of rows from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read rows file: %w", err)
		}

		var rows []batch.Row
		if err := json.Unmarshal(data, &rows); err != nil {
			return fmt.Errorf("failed to parse rows file: %w", err)
		}

		flags := cmd.Flags()
		continueOnFail, _ := flags.GetBool("continue-on-fail")
		quick, _ := flags.GetBool("quick")
		raw, _ := flags.GetBool("raw")
		timeout, _ := flags.GetDuration("timeout")

		batchClient := respond.NewClient(apiKey,
			respond.WithHTTPClient(&http.Client{Timeout: timeout}),
		)
		if client.Organization != "" {
			batchClient.Organization = client.Organization
		}
		batchClient.BaseURL = client.BaseURL

		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

		runner := batch.NewRunner(batchClient, batchClient, logger, batch.Options{
			ContinueOnFail: continueOnFail,
			QuickMode:      quick,
			RawOutput:      raw,
			DefaultModel:   model,
		})

		records, runErr := runner.Run(cmd.Context(), rows)

		enc := json.NewEncoder(cmd.OutOrStdout())
		for _, rec := range records {
			if err := enc.Encode(rec); err != nil {
				return err
			}
		}

		return runErr
	},
}
