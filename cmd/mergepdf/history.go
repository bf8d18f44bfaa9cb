// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mergepdf/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent merge runs",
	Long: `History lists recent merge runs from the local SQLite ledger: when each
run happened, what it produced, and which inputs succeeded or failed.
Recording is on by default and can be disabled per run with --no-history or
permanently with history.enabled: false in the config file.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromViper().History

		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("limit") {
			limit = cfg.MaxResults
		}
		asJSON, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}
		dbPath, err := cmd.Flags().GetString("db")
		if err != nil {
			return err
		}
		if dbPath != "" {
			cfg.Path = dbPath
		}

		store, err := history.Open(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.Recent(context.Background(), limit)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if asJSON {
			data, err := json.MarshalIndent(runs, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling runs: %w", err)
			}
			fmt.Fprintln(w, string(data))
			return nil
		}

		if len(runs) == 0 {
			fmt.Fprintln(w, "No merge runs recorded.")
			return nil
		}
		for _, run := range runs {
			fmt.Fprintf(w, "%s  %s  %d page(s), %d merged, %d failed\n",
				run.StartedAt.Local().Format("2006-01-02 15:04"),
				run.OutputPath, run.Pages, run.Succeeded, run.Failed)
			for _, item := range run.Items {
				if item.Status == history.StatusFailed {
					fmt.Fprintf(w, "    failed:  %s (%s)\n", item.Path, item.Reason)
				} else {
					fmt.Fprintf(w, "    merged:  %s (%d pages)\n", item.Path, item.Pages)
				}
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")
	historyCmd.Flags().String("db", "", "history database path (default from config)")

	rootCmd.AddCommand(historyCmd)
}
