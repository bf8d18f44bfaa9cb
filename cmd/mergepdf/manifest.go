// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mergepdf/internal/manifest"
	"github.com/pdiddy/mergepdf/internal/output"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest [file]",
	Short: "Run a merge described by a YAML manifest",
	Long: `Manifest replays a merge run described in a YAML file: an ordered list of
inputs, the output path, and optional overwrite/verbose settings. The root
command can produce such a file with --save-manifest after a successful run.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Read(args[0])
		if err != nil {
			return err
		}

		noHistory, err := cmd.Flags().GetBool("no-history")
		if err != nil {
			return err
		}

		opts := runOptions{
			output:    m.Output,
			verbose:   m.Verbose,
			force:     m.Overwrite,
			noHistory: noHistory,
		}
		confirm := output.StdinConfirm(os.Stdin, cmd.OutOrStdout())
		return executeRun(m.Inputs, opts, confirm, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	manifestCmd.Flags().Bool("no-history", false, "do not record this run in the merge history")

	rootCmd.AddCommand(manifestCmd)
}
