// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mergepdf/internal/history"
	"github.com/pdiddy/mergepdf/internal/input"
	"github.com/pdiddy/mergepdf/internal/manifest"
	"github.com/pdiddy/mergepdf/internal/merge"
	"github.com/pdiddy/mergepdf/internal/output"
	"github.com/pdiddy/mergepdf/pkg/types"
)

// runOptions collects the root command's flags for one merge run.
type runOptions struct {
	output       string
	verbose      bool
	force        bool
	noHistory    bool
	saveManifest string
}

func optionsFromFlags(cmd *cobra.Command) (runOptions, error) {
	var opts runOptions
	var err error

	if opts.output, err = cmd.Flags().GetString("output"); err != nil {
		return opts, err
	}
	if opts.verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
		return opts, err
	}
	if opts.force, err = cmd.Flags().GetBool("force"); err != nil {
		return opts, err
	}
	if opts.noHistory, err = cmd.Flags().GetBool("no-history"); err != nil {
		return opts, err
	}
	if opts.saveManifest, err = cmd.Flags().GetString("save-manifest"); err != nil {
		return opts, err
	}
	return opts, nil
}

// configFromViper materializes the resolved configuration (file, environment,
// defaults) into the shared config types.
func configFromViper() types.Config {
	return types.Config{
		Merge: types.MergeConfig{
			OutputPath:     viper.GetString("merge.output"),
			Verbose:        viper.GetBool("merge.verbose"),
			MaxImagePixels: viper.GetInt64("merge.max_image_pixels"),
		},
		History: types.HistoryConfig{
			Enabled:    viper.GetBool("history.enabled"),
			Path:       viper.GetString("history.path"),
			MaxResults: viper.GetInt("history.max_results"),
		},
	}
}

// resolveOutput applies the configured default when no -o flag was given.
func resolveOutput(opts runOptions, cfg types.Config) string {
	if opts.output != "" {
		return opts.output
	}
	return cfg.Merge.OutputPath
}

// runMerge gathers input paths (arguments or GUI dialog) and hands off to
// executeRun. A cancelled dialog is not an error: the original tool exits
// cleanly when the user backs out of file selection.
func runMerge(args []string, opts runOptions, stdout, stderr io.Writer) error {
	cfg := configFromViper()
	opts.output = resolveOutput(opts, cfg)
	if cfg.Merge.Verbose {
		opts.verbose = true
	}
	confirm := output.StdinConfirm(os.Stdin, stdout)

	var src input.Source = input.Args{Values: args}
	paths, err := src.Paths()
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		fmt.Fprintln(stdout, "No files provided. Opening file selection dialog...")
		dlg := input.Dialog{}

		selected, err := dlg.Paths()
		if errors.Is(err, input.ErrCanceled) || (err == nil && len(selected) == 0) {
			fmt.Fprintln(stdout, "No files selected. Operation cancelled.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("file selection: %w", err)
		}

		outPath, err := dlg.OutputPath(opts.output)
		if errors.Is(err, input.ErrCanceled) {
			fmt.Fprintln(stdout, "No output file specified. Operation cancelled.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("output selection: %w", err)
		}

		paths = selected
		opts.output = outPath
		// Overwrite confirmation stays in the GUI for paths chosen here.
		confirm = dlg.ConfirmOverwrite
	}

	return executeRun(paths, opts, confirm, stdout, stderr)
}

// executeRun is the shared merge flow behind the root and manifest commands:
// existence filter, classify, pipeline, summary, confirmed atomic write,
// history record.
func executeRun(paths []string, opts runOptions, confirm output.ConfirmFunc, stdout, stderr io.Writer) error {
	valid := input.Filter(paths, stderr)
	if len(valid) == 0 {
		return errors.New("no usable input files")
	}

	cfg := configFromViper()
	items := merge.ClassifyAll(valid)
	mergeOpts := merge.Options{
		Verbose:        opts.verbose,
		MaxImagePixels: cfg.Merge.MaxImagePixels,
	}
	if !opts.verbose {
		mergeOpts.ProgressBarOutput = stderr
	}

	started := time.Now()
	res, err := merge.MergeAll(items, mergeOpts, stdout)
	if err != nil {
		if errors.Is(err, merge.ErrNoValidPages) {
			printFailures(stderr, res)
		}
		return err
	}

	printFailures(stderr, res)

	if err := output.Write(res.Document, opts.output, opts.force, confirm); err != nil {
		if errors.Is(err, output.ErrAborted) {
			fmt.Fprintln(stdout, "Operation cancelled.")
		}
		return err
	}

	fmt.Fprintf(stdout, "\nSuccessfully merged %d of %d file(s) into: %s\n",
		len(res.Items), len(items), opts.output)
	fmt.Fprintf(stdout, "Total pages in merged PDF: %d\n", res.PageCount())

	if !opts.noHistory && cfg.History.Enabled {
		if err := recordRun(cfg.History, opts.output, items, res, started); err != nil {
			fmt.Fprintf(stderr, "warning: history not recorded: %v\n", err)
		}
	}

	if opts.saveManifest != "" {
		m := &manifest.Manifest{
			Output:    opts.output,
			Overwrite: opts.force,
			Verbose:   opts.verbose,
			Inputs:    valid,
		}
		if err := manifest.Write(opts.saveManifest, m); err != nil {
			fmt.Fprintf(stderr, "warning: manifest not saved: %v\n", err)
		} else {
			fmt.Fprintf(stdout, "Manifest saved to: %s\n", opts.saveManifest)
		}
	}
	return nil
}

// printFailures lists skipped items with reasons. Printed regardless of
// verbosity; res may be nil when the whole run failed before assembly.
func printFailures(w io.Writer, res *merge.Result) {
	if res == nil {
		return
	}
	for _, f := range res.Failures {
		fmt.Fprintf(w, "failed:  %s (%s)\n", f.Item.Path, f.Reason)
	}
}

func recordRun(cfg types.HistoryConfig, outPath string, items []types.InputItem, res *merge.Result, started time.Time) error {
	store, err := history.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	run := history.FromResult(outPath, items, res, started)
	_, err = store.Record(context.Background(), run)
	return err
}
