// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mergepdf CLI.
// Implements: prd001-merge-pipeline, prd002-history, prd004-manifests
// (command surface). See docs/ARCHITECTURE § Command Surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mergepdf/internal/merge"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd performs the merge. With no arguments the tool switches to GUI
// mode and opens the native file selection dialog.
var rootCmd = &cobra.Command{
	Use:   "mergepdf [input_files...]",
	Short: "Concatenate PDF documents and images into a single PDF",
	Long: `mergepdf concatenates pages from PDF documents and image files into one
output PDF. PDF inputs contribute all of their pages unmodified, in order;
image inputs (png, jpg, jpeg, bmp, tiff, webp) are rendered centered on a
white A4 page without upscaling. A bad input is reported and skipped, never
aborting the rest of the run.

With no arguments a file selection dialog opens instead.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := optionsFromFlags(cmd)
		if err != nil {
			return err
		}
		return runMerge(args, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mergepdf.yaml or ~/.config/mergepdf/config.yaml)")

	rootCmd.Flags().StringP("output", "o", "", "output filename (default: merged.pdf)")
	rootCmd.Flags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.Flags().Bool("force", false, "overwrite the output file without prompting")
	rootCmd.Flags().Bool("no-history", false, "do not record this run in the merge history")
	rootCmd.Flags().String("save-manifest", "", "write a reusable merge manifest to this path after a successful run")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mergepdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mergepdf"))
		}
	}

	viper.SetDefault("merge.output", "merged.pdf")
	viper.SetDefault("merge.verbose", false)
	viper.SetDefault("merge.max_image_pixels", merge.DefaultMaxImagePixels)
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.max_results", 20)

	viper.SetEnvPrefix("MERGEPDF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
