// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"

	"github.com/spf13/viper"
)

func TestConfigFromViper(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("merge.output", "combined.pdf")
	viper.Set("merge.verbose", true)
	viper.Set("merge.max_image_pixels", int64(5000))
	viper.Set("history.enabled", false)
	viper.Set("history.path", "/tmp/ledger.db")
	viper.Set("history.max_results", 7)

	cfg := configFromViper()

	if cfg.Merge.OutputPath != "combined.pdf" {
		t.Errorf("OutputPath = %q", cfg.Merge.OutputPath)
	}
	if !cfg.Merge.Verbose {
		t.Error("Verbose should be carried from config")
	}
	if cfg.Merge.MaxImagePixels != 5000 {
		t.Errorf("MaxImagePixels = %d", cfg.Merge.MaxImagePixels)
	}
	if cfg.History.Enabled || cfg.History.Path != "/tmp/ledger.db" || cfg.History.MaxResults != 7 {
		t.Errorf("History = %+v", cfg.History)
	}
}

func TestResolveOutput(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("merge.output", "from-config.pdf")
	cfg := configFromViper()

	if got := resolveOutput(runOptions{output: "from-flag.pdf"}, cfg); got != "from-flag.pdf" {
		t.Errorf("flag should win, got %q", got)
	}
	if got := resolveOutput(runOptions{}, cfg); got != "from-config.pdf" {
		t.Errorf("config default should apply, got %q", got)
	}
}
