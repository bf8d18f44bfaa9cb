// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MergeConfig holds settings for a merge run.
// Per prd001-merge-pipeline R4.1-R4.3.
type MergeConfig struct {
	// OutputPath is the destination for the merged document (default "merged.pdf").
	OutputPath string `json:"output" yaml:"output"`

	// Verbose enables per-item progress lines during the run.
	Verbose bool `json:"verbose" yaml:"verbose"`

	// MaxImagePixels bounds decoded image area (width*height) as a guard
	// against decompression-bomb inputs (default 100 megapixels).
	MaxImagePixels int64 `json:"max_image_pixels" yaml:"max_image_pixels"`
}

// HistoryConfig holds settings for the merge history ledger.
// Per prd002-history R1.1-R1.3.
type HistoryConfig struct {
	// Enabled controls whether completed runs are recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the SQLite database location. Empty selects the default
	// under the user config directory.
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default number of runs listed by the history command.
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all tool configuration.
type Config struct {
	Merge   MergeConfig   `json:"merge" yaml:"merge"`
	History HistoryConfig `json:"history" yaml:"history"`
}
