// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest reads and writes merge manifests: YAML files naming the
// ordered inputs and the output of a merge run, so a run can be replayed
// without retyping arguments.
// Implements: prd004-manifests; docs/ARCHITECTURE § Manifests.
package manifest

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// DefaultOutput is the output filename used when a manifest omits one.
const DefaultOutput = "merged.pdf"

// ErrNoInputs reports a manifest that lists no input files.
var ErrNoInputs = errors.New("manifest lists no inputs")

// Manifest is the on-disk description of a merge run. Input order is
// significant and preserved.
type Manifest struct {
	// Output is the destination path for the merged document.
	Output string `yaml:"output"`

	// Overwrite skips the overwrite confirmation for an existing output.
	Overwrite bool `yaml:"overwrite,omitempty"`

	// Verbose enables per-item progress lines when the manifest runs.
	Verbose bool `yaml:"verbose,omitempty"`

	// Inputs lists the files to merge, in output order.
	Inputs []string `yaml:"inputs"`
}

// Read loads and validates a manifest. A missing output name defaults to
// DefaultOutput.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if len(m.Inputs) == 0 {
		return nil, ErrNoInputs
	}
	if m.Output == "" {
		m.Output = DefaultOutput
	}
	return &m, nil
}

// Write saves a manifest to path.
func Write(path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
