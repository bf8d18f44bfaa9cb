// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package input enumerates candidate files for a merge run, either from
// command-line arguments or from a native file dialog. The pipeline itself
// depends only on the Source interface, never on argv or any UI toolkit.
// Implements: prd003-input-sources; docs/ARCHITECTURE § Input Sources.
package input

import (
	"fmt"
	"io"
	"os"
)

// Source produces the ordered list of candidate input paths for one run.
type Source interface {
	// Paths returns candidate paths in presentation order. Duplicates are
	// allowed and preserved.
	Paths() ([]string, error)
}

// Args is a Source backed by command-line arguments, in argument order.
type Args struct {
	Values []string
}

// Paths returns the arguments unchanged.
func (a Args) Paths() ([]string, error) {
	return a.Values, nil
}

// Filter drops paths that do not exist or are not regular files, printing a
// warning per dropped path. Order and duplicates of the survivors are
// preserved.
func Filter(paths []string, w io.Writer) []string {
	if w == nil {
		w = io.Discard
	}

	valid := make([]string, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			fmt.Fprintf(w, "warning: file not found: %s\n", p)
			continue
		}
		if info.IsDir() || !info.Mode().IsRegular() {
			fmt.Fprintf(w, "warning: not a file: %s\n", p)
			continue
		}
		valid = append(valid, p)
	}
	return valid
}
