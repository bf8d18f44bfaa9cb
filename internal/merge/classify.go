// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge implements the page-normalization and merge-ordering pipeline.
// Implements: prd001-merge-pipeline (R1-R4); docs/ARCHITECTURE § Merge Pipeline.
package merge

import (
	"path/filepath"
	"strings"

	"github.com/pdiddy/mergepdf/pkg/types"
)

// imageExtensions is the fixed allow-list of single-image input formats.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

// Classify tags a path as a PDF document, an image file, or unsupported,
// purely from its lowercased extension. Existence is the caller's concern;
// unsupported extensions are handled downstream as recorded failures, so
// Classify never errors (R1.1, R1.2).
func Classify(path string) types.InputItem {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".pdf":
		return types.InputItem{Path: path, Kind: types.KindPDF}
	case imageExtensions[ext]:
		return types.InputItem{Path: path, Kind: types.KindImage}
	default:
		return types.InputItem{Path: path, Kind: types.KindUnsupported}
	}
}

// ClassifyAll maps Classify over an ordered path list, preserving order and
// duplicates.
func ClassifyAll(paths []string) []types.InputItem {
	items := make([]types.InputItem, len(paths))
	for i, p := range paths {
		items[i] = Classify(p)
	}
	return items
}
