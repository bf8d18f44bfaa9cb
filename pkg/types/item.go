// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Kind classifies an input path by its file extension.
// Per prd001-merge-pipeline R1.1.
type Kind string

const (
	// KindPDF is an existing PDF document contributing all of its pages.
	KindPDF Kind = "pdf"

	// KindImage is a single-image file contributing one normalized page.
	KindImage Kind = "image"

	// KindUnsupported is any extension outside the allow-lists. Unsupported
	// items are recorded as failures downstream, never rejected up front.
	KindUnsupported Kind = "unsupported"
)

// InputItem is one user-supplied path with its classification. Items are
// created once at the start of a run and never mutated.
type InputItem struct {
	// Path is the file system path as supplied (argument or dialog selection).
	Path string `json:"path" yaml:"path"`

	// Kind is derived from the lowercased extension.
	Kind Kind `json:"kind" yaml:"kind"`
}

// ItemResult records a successfully processed item and the number of pages
// it contributed to the output.
type ItemResult struct {
	Item  InputItem `json:"item" yaml:"item"`
	Pages int       `json:"pages" yaml:"pages"`
}

// Failure records an item that could not contribute any pages, with a
// human-readable reason. Failures never abort the run (R2.4).
type Failure struct {
	Item   InputItem `json:"item" yaml:"item"`
	Reason string    `json:"reason" yaml:"reason"`
}
