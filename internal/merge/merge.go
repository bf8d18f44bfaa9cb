// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cheggaaa/pb/v3"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/mergepdf/pkg/types"
)

// Options holds the configurable parameters for a merge run.
type Options struct {
	// Verbose enables one status line per processed item, written to the
	// writer passed to MergeAll.
	Verbose bool

	// MaxImagePixels bounds decoded image area. Zero selects
	// DefaultMaxImagePixels.
	MaxImagePixels int64

	// ProgressBarOutput receives the progress bar. Nil disables it.
	ProgressBarOutput io.Writer
}

// Result is the outcome of one merge run: the assembled document, the items
// that contributed pages (in input order), and the items that failed.
type Result struct {
	// Document is the merged PDF, built once in memory. The caller owns
	// writing it to disk.
	Document []byte

	// Items lists successfully processed inputs with their page counts,
	// in input order.
	Items []types.ItemResult

	// Failures lists inputs that contributed no pages, with reasons,
	// in input order.
	Failures []types.Failure
}

// PageCount returns the total number of pages in the merged document.
func (r *Result) PageCount() int {
	total := 0
	for _, it := range r.Items {
		total += it.Pages
	}
	return total
}

// MergeAll processes items in the given order exactly once: no reordering,
// no deduplication, no retries. Each item either contributes its pages to
// the output or is recorded as a failure; a bad input never aborts the run
// (R4.1-R4.3). The only failure mode of the call itself is ErrNoValidPages,
// when every item failed. Page order in the document is the order-preserving
// flatten of per-item page sequences (R4.2).
func MergeAll(items []types.InputItem, opts Options, w io.Writer) (*Result, error) {
	if w == nil {
		w = io.Discard
	}

	var bar *pb.ProgressBar
	if opts.ProgressBarOutput != nil && len(items) > 0 {
		bar = pb.New(len(items)).
			SetTemplateString(`{{ bar . " " "━" "━" " " " "}} {{percent .}}`).
			SetWriter(opts.ProgressBarOutput).
			Start()
		defer bar.Finish()
	}

	result := &Result{}
	var segments [][]byte

	for _, item := range items {
		if bar != nil {
			bar.Increment()
		}

		segment, pages, err := processItem(item, opts)
		if err != nil {
			if opts.Verbose {
				fmt.Fprintf(w, "failed:  %s (%v)\n", item.Path, err)
			}
			result.Failures = append(result.Failures, types.Failure{
				Item:   item,
				Reason: err.Error(),
			})
			continue
		}

		if opts.Verbose {
			fmt.Fprintf(w, "adding:  %s (%d pages)\n", item.Path, pages)
		}
		segments = append(segments, segment)
		result.Items = append(result.Items, types.ItemResult{Item: item, Pages: pages})
	}

	if len(segments) == 0 {
		// The failure list still travels back so the caller can report it.
		return result, ErrNoValidPages
	}

	doc, err := assemble(segments)
	if err != nil {
		return nil, fmt.Errorf("assembling output document: %w", err)
	}
	result.Document = doc
	return result, nil
}

// processItem converts one input into a PDF segment and its page count.
func processItem(item types.InputItem, opts Options) ([]byte, int, error) {
	switch item.Kind {
	case types.KindPDF:
		return ReadDocument(item.Path)
	case types.KindImage:
		segment, err := NormalizeImage(item.Path, opts.MaxImagePixels)
		if err != nil {
			return nil, 0, err
		}
		return segment, 1, nil
	default:
		return nil, 0, ErrUnsupportedType
	}
}

// assemble concatenates the per-item segments, in order, into one document.
func assemble(segments [][]byte) ([]byte, error) {
	if len(segments) == 1 {
		return segments[0], nil
	}

	readers := make([]io.ReadSeeker, len(segments))
	for i, s := range segments {
		readers[i] = bytes.NewReader(s)
	}

	var out bytes.Buffer
	if err := api.MergeRaw(readers, &out, false, model.NewDefaultConfiguration()); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
