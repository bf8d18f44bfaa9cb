// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ReadDocument opens the PDF at path, validates it, and returns the
// document as a normalized segment along with its page count. All of the
// document's pages travel together, in original order, unmodified (R3.1).
// Malformed, encrypted, and zero-page documents fail with ErrPDFParse; the
// file handle is released on every path (R3.2).
func ReadDocument(path string) ([]byte, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPDFParse, err)
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPDFParse, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPDFParse, err)
	}
	if ctx.PageCount == 0 {
		return nil, 0, fmt.Errorf("%w: document has no pages", ErrPDFParse)
	}

	var out bytes.Buffer
	if err := api.WriteContext(ctx, &out); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPDFParse, err)
	}
	return out.Bytes(), ctx.PageCount, nil
}
