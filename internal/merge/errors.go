// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import "errors"

var (
	// ErrUnsupportedType marks an input whose extension is outside the
	// allow-lists (R1.2).
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrImageDecode marks an image that could not be decoded (R2.2).
	ErrImageDecode = errors.New("image decode failed")

	// ErrImageTooLarge marks an image whose pixel area exceeds the
	// decompression-bomb bound (R2.3).
	ErrImageTooLarge = errors.New("image dimensions exceed safety bound")

	// ErrPDFParse marks a PDF that is malformed, encrypted, or has zero
	// pages (R3.2). Encrypted documents fail unconditionally; there is no
	// password prompt.
	ErrPDFParse = errors.New("pdf parse failed")

	// ErrNoValidPages is the only error MergeAll itself returns: every item
	// failed and zero pages were produced (R4.4).
	ErrNoValidPages = errors.New("no valid pages produced")
)
