// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"math"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	xdraw "golang.org/x/image/draw"

	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// A4 at 300 DPI. Every image-derived page in a run has this geometry (R2.1).
const (
	CanvasWidth  = 2480
	CanvasHeight = 3508
)

// DefaultMaxImagePixels caps decoded image area at 100 megapixels.
const DefaultMaxImagePixels int64 = 100_000_000

const jpegQuality = 90

// importDesc places the rendered canvas on an A4 page. The canvas aspect
// ratio matches A4, so a relative scale of 1.0 fills the page edge to edge.
// The scale parameter must be spelled "sc"; the bare "s" prefix is ambiguous
// to the description parser.
const importDesc = "form:A4, pos:c, sc:1.0 rel"

// NormalizeImage decodes the image at path, renders it centered on a white
// A4/300-DPI canvas without upscaling, and returns a single-page PDF
// segment. The image header is inspected before full decode so oversized
// inputs fail with ErrImageTooLarge instead of exhausting memory (R2.2, R2.3).
func NormalizeImage(path string, maxPixels int64) ([]byte, error) {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxImagePixels
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageDecode, cfg.Width, cfg.Height)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels",
			ErrImageTooLarge, cfg.Width, cfg.Height, maxPixels)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}

	canvas := renderCanvas(src)

	var img bytes.Buffer
	if err := jpeg.Encode(&img, canvas, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encoding canvas: %w", err)
	}

	imp, err := api.Import(importDesc, pdftypes.POINTS)
	if err != nil {
		return nil, fmt.Errorf("parsing import description: %w", err)
	}

	var out bytes.Buffer
	if err := api.ImportImages(nil, &out, []io.Reader{&img}, imp, model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("importing image page: %w", err)
	}
	return out.Bytes(), nil
}

// renderCanvas scales src onto a white canvas, preserving aspect ratio and
// never upscaling beyond native resolution. The scaled image is centered,
// and drawing with Over flattens any alpha channel against the white
// background (R2.1).
func renderCanvas(src image.Image) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	xdraw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)

	iw := src.Bounds().Dx()
	ih := src.Bounds().Dy()

	scale := math.Min(
		float64(CanvasWidth)/float64(iw),
		float64(CanvasHeight)/float64(ih),
	)
	if scale > 1.0 {
		scale = 1.0
	}

	tw := int(float64(iw)*scale + 0.5)
	th := int(float64(ih)*scale + 0.5)
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}
	if tw > CanvasWidth {
		tw = CanvasWidth
	}
	if th > CanvasHeight {
		th = CanvasHeight
	}

	x0 := (CanvasWidth - tw) / 2
	y0 := (CanvasHeight - th) / 2
	target := image.Rect(x0, y0, x0+tw, y0+th)

	xdraw.CatmullRom.Scale(canvas, target, src, src.Bounds(), xdraw.Over, nil)
	return canvas
}
