// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// The import description must stay parseable; an ambiguous or misspelled
// parameter would fail every image input before decoding even starts.
func TestImportDescriptionParses(t *testing.T) {
	if _, err := api.Import(importDesc, pdftypes.POINTS); err != nil {
		t.Fatalf("api.Import(%q): %v", importDesc, err)
	}
}

// writePNG creates a solid-color PNG fixture and returns its path.
func writePNG(t *testing.T, dir, name string, w, h int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

// docPageCount validates doc as a PDF and returns its page count.
func docPageCount(t *testing.T, doc []byte) int {
	t.Helper()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(doc), model.NewDefaultConfiguration())
	if err != nil {
		t.Fatalf("reading produced document: %v", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		t.Fatalf("page count: %v", err)
	}
	return ctx.PageCount
}

func TestNormalizeImage_ProducesSingleA4Page(t *testing.T) {
	dir := t.TempDir()
	src := writePNG(t, dir, "photo.png", 400, 200, color.RGBA{R: 200, G: 30, B: 30, A: 255})

	doc, err := NormalizeImage(src, 0)
	if err != nil {
		t.Fatalf("NormalizeImage: %v", err)
	}
	if got := docPageCount(t, doc); got != 1 {
		t.Fatalf("page count = %d, want 1", got)
	}

	// Page geometry must be A4 regardless of the source aspect ratio.
	out := filepath.Join(dir, "page.pdf")
	if err := os.WriteFile(out, doc, 0o644); err != nil {
		t.Fatal(err)
	}
	dims, err := api.PageDimsFile(out)
	if err != nil {
		t.Fatalf("PageDimsFile: %v", err)
	}
	if len(dims) != 1 {
		t.Fatalf("dims = %d entries, want 1", len(dims))
	}
	const a4w, a4h, tol = 595.27, 841.89, 1.5
	if d := dims[0]; d.Width < a4w-tol || d.Width > a4w+tol ||
		d.Height < a4h-tol || d.Height > a4h+tol {
		t.Errorf("page dims = %.2fx%.2f, want A4 (%.2fx%.2f)", d.Width, d.Height, a4w, a4h)
	}
}

func TestNormalizeImage_DecodeError(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(bad, []byte("this is not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NormalizeImage(bad, 0)
	if !errors.Is(err, ErrImageDecode) {
		t.Errorf("err = %v, want ErrImageDecode", err)
	}
}

func TestNormalizeImage_TooLarge(t *testing.T) {
	dir := t.TempDir()
	src := writePNG(t, dir, "big.png", 100, 100, color.White)

	_, err := NormalizeImage(src, 50)
	if !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("err = %v, want ErrImageTooLarge", err)
	}
}

func TestRenderCanvas_CentersWithoutUpscaling(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			src.Set(x, y, red)
		}
	}

	canvas := renderCanvas(src)

	if got := canvas.Bounds(); got.Dx() != CanvasWidth || got.Dy() != CanvasHeight {
		t.Fatalf("canvas bounds = %v", got)
	}

	// Small sources stay at native resolution, centered.
	r, g, b, _ := canvas.At(CanvasWidth/2, CanvasHeight/2).RGBA()
	if r < 0xf000 || g > 0x0fff || b > 0x0fff {
		t.Errorf("center pixel = (%d,%d,%d), want red", r>>8, g>>8, b>>8)
	}

	// Just outside the 100x50 centered block the canvas must still be white.
	outside := canvas.At(CanvasWidth/2-51, CanvasHeight/2)
	r, g, b, _ = outside.RGBA()
	if r < 0xf000 || g < 0xf000 || b < 0xf000 {
		t.Errorf("pixel left of image = (%d,%d,%d), want white", r>>8, g>>8, b>>8)
	}

	corner := canvas.At(0, 0)
	r, g, b, _ = corner.RGBA()
	if r < 0xf000 || g < 0xf000 || b < 0xf000 {
		t.Errorf("corner pixel = (%d,%d,%d), want white", r>>8, g>>8, b>>8)
	}
}

func TestRenderCanvas_DownscalesOversized(t *testing.T) {
	// Twice the canvas width: must shrink by half and leave vertical margins.
	blue := color.RGBA{B: 255, A: 255}
	src := image.NewRGBA(image.Rect(0, 0, CanvasWidth*2, CanvasHeight))
	for y := 0; y < CanvasHeight; y++ {
		for x := 0; x < CanvasWidth*2; x++ {
			src.Set(x, y, blue)
		}
	}

	canvas := renderCanvas(src)

	// Scaled content occupies the full width and half the height, centered.
	r, g, b, _ := canvas.At(CanvasWidth/2, CanvasHeight/2).RGBA()
	if b < 0xf000 || r > 0x0fff || g > 0x0fff {
		t.Errorf("center pixel = (%d,%d,%d), want blue", r>>8, g>>8, b>>8)
	}
	top := canvas.At(CanvasWidth/2, CanvasHeight/8)
	r, g, b, _ = top.RGBA()
	if r < 0xf000 || g < 0xf000 || b < 0xf000 {
		t.Errorf("top margin pixel = (%d,%d,%d), want white", r>>8, g>>8, b>>8)
	}
}

func TestRenderCanvas_FlattensAlphaOverWhite(t *testing.T) {
	// Fully transparent source: the page must stay white.
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	canvas := renderCanvas(src)

	r, g, b, _ := canvas.At(CanvasWidth/2, CanvasHeight/2).RGBA()
	if r < 0xf000 || g < 0xf000 || b < 0xf000 {
		t.Errorf("center pixel = (%d,%d,%d), want white", r>>8, g>>8, b>>8)
	}
}
