// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"testing"

	"github.com/pdiddy/mergepdf/pkg/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want types.Kind
	}{
		{"report.pdf", types.KindPDF},
		{"REPORT.PDF", types.KindPDF},
		{"/abs/path/to/scan.Pdf", types.KindPDF},
		{"photo.png", types.KindImage},
		{"photo.jpg", types.KindImage},
		{"photo.JPEG", types.KindImage},
		{"photo.bmp", types.KindImage},
		{"photo.tiff", types.KindImage},
		{"photo.webp", types.KindImage},
		{"notes.txt", types.KindUnsupported},
		{"archive.tar.gz", types.KindUnsupported},
		{"noextension", types.KindUnsupported},
		{"photo.tif", types.KindUnsupported}, // .tif is not on the allow-list
		{"", types.KindUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			item := Classify(tt.path)
			if item.Kind != tt.want {
				t.Errorf("Classify(%q).Kind = %q, want %q", tt.path, item.Kind, tt.want)
			}
			if item.Path != tt.path {
				t.Errorf("Classify(%q).Path = %q", tt.path, item.Path)
			}
		})
	}
}

func TestClassifyAll_PreservesOrderAndDuplicates(t *testing.T) {
	paths := []string{"b.pdf", "a.png", "b.pdf", "x.txt"}
	items := ClassifyAll(paths)

	if len(items) != len(paths) {
		t.Fatalf("len = %d, want %d", len(items), len(paths))
	}
	for i, p := range paths {
		if items[i].Path != p {
			t.Errorf("items[%d].Path = %q, want %q", i, items[i].Path, p)
		}
	}
	if items[0].Kind != types.KindPDF || items[2].Kind != types.KindPDF {
		t.Error("duplicate entries should classify identically")
	}
}
