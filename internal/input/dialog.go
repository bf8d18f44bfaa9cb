// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package input

import (
	"errors"

	"github.com/ncruces/zenity"
)

// ErrCanceled reports that the user dismissed a dialog without choosing.
var ErrCanceled = zenity.ErrCanceled

// Dialog is a Source backed by the native multi-select file dialog.
// Selection order is whatever the OS reports.
type Dialog struct{}

// mergeableFilters restricts the open dialog to the supported input formats.
var mergeableFilters = zenity.FileFilters{
	{
		Name:     "PDF and image files",
		Patterns: []string{"*.pdf", "*.png", "*.jpg", "*.jpeg", "*.bmp", "*.tiff", "*.webp"},
		CaseFold: true,
	},
}

// Paths opens the file selection dialog. A dismissed dialog returns
// ErrCanceled.
func (Dialog) Paths() ([]string, error) {
	return zenity.SelectFileMultiple(
		zenity.Title("Select files to merge"),
		mergeableFilters,
	)
}

// OutputPath opens the save dialog for the merged document. Overwrite
// confirmation is deferred to ConfirmOverwrite at write time, after the
// merge has produced pages.
func (Dialog) OutputPath(defaultName string) (string, error) {
	return zenity.SelectFileSave(
		zenity.Title("Save merged PDF as"),
		zenity.Filename(defaultName),
		zenity.FileFilters{{Name: "PDF files", Patterns: []string{"*.pdf"}, CaseFold: true}},
	)
}

// ConfirmOverwrite asks whether path may be replaced, as a question dialog.
// It is the GUI counterpart of the terminal y/N prompt.
func (Dialog) ConfirmOverwrite(path string) (bool, error) {
	err := zenity.Question(
		"Output file '"+path+"' already exists. Overwrite?",
		zenity.Title("mergepdf"),
	)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, zenity.ErrCanceled) {
		return false, nil
	}
	return false, err
}
