// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output writes the merged document to disk. The write is atomic:
// the document lands in a temp file in the destination directory and is
// renamed into place, so a crash mid-run never leaves a partial output.
// Implements: prd001-merge-pipeline R5.1-R5.3.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrAborted reports that the user declined to overwrite the output file.
// No file is written in that case.
var ErrAborted = errors.New("operation cancelled")

// ConfirmFunc decides whether an existing file at path may be replaced.
type ConfirmFunc func(path string) (bool, error)

// StdinConfirm returns a ConfirmFunc that prompts on w and reads a y/N
// answer from r.
func StdinConfirm(r io.Reader, w io.Writer) ConfirmFunc {
	reader := bufio.NewReader(r)
	return func(path string) (bool, error) {
		fmt.Fprintf(w, "Output file '%s' already exists. Overwrite? (y/N): ", path)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false, nil
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes", nil
	}
}

// Write stores doc at path. When the destination exists and force is unset,
// confirm is consulted first; declining returns ErrAborted with the
// destination untouched.
func Write(doc []byte, path string, force bool, confirm ConfirmFunc) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			if confirm == nil {
				return ErrAborted
			}
			ok, err := confirm(path)
			if err != nil {
				return fmt.Errorf("overwrite confirmation: %w", err)
			}
			if !ok {
				return ErrAborted
			}
		}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".mergepdf-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing output: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting output permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming output into place: %w", err)
	}
	return nil
}
