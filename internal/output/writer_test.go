// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_NewFile(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "merged.pdf")

	require.NoError(t, Write([]byte("%PDF-out"), dst, false, nil))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-out", string(data))

	// No temp files left behind.
	leftovers, err := filepath.Glob(filepath.Join(dir, ".mergepdf-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestWrite_ExistingDeclined(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "merged.pdf")
	require.NoError(t, os.WriteFile(dst, []byte("original"), 0o644))

	confirm := func(path string) (bool, error) { return false, nil }
	err := Write([]byte("replacement"), dst, false, confirm)
	assert.ErrorIs(t, err, ErrAborted)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data), "declined overwrite must leave the file untouched")
}

func TestWrite_ExistingConfirmed(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "merged.pdf")
	require.NoError(t, os.WriteFile(dst, []byte("original"), 0o644))

	var asked string
	confirm := func(path string) (bool, error) {
		asked = path
		return true, nil
	}
	require.NoError(t, Write([]byte("replacement"), dst, false, confirm))
	assert.Equal(t, dst, asked)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "replacement", string(data))
}

func TestWrite_ForceSkipsConfirmation(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "merged.pdf")
	require.NoError(t, os.WriteFile(dst, []byte("original"), 0o644))

	confirm := func(path string) (bool, error) {
		t.Fatal("confirm should not be called with force set")
		return false, nil
	}
	require.NoError(t, Write([]byte("replacement"), dst, true, confirm))
}

func TestStdinConfirm(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"yes", "y\n", true},
		{"yes word", "Yes\n", true},
		{"no", "n\n", false},
		{"default empty", "\n", false},
		{"garbage", "maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var prompt bytes.Buffer
			confirm := StdinConfirm(strings.NewReader(tt.answer), &prompt)

			ok, err := confirm("merged.pdf")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.Contains(t, prompt.String(), "'merged.pdf' already exists")
		})
	}
}
