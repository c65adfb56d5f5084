// Package testutil provides file and image fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func WriteFile(t *testing.T, path string, content []byte) {
	t.Helper()

	err := os.MkdirAll(filepath.Dir(path), 0o755)
	require.NoError(t, err)

	err = os.WriteFile(path, content, 0o644)
	require.NoError(t, err)
}

// WriteFileWithModTime writes content to path and forces its mtime. Note that
// on most platforms this leaves the creation time at "now".
func WriteFileWithModTime(t *testing.T, path string, content []byte, modTime time.Time) {
	t.Helper()

	WriteFile(t, path, content)

	err := os.Chtimes(path, modTime, modTime)
	require.NoError(t, err)
}
