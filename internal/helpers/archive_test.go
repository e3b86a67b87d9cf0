package helpers

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "archive.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

func TestExtractZip(t *testing.T) {
	t.Parallel()

	archive := writeZip(t, map[string]string{
		"dark.exe":         "MZ dark",
		"doc/license.txt":  "license text",
		"sdk/inc/header.h": "header",
	})

	dest := t.TempDir()
	require.NoError(t, ExtractZip(archive, dest))

	data, err := os.ReadFile(filepath.Join(dest, "dark.exe"))
	require.NoError(t, err)
	assert.Equal(t, "MZ dark", string(data))
	assert.FileExists(t, filepath.Join(dest, "doc", "license.txt"))
	assert.FileExists(t, filepath.Join(dest, "sdk", "inc", "header.h"))
}

func TestExtractZipBlocksTraversal(t *testing.T) {
	t.Parallel()

	archive := writeZip(t, map[string]string{
		"../escape.txt": "outside",
	})

	dest := t.TempDir()
	err := ExtractZip(archive, dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid path")
	assert.NoFileExists(t, filepath.Join(filepath.Dir(dest), "escape.txt"))
}

func TestExtractZipMissingArchive(t *testing.T) {
	t.Parallel()

	err := ExtractZip(filepath.Join(t.TempDir(), "absent.zip"), t.TempDir())
	require.Error(t, err)
}
