package fsops

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExistsAndIsDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/data/dir", 0755))
	require.NoError(t, afero.WriteFile(fs, "/data/file", []byte("x"), 0644))

	assert.True(t, Exists(fs, "/data/dir"))
	assert.True(t, Exists(fs, "/data/file"))
	assert.False(t, Exists(fs, "/data/missing"))

	assert.True(t, IsDir(fs, "/data/dir"))
	assert.False(t, IsDir(fs, "/data/file"))
	assert.False(t, IsDir(fs, "/data/missing"))
}

func TestIsDirNonEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out/empty", 0755))
	require.NoError(t, fs.MkdirAll("/out/full", 0755))
	require.NoError(t, afero.WriteFile(fs, "/out/full/msvcp140.dll", []byte("dll"), 0644))

	assert.False(t, IsDirNonEmpty(fs, "/out/empty"))
	assert.True(t, IsDirNonEmpty(fs, "/out/full"))
	assert.False(t, IsDirNonEmpty(fs, "/out/missing"))
}

func TestEnsureDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NoError(t, EnsureDir(fs, "/a/b/c", 0755))
	assert.True(t, IsDir(fs, "/a/b/c"))
}

func TestRemoveContents(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out/sub", 0755))
	require.NoError(t, afero.WriteFile(fs, "/out/a.dll", []byte("a"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/out/sub/b.dll", []byte("b"), 0644))

	require.NoError(t, RemoveContents(fs, "/out"))
	assert.True(t, IsDir(fs, "/out"))
	assert.False(t, IsDirNonEmpty(fs, "/out"))
}

func TestCreateTempDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir, err := CreateTempDir(fs, "vcfetch-")
	require.NoError(t, err)
	assert.True(t, IsDir(fs, dir))
}
