// Package fsops provides small afero-backed filesystem helpers shared by
// the downloader, tool fetcher and orchestrator.
package fsops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// CreateTempDir creates a temporary directory with the given prefix
func CreateTempDir(fs afero.Fs, prefix string) (string, error) {
	dir, err := afero.TempDir(fs, os.TempDir(), prefix)
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	return dir, nil
}

// EnsureDir ensures a directory exists with the given permissions
func EnsureDir(fs afero.Fs, path string, perm os.FileMode) error {
	if err := fs.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("ensure directory: %w", err)
	}
	return nil
}

// Exists checks if a path exists
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// IsDir checks if a path is a directory
func IsDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsDirNonEmpty reports whether path is a directory with at least one
// entry. This is the sole idempotence marker for extracted versions.
func IsDirNonEmpty(fs afero.Fs, path string) bool {
	entries, err := afero.ReadDir(fs, path)
	if err != nil {
		return false
	}
	return len(entries) > 0
}

// RemoveContents deletes every entry inside dir but keeps dir itself.
func RemoveContents(fs afero.Fs, dir string) error {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return fmt.Errorf("read directory: %w", err)
	}
	for _, entry := range entries {
		if err := fs.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("remove %s: %w", entry.Name(), err)
		}
	}
	return nil
}
