// Package security holds path validation for in-process archive extraction.
package security

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateExtractPath prevents directory traversal attacks (Zip Slip vulnerability)
// Ensures that the extracted path does not escape the target directory
func ValidateExtractPath(targetDir, extractedPath string) error {
	// Clean the path to resolve . and ..
	cleanPath := filepath.Clean(extractedPath)

	// Check for path traversal attempts
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains ..: %s", extractedPath)
	}

	// Ensure the path doesn't start with /
	if filepath.IsAbs(cleanPath) {
		return fmt.Errorf("absolute path not allowed: %s", extractedPath)
	}

	// Build target path and verify it's under targetDir
	destPath := filepath.Join(targetDir, cleanPath)

	// Get canonical paths for comparison
	cleanDest, err := filepath.Abs(targetDir)
	if err != nil {
		return fmt.Errorf("failed to resolve target directory: %w", err)
	}

	cleanTarget, err := filepath.Abs(destPath)
	if err != nil {
		return fmt.Errorf("failed to resolve destination path: %w", err)
	}

	// Ensure target is under destDir
	if !strings.HasPrefix(cleanTarget, cleanDest+string(filepath.Separator)) &&
		cleanTarget != cleanDest {
		return fmt.Errorf("path escapes destination directory: %s", extractedPath)
	}

	return nil
}

// IsPathSafe checks if a path is safe (doesn't escape target)
func IsPathSafe(basePath, targetPath string) bool {
	return ValidateExtractPath(basePath, targetPath) == nil
}
