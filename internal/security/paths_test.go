package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateExtractPath(t *testing.T) {
	base := t.TempDir()

	assert.NoError(t, ValidateExtractPath(base, "dark.exe"))
	assert.NoError(t, ValidateExtractPath(base, "sdk/inc/wix.h"))

	assert.Error(t, ValidateExtractPath(base, "../escape"))
	assert.Error(t, ValidateExtractPath(base, "a/../../escape"))
	assert.Error(t, ValidateExtractPath(base, "/etc/passwd"))
}

func TestIsPathSafe(t *testing.T) {
	base := t.TempDir()
	assert.True(t, IsPathSafe(base, "ok.txt"))
	assert.False(t, IsPathSafe(base, "../nope"))
}
