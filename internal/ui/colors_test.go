package ui

import (
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestColorizeStrategy(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	assert.Equal(t, "legacy", ColorizeStrategy("legacy"))
	assert.Equal(t, "bundle", ColorizeStrategy("bundle"))
	assert.Equal(t, "unsupported", ColorizeStrategy("unsupported"))
	assert.Equal(t, "other", ColorizeStrategy("other"))
}

func TestInitColorsRespectsNoColor(t *testing.T) {
	old := os.Getenv("NO_COLOR")
	defer os.Setenv("NO_COLOR", old)

	os.Setenv("NO_COLOR", "1")
	InitColors()
	assert.True(t, color.NoColor)
}
