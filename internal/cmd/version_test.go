package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVersionCmd(t *testing.T) {
	t.Parallel()

	cmd := NewVersionCmd("2.3.4")

	assert.NotNil(t, cmd)
	assert.Equal(t, "version", cmd.Use)
}
