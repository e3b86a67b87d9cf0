package cmd

import (
	"io"
	"testing"

	"github.com/quantmind-br/vcfetch/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewRootCmd(t *testing.T) {
	t.Parallel()
	logger := zerolog.New(io.Discard)
	cfg := &config.Config{}

	cmd := NewRootCmd(cfg, &logger, "1.0.0")

	assert.NotNil(t, cmd)
	assert.Equal(t, "vcfetch", cmd.Use)

	subcommands := []string{"fetch", "list", "info", "doctor", "completion", "version"}
	for _, name := range subcommands {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "missing subcommand %s", name)
	}
}
