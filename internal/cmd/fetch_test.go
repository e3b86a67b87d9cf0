package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/quantmind-br/vcfetch/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFetchCmd(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	log := zerolog.New(io.Discard)

	cmd := NewFetchCmd(cfg, &log)

	assert.NotNil(t, cmd)
	assert.Equal(t, "fetch", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("destination"))
	assert.NotNil(t, cmd.Flags().Lookup("include-old-versions"))
	assert.NotNil(t, cmd.Flags().Lookup("force"))
	assert.NotNil(t, cmd.Flags().Lookup("yes"))
	assert.NotNil(t, cmd.Flags().Lookup("timeout"))
}

func TestFetchCmd_FailsWithoutDownloadsDir(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Fetch: config.FetchConfig{
			ExpandCommand:      "expand",
			HTTPTimeoutSeconds: 5,
		},
	}
	log := zerolog.New(io.Discard)
	cmd := NewFetchCmd(cfg, &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	// A destination without a Downloads directory fails before any
	// network access.
	cmd.SetArgs([]string{"--destination", t.TempDir(), "--timeout", "5"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download directory does not exist")
}
