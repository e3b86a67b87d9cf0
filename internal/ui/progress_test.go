package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressWriterPassesBytesThrough(t *testing.T) {
	var buf bytes.Buffer
	pw := NewProgressWriter(&buf, 10, "test")

	n, err := pw.Write([]byte("0123456789"))
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "0123456789", buf.String())

	assert.NoError(t, pw.Close())
}

func TestIndeterminateProgressBar(t *testing.T) {
	bar := NewIndeterminateProgressBar("working")
	assert.NoError(t, bar.Add(1))
	assert.NoError(t, bar.Finish())
}
