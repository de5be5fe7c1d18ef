package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	lg, err := New(Options{Output: &buf})
	require.NoError(t, err)

	lg.Info("page fetched", "url", "https://example.com")
	require.NoError(t, lg.Close())

	assert.Contains(t, buf.String(), "page fetched")
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	var quiet bytes.Buffer
	lg, err := New(Options{Output: &quiet})
	require.NoError(t, err)
	lg.Debug("hidden detail")
	require.NoError(t, lg.Close())
	assert.NotContains(t, quiet.String(), "hidden detail")
}

func TestNop(t *testing.T) {
	var lg Logger = Nop{}
	lg.Info("nothing")
	assert.NoError(t, lg.Close())
}
