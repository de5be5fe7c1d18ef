package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/pagelift/core"
	"github.com/gaurav-prasanna/pagelift/core/llm/gemini"
)

type countingCompleter struct{ calls int }

func (c *countingCompleter) Complete(context.Context, string, core.CompleteOptions) (string, error) {
	c.calls++
	return "ok", nil
}

func (c *countingCompleter) ModelName() string { return "counting" }

func TestNew_Providers(t *testing.T) {
	c, err := New(Config{Provider: ProviderGemini, APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, gemini.DefaultModel, c.ModelName())

	c, err = New(Config{Provider: ProviderOllama, Model: "mistral"})
	require.NoError(t, err)
	assert.Equal(t, "mistral", c.ModelName())

	_, err = New(Config{Provider: "nope"})
	assert.Error(t, err)
}

func TestNew_GeminiWithoutKey(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, gemini.ErrMissingAPIKey)
}

func TestPaced_Disabled(t *testing.T) {
	inner := &countingCompleter{}
	assert.Same(t, inner, Paced(inner, 0))
}

func TestPaced_DelegatesAndHonorsContext(t *testing.T) {
	inner := &countingCompleter{}
	p := Paced(inner, 1)
	assert.Equal(t, "counting", p.ModelName())

	out, err := p.Complete(context.Background(), "first", core.CompleteOptions{})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)

	// The bucket is now empty for a minute; a short deadline must fail fast.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = p.Complete(ctx, "second", core.CompleteOptions{})
	assert.Error(t, err)
	assert.Equal(t, 1, inner.calls)
}
