package wire

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/pagelift/core"
	"github.com/gaurav-prasanna/pagelift/core/config"
	"github.com/gaurav-prasanna/pagelift/core/llm/gemini"
	"github.com/gaurav-prasanna/pagelift/core/render"
)

func defaultConfig(t *testing.T) *config.Config {
	t.Helper()
	v := viper.New()
	for _, o := range config.Options() {
		v.SetDefault(o.Key, o.Default)
	}
	v.Set("output.dir", t.TempDir())
	return config.FromViper(v)
}

func TestBuildApp_WithoutAPIKey(t *testing.T) {
	app, err := BuildApp(context.Background(), defaultConfig(t), nil)
	require.NoError(t, err)

	assert.ErrorIs(t, app.LLMErr, gemini.ErrMissingAPIKey)
	_, err = app.Completer.Complete(context.Background(), "hi", core.CompleteOptions{})
	assert.ErrorIs(t, err, gemini.ErrMissingAPIKey)

	// The normalizer and extraction path still work without a model.
	assert.Equal(t, "A\nB", app.Normalizer.Normalize("A<br>B"))
	_, err = app.PromptJSON.Convert(context.Background(), "make json")
	assert.ErrorIs(t, err, gemini.ErrMissingAPIKey)
}

func TestBuildApp_Configured(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.LLM.APIKey = "secret"
	cfg.Normalize.LineBreakElements = []string{"br", "hr"}

	app, err := BuildApp(context.Background(), cfg, nil)
	require.NoError(t, err)

	assert.NoError(t, app.LLMErr)
	assert.Equal(t, gemini.DefaultModel, app.Completer.ModelName())
	assert.Equal(t, "A\nB", app.Normalizer.Normalize("A<hr>B"))
	assert.Equal(t, cfg.OutputDir, app.Writer.OutputDir)
}

func TestBuildApp_Errors(t *testing.T) {
	_, err := BuildApp(context.Background(), nil, nil)
	assert.Error(t, err)

	cfg := defaultConfig(t)
	cfg.Extract.Format = "pdf"
	_, err = BuildApp(context.Background(), cfg, nil)
	assert.Error(t, err)

	cfg = defaultConfig(t)
	cfg.Prompts.EnhanceFile = "/does/not/exist.tmpl"
	_, err = BuildApp(context.Background(), cfg, nil)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = BuildApp(ctx, defaultConfig(t), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApp_Renderer(t *testing.T) {
	app, err := BuildApp(context.Background(), defaultConfig(t), nil)
	require.NoError(t, err)

	r, err := app.Renderer(render.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, ".pdf", r.Extension())

	_, err = app.Renderer("docx")
	assert.Error(t, err)
}
