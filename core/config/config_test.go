package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GOOGLE_API_KEY", "")
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, 120*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, int64(10<<20), cfg.Fetch.MaxBytes)
	assert.Equal(t, "text", cfg.Extract.Format)
	assert.Equal(t, 6000, cfg.Enhance.MaxWords)
	assert.Equal(t, []string{"br"}, cfg.Normalize.LineBreakElements)
	assert.Equal(t, []string{"p"}, cfg.Normalize.BlockElements)
	assert.Empty(t, cfg.LLM.APIKey)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[llm]
provider = "ollama"
model = "llama3.2"
timeout = "5s"

[enhance]
max_words = 100
`), 0o644))

	t.Setenv("PAGELIFT_EXTRACT_FORMAT", "markdown")
	t.Setenv("PAGELIFT_NORMALIZE_BLOCK_ELEMENTS", "p, div")
	t.Setenv("GOOGLE_API_KEY", "from-google-env")

	v := viper.New()
	v.SetConfigFile(path)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, "llama3.2", cfg.LLM.Model)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 100, cfg.Enhance.MaxWords)
	assert.Equal(t, "markdown", cfg.Extract.Format)
	assert.Equal(t, []string{"p", "div"}, cfg.Normalize.BlockElements)
	assert.Equal(t, "from-google-env", cfg.LLM.APIKey)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	_, err := Load(v)
	assert.Error(t, err)
}

func TestEffective_MasksAPIKey(t *testing.T) {
	v := viper.New()
	for _, o := range Options() {
		v.SetDefault(o.Key, o.Default)
	}
	v.Set("llm.api_key", "secret")

	eff := Effective(v)
	llm, ok := eff["llm"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "********", llm["api_key"])
	assert.Equal(t, "gemini", llm["provider"])
}
