// Package config loads pagelift settings with Viper.
// Precedence is defaults < config file < environment (PAGELIFT_*).
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Option describes a single configuration key.
type Option struct {
	Key     string
	Default any
	Comment string
}

// Options returns every configuration key with its default and meaning.
func Options() []Option {
	return []Option{
		{Key: "llm.provider", Default: "gemini", Comment: "Model provider: gemini or ollama"},
		{Key: "llm.model", Default: "", Comment: "Model name; empty selects the provider default"},
		{Key: "llm.base_url", Default: "", Comment: "API base URL; empty selects the provider default"},
		{Key: "llm.api_key", Default: "", Comment: "API key; GOOGLE_API_KEY is used when empty"},
		{Key: "llm.timeout", Default: "120s", Comment: "Per-request timeout"},
		{Key: "llm.temperature", Default: 0.0, Comment: "Sampling temperature; 0 keeps the provider default"},
		{Key: "llm.max_tokens", Default: 0, Comment: "Reply token cap; 0 keeps the provider default"},
		{Key: "llm.requests_per_minute", Default: 0, Comment: "Client-side request pacing; 0 disables"},

		{Key: "fetch.timeout", Default: "30s", Comment: "Page fetch timeout"},
		{Key: "fetch.user_agent", Default: "", Comment: "User-Agent header for page fetches"},
		{Key: "fetch.max_bytes", Default: 10 << 20, Comment: "Maximum page body size in bytes"},

		{Key: "extract.format", Default: "text", Comment: "Page text sent to the model: text or markdown"},
		{Key: "enhance.max_words", Default: 6000, Comment: "Words per model request when enhancing; 0 sends the page whole"},

		{Key: "normalize.line_break_elements", Default: []string{"br"}, Comment: "Elements replaced by a line break"},
		{Key: "normalize.block_elements", Default: []string{"p"}, Comment: "Elements preceded by a paragraph break"},

		{Key: "prompts.enhance_file", Default: "", Comment: "Template file overriding the enhance prompt"},
		{Key: "prompts.json_file", Default: "", Comment: "Template file overriding the prompt-to-JSON prompt"},

		{Key: "output.dir", Default: "", Comment: "Output directory; empty is the working directory"},
		{Key: "log.json", Default: false, Comment: "Emit logs as JSON"},
	}
}

// Config is the resolved configuration.
type Config struct {
	LLM       LLM
	Fetch     Fetch
	Extract   Extract
	Enhance   Enhance
	Normalize Normalize
	Prompts   Prompts
	OutputDir string
	LogJSON   bool
}

// LLM selects and tunes the model provider.
type LLM struct {
	Provider          string
	Model             string
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	Temperature       float64
	MaxTokens         int
	RequestsPerMinute int
}

// Fetch controls page downloads.
type Fetch struct {
	Timeout   time.Duration
	UserAgent string
	MaxBytes  int64
}

// Extract selects the page text form sent to the model.
type Extract struct {
	Format string
}

// Enhance bounds the size of each model request.
type Enhance struct {
	MaxWords int
}

// Normalize sets the structural elements of the text normalizer.
type Normalize struct {
	LineBreakElements []string
	BlockElements     []string
}

// Prompts names template files that override the built-in prompts.
type Prompts struct {
	EnhanceFile string
	JSONFile    string
}

// Load resolves configuration into v and returns the typed view of it.
// A missing config file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "pagelift"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "pagelift"))
		}
		v.AddConfigPath(".")
	}

	for _, o := range Options() {
		v.SetDefault(o.Key, o.Default)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && v.ConfigFileUsed() != "" {
			return nil, err
		}
	}

	v.SetEnvPrefix("pagelift")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(v.GetString("llm.api_key")) == "" {
		if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
			v.Set("llm.api_key", key)
		}
	}

	return FromViper(v), nil
}

// FromViper reads the typed configuration out of an already loaded Viper.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		LLM: LLM{
			Provider:          strings.ToLower(strings.TrimSpace(v.GetString("llm.provider"))),
			Model:             v.GetString("llm.model"),
			BaseURL:           v.GetString("llm.base_url"),
			APIKey:            strings.TrimSpace(v.GetString("llm.api_key")),
			Timeout:           v.GetDuration("llm.timeout"),
			Temperature:       v.GetFloat64("llm.temperature"),
			MaxTokens:         v.GetInt("llm.max_tokens"),
			RequestsPerMinute: v.GetInt("llm.requests_per_minute"),
		},
		Fetch: Fetch{
			Timeout:   v.GetDuration("fetch.timeout"),
			UserAgent: v.GetString("fetch.user_agent"),
			MaxBytes:  v.GetInt64("fetch.max_bytes"),
		},
		Extract: Extract{
			Format: strings.ToLower(strings.TrimSpace(v.GetString("extract.format"))),
		},
		Enhance: Enhance{
			MaxWords: v.GetInt("enhance.max_words"),
		},
		Normalize: Normalize{
			LineBreakElements: stringList(v, "normalize.line_break_elements"),
			BlockElements:     stringList(v, "normalize.block_elements"),
		},
		Prompts: Prompts{
			EnhanceFile: v.GetString("prompts.enhance_file"),
			JSONFile:    v.GetString("prompts.json_file"),
		},
		OutputDir: v.GetString("output.dir"),
		LogJSON:   v.GetBool("log.json"),
	}
}

// stringList reads a list key, also accepting a comma-separated string as
// environment variables provide.
func stringList(v *viper.Viper, key string) []string {
	var raw []string
	for _, item := range v.GetStringSlice(key) {
		raw = append(raw, strings.Split(item, ",")...)
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Effective returns every known key with its resolved value, nested the
// way the config file is laid out.
func Effective(v *viper.Viper) map[string]any {
	out := map[string]any{}
	for _, o := range Options() {
		parts := strings.Split(o.Key, ".")
		node := out
		for _, p := range parts[:len(parts)-1] {
			child, ok := node[p].(map[string]any)
			if !ok {
				child = map[string]any{}
				node[p] = child
			}
			node = child
		}
		val := v.Get(o.Key)
		if o.Key == "llm.api_key" && v.GetString(o.Key) != "" {
			val = "********"
		}
		node[parts[len(parts)-1]] = val
	}
	return out
}
