// Package llm selects and wraps the language-model providers.
package llm

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/gaurav-prasanna/pagelift/core"
	"github.com/gaurav-prasanna/pagelift/core/llm/gemini"
	"github.com/gaurav-prasanna/pagelift/core/llm/ollama"
)

// Provider names accepted by New.
const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

// Config selects and configures a provider.
type Config struct {
	Provider          string
	Model             string
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerMinute int
}

// New builds the Completer for cfg.Provider, paced when RequestsPerMinute
// is positive.
func New(cfg Config) (core.Completer, error) {
	var (
		c   core.Completer
		err error
	)
	switch cfg.Provider {
	case "", ProviderGemini:
		c, err = gemini.New(gemini.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})
	case ProviderOllama:
		c = ollama.New(ollama.Config{
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})
	default:
		return nil, fmt.Errorf("unknown llm provider %q (want %s or %s)", cfg.Provider, ProviderGemini, ProviderOllama)
	}
	if err != nil {
		return nil, err
	}
	return Paced(c, cfg.RequestsPerMinute), nil
}

// PacedCompleter throttles requests to a Completer with a token bucket.
type PacedCompleter struct {
	next    core.Completer
	limiter *rate.Limiter
}

// Paced wraps c so that at most requestsPerMinute requests start per
// minute. A non-positive rate returns c unchanged.
func Paced(c core.Completer, requestsPerMinute int) core.Completer {
	if requestsPerMinute <= 0 {
		return c
	}
	return &PacedCompleter{
		next:    c,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1),
	}
}

// Complete waits for a token, then delegates.
func (p *PacedCompleter) Complete(ctx context.Context, prompt string, opts core.CompleteOptions) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for rate limit: %w", err)
	}
	return p.next.Complete(ctx, prompt, opts)
}

// ModelName returns the wrapped model name.
func (p *PacedCompleter) ModelName() string {
	return p.next.ModelName()
}
