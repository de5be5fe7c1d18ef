// Package wire assembles the pagelift services from configuration.
package wire

import (
	"context"
	"errors"
	"fmt"

	"github.com/gaurav-prasanna/pagelift/core"
	"github.com/gaurav-prasanna/pagelift/core/config"
	"github.com/gaurav-prasanna/pagelift/core/enhance"
	"github.com/gaurav-prasanna/pagelift/core/extract"
	"github.com/gaurav-prasanna/pagelift/core/fetch"
	"github.com/gaurav-prasanna/pagelift/core/llm"
	"github.com/gaurav-prasanna/pagelift/core/logger"
	"github.com/gaurav-prasanna/pagelift/core/markdown"
	"github.com/gaurav-prasanna/pagelift/core/normalize"
	"github.com/gaurav-prasanna/pagelift/core/output"
	"github.com/gaurav-prasanna/pagelift/core/prompt"
	"github.com/gaurav-prasanna/pagelift/core/promptjson"
	"github.com/gaurav-prasanna/pagelift/core/render"
)

// App aggregates the major services for easy injection.
type App struct {
	Cfg        *config.Config
	Log        logger.Logger
	Normalizer *normalize.TextNormalizer
	Completer  core.Completer
	Enhance    *enhance.Service
	PromptJSON *promptjson.Service
	Writer     *output.Writer

	// LLMErr is set when no model could be configured. Model calls then
	// fail with it; everything else keeps working.
	LLMErr error
}

// BuildApp wires dependencies with the provided config.
func BuildApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, errors.New("wire: nil config")
	}
	if log == nil {
		log = logger.Nop{}
	}

	normalizer := normalize.New(
		normalize.WithLineBreakElements(cfg.Normalize.LineBreakElements...),
		normalize.WithBlockElements(cfg.Normalize.BlockElements...),
	)

	completer, llmErr := llm.New(llm.Config{
		Provider:          cfg.LLM.Provider,
		Model:             cfg.LLM.Model,
		BaseURL:           cfg.LLM.BaseURL,
		APIKey:            cfg.LLM.APIKey,
		Timeout:           cfg.LLM.Timeout,
		RequestsPerMinute: cfg.LLM.RequestsPerMinute,
	})
	if llmErr != nil {
		log.Debug("language model unavailable", "provider", cfg.LLM.Provider, "error", llmErr)
		completer = unavailable{err: llmErr}
	}

	prompts, err := prompt.New(prompt.Overrides{
		prompt.Enhance:    cfg.Prompts.EnhanceFile,
		prompt.PromptJSON: cfg.Prompts.JSONFile,
	})
	if err != nil {
		return nil, err
	}

	completeOpts := core.CompleteOptions{
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	}

	enhancer, err := enhance.New(enhance.Deps{
		Fetcher: fetch.New(fetch.Config{
			Timeout:   cfg.Fetch.Timeout,
			UserAgent: cfg.Fetch.UserAgent,
			MaxBytes:  cfg.Fetch.MaxBytes,
		}),
		Extractor:  extract.New(),
		Normalizer: normalizer,
		Markdown:   markdown.New(),
		Completer:  completer,
		Prompts:    prompts,
		Logger:     log,
	}, enhance.Options{
		Format:   cfg.Extract.Format,
		MaxWords: cfg.Enhance.MaxWords,
		Complete: completeOpts,
	})
	if err != nil {
		return nil, err
	}

	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output writer: %w", err)
	}

	return &App{
		Cfg:        cfg,
		Log:        log,
		Normalizer: normalizer,
		Completer:  completer,
		Enhance:    enhancer,
		PromptJSON: promptjson.New(completer, prompts, completeOpts, log),
		Writer:     writer,
		LLMErr:     llmErr,
	}, nil
}

// Renderer returns the renderer for format.
func (a *App) Renderer(format string) (core.Renderer, error) {
	r := render.ForFormat(format)
	if r == nil {
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return r, nil
}

// unavailable stands in for a model that could not be configured.
type unavailable struct{ err error }

func (u unavailable) Complete(context.Context, string, core.CompleteOptions) (string, error) {
	return "", u.err
}

func (u unavailable) ModelName() string { return "" }
