// Package enhance implements the content-to-PDF flow:
// fetch → extract → prompt → complete → normalize into a Report.
package enhance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gaurav-prasanna/pagelift/core"
	"github.com/gaurav-prasanna/pagelift/core/chunk"
	"github.com/gaurav-prasanna/pagelift/core/extract"
	"github.com/gaurav-prasanna/pagelift/core/logger"
	"github.com/gaurav-prasanna/pagelift/core/normalize"
	"github.com/gaurav-prasanna/pagelift/core/prompt"
)

// ReportTitle is the heading of every generated report.
const ReportTitle = "AI-Enhanced Content Report"

// Page text formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

var (
	// ErrEmptyURL is returned when no URL was given.
	ErrEmptyURL = errors.New("please enter a url first")
	// ErrNoContent is returned when there is nothing to enhance.
	ErrNoContent = errors.New("no content to enhance, extract data first")
)

// MarkdownConverter turns an HTML fragment into Markdown.
type MarkdownConverter interface {
	Convert(html string) (string, error)
}

// Deps are the collaborators of the Service.
type Deps struct {
	Fetcher    core.Fetcher
	Extractor  core.Extractor
	Normalizer core.Normalizer
	Markdown   MarkdownConverter
	Completer  core.Completer
	Prompts    *prompt.Store
	Logger     logger.Logger
}

// Options tune the Service.
type Options struct {
	// Format is the page text format sent to the model: text or markdown.
	Format string
	// MaxWords bounds each model request; 0 sends the page whole.
	MaxWords int
	// Complete is passed to every model request.
	Complete core.CompleteOptions
}

// Service runs the content-to-PDF flow.
type Service struct {
	deps    Deps
	opts    Options
	chunker *chunk.Chunker
	now     func() time.Time
}

// New creates a Service.
func New(deps Deps, opts Options) (*Service, error) {
	if deps.Fetcher == nil || deps.Extractor == nil || deps.Normalizer == nil || deps.Prompts == nil {
		return nil, fmt.Errorf("enhance: fetcher, extractor, normalizer and prompts are required")
	}
	switch opts.Format {
	case "":
		opts.Format = FormatText
	case FormatText:
	case FormatMarkdown:
		if deps.Markdown == nil {
			return nil, fmt.Errorf("enhance: markdown format needs a markdown converter")
		}
	default:
		return nil, fmt.Errorf("enhance: unknown page text format %q", opts.Format)
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop{}
	}
	return &Service{
		deps:    deps,
		opts:    opts,
		chunker: chunk.New(opts.MaxWords),
		now:     time.Now,
	}, nil
}

// Extract fetches rawURL and returns its textual content.
func (s *Service) Extract(ctx context.Context, rawURL string) (*core.Page, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, ErrEmptyURL
	}
	if err := extract.ValidateURL(rawURL); err != nil {
		return nil, err
	}
	rawURL = extract.TrimFragment(rawURL)

	s.deps.Logger.Debug("fetching page", "url", rawURL)
	result, err := s.deps.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	content, err := s.deps.Extractor.Extract(result.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	var text string
	if s.opts.Format == FormatMarkdown {
		text, err = s.deps.Markdown.Convert(content)
		if err != nil {
			return nil, fmt.Errorf("extract: %w", err)
		}
	} else {
		text = s.deps.Normalizer.Normalize(content)
	}

	page := &core.Page{
		Metadata: s.deps.Extractor.Metadata(rawURL, result.HTML),
		Text:     text,
	}
	s.deps.Logger.Info("page extracted", "url", rawURL, "title", page.Metadata.Title, "chars", len(text))
	return page, nil
}

// Enhance sends text to the model, one chunk per request, and joins the
// replies in order.
func (s *Service) Enhance(ctx context.Context, text string) (string, error) {
	if s.deps.Completer == nil {
		return "", fmt.Errorf("enhance: no language model configured")
	}
	chunks := s.chunker.Chunk(text)
	if len(chunks) == 0 {
		return "", ErrNoContent
	}

	replies := make([]string, 0, len(chunks))
	for i, c := range chunks {
		p, err := s.deps.Prompts.Render(prompt.Enhance, prompt.EnhanceData{Data: c})
		if err != nil {
			return "", err
		}
		s.deps.Logger.Debug("enhancing chunk", "chunk", i+1, "of", len(chunks), "model", s.deps.Completer.ModelName())
		reply, err := s.deps.Completer.Complete(ctx, p, s.opts.Complete)
		if err != nil {
			return "", fmt.Errorf("enhancing chunk %d/%d: %w", i+1, len(chunks), err)
		}
		replies = append(replies, strings.TrimSpace(reply))
	}
	return strings.Join(replies, normalize.ParagraphBreak), nil
}

// Report normalizes content into a renderable report.
func (s *Service) Report(content string, source core.PageMetadata, enhanced bool) *core.Report {
	text := s.deps.Normalizer.Normalize(content)
	report := &core.Report{
		ID:          uuid.NewString(),
		Title:       ReportTitle,
		Source:      source,
		Enhanced:    enhanced,
		GeneratedAt: s.now(),
		Text:        text,
		Paragraphs:  normalize.Paragraphs(text, "\n"),
	}
	if enhanced && s.deps.Completer != nil {
		report.Model = s.deps.Completer.ModelName()
	}
	return report
}

// Run executes the full flow for rawURL. With raw set the model is skipped
// and the extracted page text is rendered as is.
func (s *Service) Run(ctx context.Context, rawURL string, raw bool) (*core.Report, error) {
	page, err := s.Extract(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if raw {
		return s.Report(page.Text, page.Metadata, false), nil
	}
	enhanced, err := s.Enhance(ctx, page.Text)
	if err != nil {
		return nil, err
	}
	return s.Report(enhanced, page.Metadata, true), nil
}
