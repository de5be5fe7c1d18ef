// Package core defines the pipeline interfaces and shared types for pagelift.
// Each stage of the pipeline is a small, testable interface.
package core

import (
	"context"
	"time"
)

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL         string
	StatusCode  int
	ContentType string
	HTML        string
}

// PageMetadata holds metadata extracted from the page and URL.
type PageMetadata struct {
	URL       string `json:"url"`
	Domain    string `json:"domain"`
	Path      string `json:"path"`
	Title     string `json:"title"`
	Language  string `json:"language"`
	FetchedAt string `json:"fetched_at"` // ISO8601
}

// Page is the extracted textual content of a fetched web page.
type Page struct {
	Metadata PageMetadata `json:"metadata"`
	Text     string       `json:"text"`
}

// Report is an enhanced document ready to be rendered.
type Report struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Source      PageMetadata `json:"source"`
	Model       string       `json:"model"`
	Enhanced    bool         `json:"enhanced"`
	GeneratedAt time.Time    `json:"generated_at"`
	Text        string       `json:"text"`
	Paragraphs  []string     `json:"paragraphs"`
}

// PromptJSONResult is the outcome of a prompt-to-JSON conversion.
// Valid is false when the model reply could not be parsed; Raw always
// holds the reply as received.
type PromptJSONResult struct {
	Raw    string `json:"raw"`
	Valid  bool   `json:"valid"`
	Value  any    `json:"value,omitempty"`
	Pretty string `json:"pretty,omitempty"`
}

// CompleteOptions tunes a single model request.
type CompleteOptions struct {
	Temperature float64
	MaxTokens   int
	// JSON asks the provider for a JSON-only reply where supported.
	JSON bool
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor pulls the main content from raw HTML, stripping noise.
type Extractor interface {
	Extract(html string) (string, error)
	Metadata(rawURL string, html string) PageMetadata
}

// Normalizer turns arbitrary text or HTML into clean paragraph text.
// Implementations never fail.
type Normalizer interface {
	Normalize(input any) string
}

// Completer sends a prompt to a hosted language model.
type Completer interface {
	Complete(ctx context.Context, prompt string, opts CompleteOptions) (string, error)
	ModelName() string
}

// Renderer converts a report into a final output format.
type Renderer interface {
	Render(report *Report) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
