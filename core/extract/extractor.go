// Package extract implements the Extractor interface.
// It isolates the main content from a full HTML page by:
//  1. Removing noise elements (nav, footer, scripts, images, etc.)
//  2. Finding the best content container (<main>, <article>, or <body>)
//
// It also reads page metadata (title, language) from the document head.
package extract

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/pagelift/core"
)

// noiseSelectors are HTML elements removed before extraction.
// These contribute no meaningful content to the page text.
var noiseSelectors = []string{
	"script", "style", "noscript", "template",
	"nav", "footer", "header", "aside",
	"img", "picture", "figure", "figcaption",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
	"[aria-hidden=true]",
}

// HTMLExtractor strips noise from HTML and returns the main content fragment.
type HTMLExtractor struct {
	now func() time.Time
}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{now: time.Now}
}

// Extract takes raw HTML and returns a cleaned HTML fragment containing
// only the main content.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	// <main> is the most semantically correct, then <article>, then <body>.
	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		sel := doc.Find(tag)
		if sel.Length() > 0 {
			content = sel.First()
			break
		}
	}

	if content == nil {
		return "", fmt.Errorf("no content container found in HTML")
	}

	result, err := goquery.OuterHtml(content)
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	return result, nil
}

// Metadata builds PageMetadata from the URL and the raw HTML. Unparsable
// HTML leaves title empty and language at its default.
func (e *HTMLExtractor) Metadata(rawURL string, html string) core.PageMetadata {
	meta := core.PageMetadata{
		URL:       rawURL,
		Language:  "en",
		FetchedAt: e.now().UTC().Format(time.RFC3339),
	}
	if parsed, err := url.Parse(rawURL); err == nil {
		meta.Domain = parsed.Host
		meta.Path = parsed.Path
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return meta
	}

	meta.Title = strings.Join(strings.Fields(doc.Find("title").First().Text()), " ")
	if meta.Title == "" {
		if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
			meta.Title = strings.TrimSpace(og)
		}
	}
	if lang, ok := doc.Find("html").Attr("lang"); ok && strings.TrimSpace(lang) != "" {
		meta.Language = strings.TrimSpace(lang)
	}
	return meta
}
