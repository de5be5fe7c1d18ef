// Package markdown converts cleaned HTML fragments into Markdown.
// It backs the "markdown" page text format, where the structure of the
// page (headings, lists, links) is kept for the model to work with.
package markdown

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Converter converts HTML to Markdown using html-to-markdown.
type Converter struct{}

// New creates a Converter.
func New() *Converter {
	return &Converter{}
}

// Convert turns a cleaned HTML fragment into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	md, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(md), nil
}
