// Package render provides the output renderers for enhanced reports.
package render

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/pagelift/core"
)

// Heading and label text shared by the document renderers.
const (
	SubtitleText   = "AI-Enhanced Content"
	GeneratedLabel = "Generated:"
	SourceLabel    = "Source:"
	TimeLayout     = "2006-01-02 15:04:05"
)

// Formats accepted by ForFormat.
const (
	FormatPDF      = "pdf"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatText     = "text"
)

// ForFormat returns the renderer for a format name, or nil.
func ForFormat(format string) core.Renderer {
	switch format {
	case FormatPDF:
		return NewPDFRenderer()
	case FormatMarkdown:
		return NewMarkdownRenderer()
	case FormatJSON:
		return NewJSONRenderer()
	case FormatText:
		return NewTextRenderer()
	}
	return nil
}

// paragraphs returns the report paragraphs, or the text as a single
// paragraph when none were split out.
func paragraphs(r *core.Report) []string {
	if len(r.Paragraphs) > 0 {
		return r.Paragraphs
	}
	if strings.TrimSpace(r.Text) == "" {
		return nil
	}
	return []string{r.Text}
}

var (
	headingLine = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	italicRe    = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	codeRe      = regexp.MustCompile("`([^`]+)`")
	linkRe      = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
)

// headingLevel reports whether a paragraph is a single Markdown heading
// line and returns its level and text.
func headingLevel(p string) (int, string) {
	if strings.Contains(p, "\n") {
		return 0, p
	}
	m := headingLine.FindStringSubmatch(p)
	if m == nil {
		return 0, p
	}
	return len(m[1]), strings.TrimSpace(m[2])
}

// cleanInlineMarkdown strips inline Markdown that model replies often carry.
func cleanInlineMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = italicRe.ReplaceAllStringFunc(text, func(m string) string {
		lead, trail := m[:1], m[len(m)-1:]
		if lead == "*" {
			lead = ""
		}
		if trail == "*" {
			trail = ""
		}
		return lead + italicRe.FindStringSubmatch(m)[1] + trail
	})
	text = codeRe.ReplaceAllString(text, "$1")
	text = linkRe.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
