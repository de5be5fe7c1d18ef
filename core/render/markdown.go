package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/pagelift/core"
)

// MarkdownRenderer writes the report as a Markdown document. Line breaks
// inside a paragraph become Markdown hard breaks.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the Markdown document.
func (r *MarkdownRenderer) Render(report *core.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("render markdown: nil report")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", report.Title)
	fmt.Fprintf(&b, "**%s** %s\n", GeneratedLabel, report.GeneratedAt.Format(TimeLayout))
	if report.Source.URL != "" {
		fmt.Fprintf(&b, "\n%s <%s>\n", SourceLabel, report.Source.URL)
	}
	fmt.Fprintf(&b, "\n## %s\n", SubtitleText)
	for _, p := range paragraphs(report) {
		b.WriteString("\n")
		b.WriteString(strings.ReplaceAll(p, "\n", "  \n"))
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
