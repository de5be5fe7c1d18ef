package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/pagelift/core"
)

// TextRenderer writes the normalized report text.
type TextRenderer struct{}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render returns the paragraphs separated by blank lines.
func (r *TextRenderer) Render(report *core.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("render text: nil report")
	}
	text := strings.Join(paragraphs(report), "\n\n")
	if text == "" {
		return nil, nil
	}
	return []byte(text + "\n"), nil
}

// Extension returns the file extension for text output.
func (r *TextRenderer) Extension() string {
	return ".txt"
}
