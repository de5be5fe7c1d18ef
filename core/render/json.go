package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/pagelift/core"
)

// JSONRenderer writes the report as indented JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the report. Paragraphs is never null in the output.
func (r *JSONRenderer) Render(report *core.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("render json: nil report")
	}
	out := *report
	out.Paragraphs = paragraphs(report)
	if out.Paragraphs == nil {
		out.Paragraphs = []string{}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
