package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gaurav-prasanna/pagelift/core/normalize"
)

// NormalizeInput is the input schema for normalize_text.
type NormalizeInput struct {
	Text string `json:"text" jsonschema:"HTML or plain text to normalize"`
}

// NormalizeOutput is the output schema for normalize_text.
type NormalizeOutput struct {
	Text       string   `json:"text"`
	Paragraphs []string `json:"paragraphs"`
}

// PageInput is the input schema for extract_page.
type PageInput struct {
	URL string `json:"url" jsonschema:"absolute http(s) URL of the web page"`
}

// PageOutput is the output schema for extract_page.
type PageOutput struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Language string `json:"language"`
	Text     string `json:"text"`
}

// EnhanceInput is the input schema for enhance_page.
type EnhanceInput struct {
	URL string `json:"url" jsonschema:"absolute http(s) URL of the web page"`
	Raw bool   `json:"raw,omitempty" jsonschema:"skip the language model and return the extracted text"`
}

// EnhanceOutput is the output schema for enhance_page.
type EnhanceOutput struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Source     string   `json:"source"`
	Model      string   `json:"model,omitempty"`
	Enhanced   bool     `json:"enhanced"`
	Paragraphs []string `json:"paragraphs"`
}

// PromptJSONInput is the input schema for prompt_to_json.
type PromptJSONInput struct {
	Prompt string `json:"prompt" jsonschema:"the free-form prompt to describe as JSON"`
}

// PromptJSONOutput is the output schema for prompt_to_json.
type PromptJSONOutput struct {
	Valid bool   `json:"valid"`
	JSON  string `json:"json,omitempty"`
	Raw   string `json:"raw"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "normalize_text",
		Description: "Strip HTML, decode entities and collapse whitespace while keeping paragraph breaks",
	}, s.handleNormalize)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_page",
		Description: "Fetch a web page and return its main text",
	}, s.handleExtract)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "enhance_page",
		Description: "Fetch a web page, enhance its content with the language model and return the paragraphs",
	}, s.handleEnhance)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "prompt_to_json",
		Description: "Convert a free-form prompt into a structured JSON description",
	}, s.handlePromptJSON)
}

func (s *Server) handleNormalize(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input NormalizeInput,
) (*mcp.CallToolResult, NormalizeOutput, error) {
	text := s.ports.Normalizer.Normalize(input.Text)
	paragraphs := normalize.Paragraphs(text, "\n")
	if text == "" {
		paragraphs = []string{}
	}
	return nil, NormalizeOutput{Text: text, Paragraphs: paragraphs}, nil
}

func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PageInput,
) (*mcp.CallToolResult, PageOutput, error) {
	page, err := s.ports.Enhancer.Extract(ctx, input.URL)
	if err != nil {
		return nil, PageOutput{}, err
	}
	return nil, PageOutput{
		URL:      page.Metadata.URL,
		Title:    page.Metadata.Title,
		Language: page.Metadata.Language,
		Text:     page.Text,
	}, nil
}

func (s *Server) handleEnhance(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EnhanceInput,
) (*mcp.CallToolResult, EnhanceOutput, error) {
	report, err := s.ports.Enhancer.Run(ctx, input.URL, input.Raw)
	if err != nil {
		return nil, EnhanceOutput{}, err
	}
	paragraphs := report.Paragraphs
	if paragraphs == nil {
		paragraphs = []string{}
	}
	return nil, EnhanceOutput{
		ID:         report.ID,
		Title:      report.Source.Title,
		Source:     report.Source.URL,
		Model:      report.Model,
		Enhanced:   report.Enhanced,
		Paragraphs: paragraphs,
	}, nil
}

func (s *Server) handlePromptJSON(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PromptJSONInput,
) (*mcp.CallToolResult, PromptJSONOutput, error) {
	result, err := s.ports.Converter.Convert(ctx, input.Prompt)
	if err != nil {
		return nil, PromptJSONOutput{}, err
	}
	if result == nil {
		return nil, PromptJSONOutput{}, errors.New("no result from converter")
	}
	return nil, PromptJSONOutput{Valid: result.Valid, JSON: result.Pretty, Raw: result.Raw}, nil
}
