// Package prompt holds the model prompt templates and renders them.
// Templates use text/template syntax; the enhance template receives the
// page text as {{.Data}} and the prompt-to-JSON template the user's prompt
// as {{.Text}}.
package prompt

import (
	"bytes"
	"fmt"
	"os"
	"text/template"
)

// Template names.
const (
	Enhance    = "enhance"
	PromptJSON = "prompt_json"
)

const defaultEnhance = `You are expert in data extraction, data summarization and data validation checking of web pages.
I give you data that I have extracted from a web page. Summarize it and expand the content with additional context.
Validate claims with reasoning (optional but recommended).

Rules:
- Summarize the data and add additional context and background information if you know about it, otherwise just return the data.
- Check the validity of claims with reasoning where you can.
- Return the data in a way that can be used to make a PDF or magazine.
- Avoid hallucination. Include key takeaways and insights.
- No graphs, pictures or structured output (json, dict, etc.).
Format your response as a structured analysis that would be valuable for a PDF document.

Data:
{{.Data}}
`

const defaultPromptJSON = `You are an expert in converting prompts to JSON. Extract the key points or tags from the prompt below and return it as a single JSON object. For example:
{
  "original_prompt": "<the prompt text>",
  "word_count": <number of words>,
  "character_count": <number of characters>,
  "intent": "<guessed intent>",
  "user_goal": null,
  "role": "<role the prompt asks for>",
  "constraints": [],
  "examples": [],
  "clarifying_questions": [],
  "tags": [],
  "complexity": "<low|medium|high>"
}

Rules:
- If a field cannot be found, set its value to "Not Given".
- If the prompt has no values for an array field, skip that key instead of returning an empty array.
- Return only valid JSON (no extra commentary).
- Keep tags and constraints as arrays; complexity is mandatory.

Prompt:
{{.Text}}
`

// Store holds the parsed templates.
type Store struct {
	templates map[string]*template.Template
}

// Overrides maps template names to files replacing the built-in text.
// Empty paths are ignored.
type Overrides map[string]string

// New parses the built-in templates, replacing any that have an override.
func New(overrides Overrides) (*Store, error) {
	sources := map[string]string{
		Enhance:    defaultEnhance,
		PromptJSON: defaultPromptJSON,
	}
	for name, path := range overrides {
		if path == "" {
			continue
		}
		if _, ok := sources[name]; !ok {
			return nil, fmt.Errorf("unknown prompt template %q", name)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading prompt template %s: %w", path, err)
		}
		sources[name] = string(data)
	}

	s := &Store{templates: make(map[string]*template.Template, len(sources))}
	for name, src := range sources {
		tmpl, err := template.New(name).Option("missingkey=error").Parse(src)
		if err != nil {
			return nil, fmt.Errorf("parsing prompt template %s: %w", name, err)
		}
		s.templates[name] = tmpl
	}
	return s, nil
}

// Render executes the named template with data.
func (s *Store) Render(name string, data any) (string, error) {
	tmpl, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown prompt template %q", name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering prompt %s: %w", name, err)
	}
	return buf.String(), nil
}

// EnhanceData is the input of the enhance template.
type EnhanceData struct {
	Data string
}

// PromptJSONData is the input of the prompt-to-JSON template.
type PromptJSONData struct {
	Text string
}
