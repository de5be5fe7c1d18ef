// Package promptjson implements the prompt-to-JSON flow: the user's prompt
// is wrapped in a conversion template, sent to the model and the reply is
// parsed as JSON on a best-effort basis.
package promptjson

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/pagelift/core"
	"github.com/gaurav-prasanna/pagelift/core/logger"
	"github.com/gaurav-prasanna/pagelift/core/prompt"
)

// ErrEmptyPrompt is returned for blank prompt text.
var ErrEmptyPrompt = errors.New("please enter a prompt first")

// Service converts prompts to JSON.
type Service struct {
	completer core.Completer
	prompts   *prompt.Store
	opts      core.CompleteOptions
	log       logger.Logger
}

// New creates a Service. Replies are always requested in JSON mode.
func New(completer core.Completer, prompts *prompt.Store, opts core.CompleteOptions, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop{}
	}
	opts.JSON = true
	return &Service{completer: completer, prompts: prompts, opts: opts, log: log}
}

// Convert sends text through the prompt-to-JSON template. A reply that is
// not JSON is not an error; the result is then marked invalid.
func (s *Service) Convert(ctx context.Context, text string) (*core.PromptJSONResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyPrompt
	}
	if s.completer == nil {
		return nil, fmt.Errorf("promptjson: no language model configured")
	}

	p, err := s.prompts.Render(prompt.PromptJSON, prompt.PromptJSONData{Text: text})
	if err != nil {
		return nil, err
	}

	reply, err := s.completer.Complete(ctx, p, s.opts)
	if err != nil {
		return nil, fmt.Errorf("generating JSON: %w", err)
	}

	result := Parse(reply)
	if !result.Valid {
		s.log.Warn("model reply is not valid JSON", "chars", len(reply))
	}
	return &result, nil
}

// Parse decodes reply as JSON. It tries the reply as is, then without a
// surrounding Markdown code fence, then the outermost object or array
// span. It never fails: an undecodable reply comes back with Valid unset.
func Parse(reply string) core.PromptJSONResult {
	result := core.PromptJSONResult{Raw: reply}

	trimmed := strings.TrimSpace(reply)
	for _, candidate := range []string{trimmed, stripFence(trimmed), outerSpan(trimmed)} {
		if candidate == "" {
			continue
		}
		var v any
		if err := json.Unmarshal([]byte(candidate), &v); err != nil {
			continue
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(candidate), "", "  "); err != nil {
			continue
		}
		result.Valid = true
		result.Value = v
		result.Pretty = buf.String()
		return result
	}
	return result
}

// stripFence removes a ```json ... ``` wrapper.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return ""
	}
	body := strings.TrimSuffix(strings.TrimPrefix(s, "```"), "```")
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		// Drop the info string ("json") on the opening line.
		if info := strings.TrimSpace(body[:nl]); !strings.ContainsAny(info, "{[") {
			body = body[nl+1:]
		}
	}
	return strings.TrimSpace(body)
}

// outerSpan returns the text from the first '{' or '[' to the matching
// last '}' or ']'.
func outerSpan(s string) string {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return ""
	}
	closer := byte('}')
	if s[start] == '[' {
		closer = ']'
	}
	end := strings.LastIndexByte(s, closer)
	if end <= start {
		return ""
	}
	return s[start : end+1]
}
