package promptjson

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/pagelift/core"
	"github.com/gaurav-prasanna/pagelift/core/prompt"
)

type fakeCompleter struct {
	reply string
	err   error
	opts  core.CompleteOptions
	got   string
}

func (f *fakeCompleter) Complete(_ context.Context, p string, opts core.CompleteOptions) (string, error) {
	f.got, f.opts = p, opts
	return f.reply, f.err
}

func (f *fakeCompleter) ModelName() string { return "fake" }

func newService(t *testing.T, c core.Completer) *Service {
	t.Helper()
	store, err := prompt.New(nil)
	require.NoError(t, err)
	return New(c, store, core.CompleteOptions{Temperature: 0.1}, nil)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		reply  string
		valid  bool
		pretty string
	}{
		{name: "plain object", reply: `{"a":1}`, valid: true, pretty: "{\n  \"a\": 1\n}"},
		{name: "fenced", reply: "```json\n{\"a\": [1, 2]}\n```", valid: true, pretty: "{\n  \"a\": [\n    1,\n    2\n  ]\n}"},
		{name: "fence without info", reply: "```\n[true]\n```", valid: true, pretty: "[\n  true\n]"},
		{name: "surrounding prose", reply: "Here you go: {\"tags\": []} Hope it helps", valid: true, pretty: "{\n  \"tags\": []\n}"},
		{name: "not json", reply: "I cannot do that.", valid: false},
		{name: "broken json", reply: `{"a": }`, valid: false},
		{name: "empty", reply: "", valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.reply)
			assert.Equal(t, tt.reply, got.Raw)
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.pretty, got.Pretty)
			if !tt.valid {
				assert.Nil(t, got.Value)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	c := &fakeCompleter{reply: `{"original_prompt":"Write a haiku","complexity":"low"}`}
	svc := newService(t, c)

	result, err := svc.Convert(context.Background(), "Write a haiku")
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.True(t, c.opts.JSON)
	assert.InDelta(t, 0.1, c.opts.Temperature, 1e-9)
	assert.Contains(t, c.got, "Write a haiku")

	obj, ok := result.Value.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "low", obj["complexity"])
}

func TestConvert_InvalidReplyIsNotAnError(t *testing.T) {
	svc := newService(t, &fakeCompleter{reply: "Sorry, no JSON today"})

	result, err := svc.Convert(context.Background(), "anything")
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "Sorry, no JSON today", result.Raw)
}

func TestConvert_Errors(t *testing.T) {
	svc := newService(t, &fakeCompleter{err: errors.New("unavailable")})

	_, err := svc.Convert(context.Background(), " \n ")
	assert.ErrorIs(t, err, ErrEmptyPrompt)

	_, err = svc.Convert(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unavailable")

	_, err = newService(t, nil).Convert(context.Background(), "text")
	assert.Error(t, err)
}
