package enhance

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/pagelift/core"
	"github.com/gaurav-prasanna/pagelift/core/extract"
	"github.com/gaurav-prasanna/pagelift/core/markdown"
	"github.com/gaurav-prasanna/pagelift/core/normalize"
	"github.com/gaurav-prasanna/pagelift/core/prompt"
)

const pageHTML = `<html lang="en"><head><title>Realme GT</title></head>
<body><nav>Menu</nav><main><h1>Specs</h1><p>Battery: 5000mAh</p><p>Display &amp; more</p></main></body></html>`

type fakeFetcher struct {
	html string
	err  error
	urls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (*core.FetchResult, error) {
	f.urls = append(f.urls, url)
	if f.err != nil {
		return nil, f.err
	}
	return &core.FetchResult{URL: url, StatusCode: 200, HTML: f.html}, nil
}

type fakeCompleter struct {
	prompts []string
	reply   func(prompt string) string
	err     error
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string, _ core.CompleteOptions) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply(prompt), nil
}

func (f *fakeCompleter) ModelName() string { return "fake-model" }

func newService(t *testing.T, fetcher core.Fetcher, completer core.Completer, opts Options) *Service {
	t.Helper()
	store, err := prompt.New(prompt.Overrides{prompt.Enhance: ""})
	require.NoError(t, err)
	svc, err := New(Deps{
		Fetcher:    fetcher,
		Extractor:  extract.New(),
		Normalizer: normalize.New(),
		Markdown:   markdown.New(),
		Completer:  completer,
		Prompts:    store,
	}, opts)
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) }
	return svc
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Deps{}, Options{})
	assert.Error(t, err)

	store, err := prompt.New(nil)
	require.NoError(t, err)
	deps := Deps{Fetcher: &fakeFetcher{}, Extractor: extract.New(), Normalizer: normalize.New(), Prompts: store}

	_, err = New(deps, Options{Format: "pdf"})
	assert.Error(t, err)
	_, err = New(deps, Options{Format: FormatMarkdown})
	assert.Error(t, err)
}

func TestExtract(t *testing.T) {
	fetcher := &fakeFetcher{html: pageHTML}
	svc := newService(t, fetcher, nil, Options{})

	page, err := svc.Extract(context.Background(), "  https://example.com/specs ")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com/specs"}, fetcher.urls)
	assert.Equal(t, "Realme GT", page.Metadata.Title)
	assert.Equal(t, "Specs\n\nBattery: 5000mAh\n\nDisplay & more", page.Text)
	assert.NotContains(t, page.Text, "Menu")
}

func TestExtract_DropsFragment(t *testing.T) {
	fetcher := &fakeFetcher{html: pageHTML}
	svc := newService(t, fetcher, nil, Options{})

	page, err := svc.Extract(context.Background(), "https://example.com/specs#reviews")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/specs"}, fetcher.urls)
	assert.Equal(t, "https://example.com/specs", page.Metadata.URL)
}

func TestExtract_Markdown(t *testing.T) {
	svc := newService(t, &fakeFetcher{html: pageHTML}, nil, Options{Format: FormatMarkdown})

	page, err := svc.Extract(context.Background(), "https://example.com/specs")
	require.NoError(t, err)
	assert.Contains(t, page.Text, "# Specs")
}

func TestExtract_Errors(t *testing.T) {
	svc := newService(t, &fakeFetcher{err: errors.New("connection refused")}, nil, Options{})

	_, err := svc.Extract(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyURL)

	_, err = svc.Extract(context.Background(), "example.com")
	assert.Error(t, err)

	_, err = svc.Extract(context.Background(), "https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestEnhance_ChunksInOrder(t *testing.T) {
	completer := &fakeCompleter{reply: func(p string) string {
		if strings.Contains(p, "first") {
			return " <p>One</p> "
		}
		return "<p>Two</p>"
	}}
	svc := newService(t, &fakeFetcher{}, completer, Options{MaxWords: 2})

	out, err := svc.Enhance(context.Background(), "first part\n\nsecond part")
	require.NoError(t, err)

	require.Len(t, completer.prompts, 2)
	assert.Contains(t, completer.prompts[0], "first part")
	assert.Contains(t, completer.prompts[1], "second part")
	assert.Equal(t, "<p>One</p>\n\n<p>Two</p>", out)
}

func TestEnhance_Errors(t *testing.T) {
	svc := newService(t, &fakeFetcher{}, &fakeCompleter{err: errors.New("quota exceeded")}, Options{})

	_, err := svc.Enhance(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNoContent)

	_, err = svc.Enhance(context.Background(), "some text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")

	noModel := newService(t, &fakeFetcher{}, nil, Options{})
	_, err = noModel.Enhance(context.Background(), "some text")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	completer := &fakeCompleter{reply: func(string) string {
		return "<h2>Summary</h2><p>Great phone &amp; battery.</p><p>Line1<br>Line2</p>"
	}}
	svc := newService(t, &fakeFetcher{html: pageHTML}, completer, Options{})

	report, err := svc.Run(context.Background(), "https://example.com/specs", false)
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, ReportTitle, report.Title)
	assert.Equal(t, "fake-model", report.Model)
	assert.True(t, report.Enhanced)
	assert.Equal(t, "Realme GT", report.Source.Title)
	assert.Equal(t, time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC), report.GeneratedAt)
	assert.Equal(t, []string{"Summary", "Great phone & battery.", "Line1\nLine2"}, report.Paragraphs)
}

func TestRun_Raw(t *testing.T) {
	completer := &fakeCompleter{reply: func(string) string { return "unused" }}
	svc := newService(t, &fakeFetcher{html: pageHTML}, completer, Options{})

	report, err := svc.Run(context.Background(), "https://example.com/specs", true)
	require.NoError(t, err)

	assert.Empty(t, completer.prompts)
	assert.False(t, report.Enhanced)
	assert.Empty(t, report.Model)
	assert.Equal(t, []string{"Specs", "Battery: 5000mAh", "Display & more"}, report.Paragraphs)
}
