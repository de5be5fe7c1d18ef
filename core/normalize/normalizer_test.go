package normalize

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label struct{ name string }

func (l *label) String() string { return "label " + l.name }

type explosive struct{}

func (explosive) String() string { panic("boom") }

func TestNormalize_EmptyInputs(t *testing.T) {
	n := New()
	var nilLabel *label

	assert.Equal(t, "", n.Normalize(nil))
	assert.Equal(t, "", n.Normalize(""))
	assert.Equal(t, "", n.Normalize("   \n\t "))
	assert.Equal(t, "", n.Normalize(nilLabel))
	assert.Equal(t, "", n.Normalize(explosive{}))
}

func TestNormalize_ConvertsNonStrings(t *testing.T) {
	n := New()

	assert.Equal(t, "label one", n.Normalize(&label{name: "one"}))
	assert.Equal(t, "bytes here", n.Normalize([]byte("bytes   here")))
	assert.Equal(t, "failed hard", n.Normalize(errors.New("failed\nhard")))
	assert.Equal(t, "42", n.Normalize(42))

	s := "pointer text"
	assert.Equal(t, "pointer text", n.Normalize(&s))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "paragraph elements",
			input: "<p>Hello</p><p>World</p>",
			want:  "Hello\n\nWorld",
		},
		{
			name:  "line break element",
			input: "Line1<br>Line2",
			want:  "Line1\nLine2",
		},
		{
			name:  "two line breaks form a paragraph break",
			input: "a<br><br>b",
			want:  "a\n\nb",
		},
		{
			name:  "entity in plain text",
			input: "A &amp; B",
			want:  "A & B",
		},
		{
			name:  "numeric entity",
			input: "it&#39;s",
			want:  "it's",
		},
		{
			name:  "entities decoded after parsing",
			input: "<p>a &amp;lt; b</p>",
			want:  "a < b",
		},
		{
			name:  "tag revealed by decoding is stripped",
			input: "<p>&lt;b&gt;x</p>",
			want:  "x",
		},
		{
			name:  "encoded tag in plain text is stripped",
			input: "say &lt;i&gt;hi&lt;/i&gt; now",
			want:  "say hi now",
		},
		{
			name:  "decoded comparison is kept",
			input: "<p>1 &lt; 2 and 3 &gt; 2</p>",
			want:  "1 < 2 and 3 > 2",
		},
		{
			name:  "inline tags do not fuse words",
			input: "foo<b>bar</b>baz",
			want:  "foo bar baz",
		},
		{
			name:  "unknown tag is stripped",
			input: "word<tag>",
			want:  "word",
		},
		{
			name:  "script and style are not visible",
			input: "<style>p{color:red}</style><p>Hi</p><script>var x = 1;</script>",
			want:  "Hi",
		},
		{
			name:  "comments are not visible",
			input: "<p>kept<!-- dropped --></p>",
			want:  "kept",
		},
		{
			name:  "malformed markup degrades to text",
			input: "<p>unclosed <b>bold",
			want:  "unclosed bold",
		},
		{
			name:  "divs are inline by default",
			input: "<div>a</div><div>b</div>",
			want:  "a b",
		},
		{
			name:  "blank lines in plain text",
			input: "Hello\n\n\nWorld  again\tand\nmore",
			want:  "Hello\n\nWorld again and more",
		},
		{
			name:  "blank line with surrounding spaces",
			input: "one  \n   \n  two",
			want:  "one\n\ntwo",
		},
		{
			name:  "crlf line endings",
			input: "one\r\n\r\ntwo\r\nthree",
			want:  "one\n\ntwo three",
		},
		{
			name:  "non breaking spaces collapse",
			input: "a&nbsp;&nbsp;b",
			want:  "a b",
		},
		{
			name:  "outer whitespace trimmed",
			input: "\n\n  padded  \n\n",
			want:  "padded",
		},
		{
			name:  "bracket repair in plain text",
			input: "call(x) and arr[0] and map{k}",
			want:  "call (x) and arr [0] and map {k}",
		},
		{
			name:  "lone angle bracket is not markup",
			input: "1 < 2 and x<y",
			want:  "1 < 2 and x <y",
		},
		{
			name:  "closing brackets untouched",
			input: "done) ok] fine}",
			want:  "done) ok] fine}",
		},
	}

	n := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.input))
		})
	}
}

func TestNormalize_CustomElements(t *testing.T) {
	n := New(WithBlockElements("p", "div"), WithLineBreakElements("br", "hr"))

	assert.Equal(t, "a\n\nb", n.Normalize("<div>a</div><div>b</div>"))
	assert.Equal(t, "top\nbottom", n.Normalize("top<hr>bottom"))
}

func TestNormalize_PlainTextIsFixedPoint(t *testing.T) {
	inputs := []string{
		"The quick brown fox jumps over the lazy dog.",
		"Already clean text, with punctuation; and numbers 1 2 3.",
		"single",
	}
	for _, in := range inputs {
		once := Text(in)
		assert.Equal(t, in, once)
		assert.Equal(t, once, Text(once))
	}
}

func TestNormalize_NeverLeavesTags(t *testing.T) {
	inputs := []string{
		"<html><body><h1>Title</h1><p>Body <a href='x'>link</a></p></body></html>",
		"<ul><li>one</li><li>two</li></ul>",
		"<<>>",
		"<p><p><p>",
		"</br>text<br/>",
	}
	for _, in := range inputs {
		out := Text(in)
		for _, para := range Paragraphs(out, "\n") {
			assert.NotContains(t, para, "<p>")
			assert.NotContains(t, para, "<br")
			assert.NotContains(t, para, "<li>")
		}
	}
}

func TestFallback(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips tags", "<div><p>broken <b>markup</div>", "broken markup"},
		{"keeps paragraph breaks", "one<span>\n\n\n</span>two", "one\n\ntwo"},
		{"collapses whitespace", "a \t  b\nc", "a b c"},
		{"decodes entities", "<i>A &amp; B</i>", "A & B"},
		{"strips decoded tags", "&lt;b&gt;x", "x"},
		{"repairs brackets", "<p>f(x)</p>", "f (x)"},
		{"blank", "<br><br>", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fallback(tt.input))
		})
	}
}

func TestNormalize_ConcurrentUse(t *testing.T) {
	n := New()
	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = n.Normalize("<p>Hello</p><p>World</p>")
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, "Hello\n\nWorld", r)
	}
}

func TestParagraphs(t *testing.T) {
	t.Run("split on paragraph breaks", func(t *testing.T) {
		assert.Equal(t, []string{"Hello", "World"}, Paragraphs(Text("<p>Hello</p><p>World</p>"), "\n"))
	})

	t.Run("soft break replaces single newline", func(t *testing.T) {
		got := Paragraphs(Text("Line1<br>Line2"), "<br/>")
		require.Len(t, got, 1)
		assert.Equal(t, "Line1<br/>Line2", got[0])
	})

	t.Run("empty segments are dropped", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, Paragraphs("a\n\n  \n\nb", "\n"))
	})

	t.Run("fallback to whole string", func(t *testing.T) {
		assert.Equal(t, []string{""}, Paragraphs("", "\n"))
		assert.Equal(t, []string{"  "}, Paragraphs("  ", "\n"))
	})
}

func TestParagraphs_RoundTrip(t *testing.T) {
	inputs := []string{
		"<p>one</p><p>two</p><p>three</p>",
		"alpha\n\n\nbeta\n\ngamma delta",
		"<p>x<br>y</p>tail",
	}
	for _, in := range inputs {
		normalized := Text(in)
		paras := Paragraphs(normalized, "\n")
		assert.Equal(t, normalized, strings.Join(paras, ParagraphBreak))
	}
}

func TestDocument(t *testing.T) {
	n := New()

	assert.Empty(t, n.Document(nil))
	assert.Empty(t, n.Document("<p></p>"))

	doc := n.Document("<p>Hello</p><p>World</p>")
	assert.Equal(t, Document{"Hello", "World"}, doc)
	assert.Equal(t, "Hello\n\nWorld", doc.String())
}
