// Package normalize implements the Normalizer interface.
// It turns plain text, or HTML returned by a page loader or a model, into
// clean paragraph-structured plain text:
//  1. Markup is detected by the presence of both '<' and '>'.
//  2. Markup is parsed; <br> becomes a line break, <p> is preceded by a
//     paragraph break and the visible text nodes are joined with spaces.
//  3. HTML entities are decoded. A tag that only appears once entities
//     are decoded, as in "&lt;b&gt;", is stripped as well.
//  4. Whitespace is collapsed while paragraph breaks survive as "\n\n".
//  5. A space is inserted between an alphanumeric and an opening bracket.
//
// Normalization never fails; anything unexpected degrades to best-effort
// stripped text.
package normalize

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// ParagraphBreak separates paragraphs in normalized text.
const ParagraphBreak = "\n\n"

var (
	// fusedBracket matches an alphanumeric immediately followed by an
	// opening bracket. The bracket set is exactly < [ { (.
	fusedBracket = regexp.MustCompile(`([a-zA-Z0-9])([<\[{(])`)

	// anyTag is used by the fallback path when parsing is not possible.
	anyTag = regexp.MustCompile(`<[^>]*>`)

	// decodedTag matches a start or end tag. A bare "<" or "a < b > c"
	// comparison does not match.
	decodedTag = regexp.MustCompile(`</?[a-zA-Z][^<>]*>`)
)

// skippedElements hold text that is never visible.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"template": true,
}

// fragment is one string produced while walking the markup. lineBreak is
// set on the newline that replaced a line-break element.
type fragment struct {
	text      string
	lineBreak bool
}

// TextNormalizer converts text or HTML into normalized paragraph text.
// It holds no mutable state and is safe for concurrent use.
type TextNormalizer struct {
	lineBreaks map[string]bool
	blocks     map[string]bool
}

// Option configures a TextNormalizer.
type Option func(*TextNormalizer)

// WithLineBreakElements sets the elements replaced by a line break.
func WithLineBreakElements(tags ...string) Option {
	return func(n *TextNormalizer) {
		n.lineBreaks = tagSet(tags)
	}
}

// WithBlockElements sets the elements preceded by a paragraph break.
func WithBlockElements(tags ...string) Option {
	return func(n *TextNormalizer) {
		n.blocks = tagSet(tags)
	}
}

// New creates a TextNormalizer. Without options <br> is the only
// line-break element and <p> the only paragraph-block element.
func New(opts ...Option) *TextNormalizer {
	n := &TextNormalizer{
		lineBreaks: tagSet([]string{"br"}),
		blocks:     tagSet([]string{"p"}),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var defaultNormalizer = New()

// Text normalizes input with the default element sets.
func Text(input any) string {
	return defaultNormalizer.Normalize(input)
}

// Normalize converts input into normalized text. Absent input, empty input
// and values that cannot be converted to text all yield "".
func (n *TextNormalizer) Normalize(input any) (out string) {
	text := stringify(input)
	if text == "" {
		return ""
	}

	defer func() {
		if r := recover(); r != nil {
			out = fallback(text)
		}
	}()

	var frags []fragment
	if strings.Contains(text, "<") && strings.Contains(text, ">") {
		frags = n.markupFragments(text)
	} else {
		frags = []fragment{{text: unescape(text)}}
	}

	return repairFused(collapse(frags))
}

// Document normalizes input and splits it into its non-empty paragraphs.
func (n *TextNormalizer) Document(input any) Document {
	paras := Paragraphs(n.Normalize(input), "\n")
	if len(paras) == 1 && strings.TrimFunc(paras[0], isSpace) == "" {
		return Document{}
	}
	return Document(paras)
}

// markupFragments parses text as HTML and returns its visible strings in
// document order, with structural elements turned into breaks. Entities
// are decoded a second time after the parser's own decoding.
func (n *TextNormalizer) markupFragments(text string) []fragment {
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return []fragment{{text: unescape(anyTag.ReplaceAllString(text, " "))}}
	}

	var frags []fragment
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		switch node.Type {
		case html.TextNode:
			frags = append(frags, fragment{text: unescape(node.Data)})
			return
		case html.CommentNode, html.DoctypeNode:
			return
		case html.ElementNode:
			if n.lineBreaks[node.Data] {
				frags = append(frags, fragment{text: "\n", lineBreak: true})
				return
			}
			if skippedElements[node.Data] {
				return
			}
			if n.blocks[node.Data] {
				frags = append(frags, fragment{text: ParagraphBreak})
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return frags
}

// collapse joins fragments with single spaces and normalizes whitespace.
// A whitespace run with two or more newlines becomes a paragraph break, a
// run holding a line-break newline becomes "\n", anything else a single
// space. Leading and trailing whitespace is dropped.
func collapse(frags []fragment) string {
	var (
		b        strings.Builder
		started  bool
		pending  bool
		newlines int
		breaks   int
	)
	space := func(r rune, lineBreak bool) {
		pending = true
		if r == '\n' {
			newlines++
		}
		if lineBreak {
			breaks++
		}
	}

	for i, f := range frags {
		if i > 0 {
			space(' ', false)
		}
		for _, r := range f.text {
			if isSpace(r) {
				space(r, f.lineBreak)
				continue
			}
			if pending && started {
				switch {
				case newlines >= 2:
					b.WriteString(ParagraphBreak)
				case breaks > 0:
					b.WriteByte('\n')
				default:
					b.WriteByte(' ')
				}
			}
			pending, newlines, breaks = false, 0, 0
			started = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// unescape decodes entities and strips any tag the decoding produced.
func unescape(text string) string {
	text = html.UnescapeString(text)
	if strings.IndexByte(text, '<') >= 0 {
		text = decodedTag.ReplaceAllString(text, " ")
	}
	return text
}

func repairFused(text string) string {
	return fusedBracket.ReplaceAllString(text, "${1} ${2}")
}

// fallback strips tags without parsing. It is the degraded path taken when
// the regular pipeline cannot complete.
func fallback(text string) (out string) {
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()
	stripped := unescape(anyTag.ReplaceAllString(text, " "))
	return repairFused(collapse([]fragment{{text: stripped}}))
}

// stringify converts input to text. Conversion failures yield "".
func stringify(input any) (s string) {
	defer func() {
		if recover() != nil {
			s = ""
		}
	}()

	if isNil(input) {
		return ""
	}
	switch v := input.(type) {
	case string:
		return v
	case *string:
		return *v
	case []byte:
		return string(v)
	case []rune:
		return string(v)
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(input)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// isSpace reports Unicode white space plus the ASCII information
// separators U+001C..U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func tagSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			set[t] = true
		}
	}
	return set
}
