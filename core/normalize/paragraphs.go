package normalize

import "strings"

// Document is an ordered list of non-empty paragraphs.
type Document []string

// String joins the paragraphs back into normalized text.
func (d Document) String() string {
	return strings.Join(d, ParagraphBreak)
}

// Paragraphs splits normalized text into renderable blocks. Segments are
// trimmed and empty ones dropped; when nothing remains the whole input is
// returned as the only segment. Single newlines left inside a segment are
// replaced with softBreak.
func Paragraphs(normalized string, softBreak string) []string {
	var out []string
	for _, seg := range strings.Split(normalized, ParagraphBreak) {
		seg = strings.TrimFunc(seg, isSpace)
		if seg == "" {
			continue
		}
		out = append(out, strings.ReplaceAll(seg, "\n", softBreak))
	}
	if len(out) == 0 {
		return []string{normalized}
	}
	return out
}
