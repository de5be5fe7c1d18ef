// Package chunk splits page text into word-bounded pieces so that each
// model request stays within a predictable size.
// Paragraphs are kept whole where they fit; only a paragraph longer than
// the limit is cut at word boundaries.
package chunk

import "strings"

// Chunker groups paragraphs into chunks of at most MaxWords words.
type Chunker struct {
	MaxWords int // 0 disables splitting
}

// New creates a Chunker. A non-positive maxWords disables splitting.
func New(maxWords int) *Chunker {
	if maxWords < 0 {
		maxWords = 0
	}
	return &Chunker{MaxWords: maxWords}
}

// Chunk splits text into chunks in source order. Blank text yields nil.
func (c *Chunker) Chunk(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if c.MaxWords == 0 || len(strings.Fields(text)) <= c.MaxWords {
		return []string{strings.TrimSpace(text)}
	}

	var (
		chunks  []string
		current []string
		count   int
	)
	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, "\n\n"))
			current, count = nil, 0
		}
	}

	for _, para := range strings.Split(text, "\n\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}
		if len(words) > c.MaxWords {
			flush()
			chunks = append(chunks, c.splitLong(para)...)
			continue
		}
		if count+len(words) > c.MaxWords {
			flush()
		}
		current = append(current, strings.TrimSpace(para))
		count += len(words)
	}
	flush()
	return chunks
}

// splitLong cuts a paragraph longer than MaxWords at word boundaries.
// Line breaks inside the paragraph are kept.
func (c *Chunker) splitLong(para string) []string {
	var (
		out   []string
		lines []string
		line  []string
		count int
	)
	endLine := func() {
		if len(line) > 0 {
			lines = append(lines, strings.Join(line, " "))
			line = nil
		}
	}
	emit := func() {
		endLine()
		if len(lines) > 0 {
			out = append(out, strings.Join(lines, "\n"))
			lines = nil
		}
		count = 0
	}

	for _, l := range strings.Split(para, "\n") {
		for _, w := range strings.Fields(l) {
			if count == c.MaxWords {
				emit()
			}
			line = append(line, w)
			count++
		}
		endLine()
	}
	emit()
	return out
}
