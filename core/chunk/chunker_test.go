package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunk_Blank(t *testing.T) {
	assert.Nil(t, New(10).Chunk(""))
	assert.Nil(t, New(10).Chunk("  \n\n "))
}

func TestChunk_Disabled(t *testing.T) {
	c := New(0)
	assert.Equal(t, []string{"one two three"}, c.Chunk("  one two three "))
	assert.Equal(t, 0, New(-5).MaxWords)
}

func TestChunk_FitsInOne(t *testing.T) {
	assert.Equal(t, []string{"a b\n\nc d"}, New(4).Chunk("a b\n\nc d"))
}

func TestChunk_GroupsParagraphs(t *testing.T) {
	text := "one two\n\nthree four\n\nfive six"
	assert.Equal(t, []string{"one two\n\nthree four", "five six"}, New(4).Chunk(text))
}

func TestChunk_SplitsLongParagraph(t *testing.T) {
	text := "intro\n\na b c d e f g\n\noutro"
	assert.Equal(t, []string{"intro", "a b c", "d e f", "g", "outro"}, New(3).Chunk(text))
}

func TestChunk_SplitKeepsLineBreaks(t *testing.T) {
	text := "a b\nc d\ne f g"
	assert.Equal(t, []string{"a b\nc", "d\ne f", "g"}, New(3).Chunk(text))
}
