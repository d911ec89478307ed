package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "empty text",
			raw:      "",
			expected: []string{},
		},
		{
			name:     "whitespace only",
			raw:      "  \n\n \t \n\n",
			expected: []string{},
		},
		{
			name:     "single paragraph",
			raw:      "  Hello world.  ",
			expected: []string{"Hello world."},
		},
		{
			name:     "blank line separated",
			raw:      "First.\n\nSecond.\n\nThird.",
			expected: []string{"First.", "Second.", "Third."},
		},
		{
			name:     "single newlines stay inside a paragraph",
			raw:      "Line one\nline two\n\nNext",
			expected: []string{"Line one\nline two", "Next"},
		},
		{
			name:     "extra blank lines are dropped",
			raw:      "\n\nA\n\n\n\n\nB\n\n",
			expected: []string{"A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Extract(tt.raw))
		})
	}
}

func TestExtract_IdempotentUnderJoin(t *testing.T) {
	inputs := []string{
		"",
		"One paragraph",
		"A\n\nB\n\n\nC",
		"  lead\n\n\n\n  trail  \n\n",
		"中文段落。\n\n第二段。",
	}

	for _, raw := range inputs {
		first := Extract(raw)
		assert.Equal(t, first, Extract(Join(first)), "input %q", raw)
	}
}

func TestCharCount(t *testing.T) {
	assert.Equal(t, 5, CharCount("  hello "))
	assert.Equal(t, 4, CharCount("中文段落"))
	assert.Equal(t, 0, CharCount("   "))
}

func TestDocument_Resolve(t *testing.T) {
	t.Run("derives missing paragraphs", func(t *testing.T) {
		doc := Document{RawText: "A\n\nB"}

		resolved, changed := doc.Resolve()

		assert.True(t, changed)
		assert.Equal(t, []string{"A", "B"}, resolved.Paragraphs)
		assert.Nil(t, doc.Paragraphs, "receiver must not be mutated")
	})

	t.Run("keeps cached paragraphs", func(t *testing.T) {
		doc := Document{RawText: "A\n\nB", Paragraphs: []string{"cached"}}

		resolved, changed := doc.Resolve()

		assert.False(t, changed)
		assert.Equal(t, []string{"cached"}, resolved.Paragraphs)
	})

	t.Run("empty cache for text with content is recomputed", func(t *testing.T) {
		doc := Document{RawText: "A", Paragraphs: []string{}}

		resolved, changed := doc.Resolve()

		assert.True(t, changed)
		assert.Equal(t, []string{"A"}, resolved.Paragraphs)
	})

	t.Run("empty cache for blank text is kept", func(t *testing.T) {
		for _, raw := range []string{"", "  \n\n \t"} {
			doc := Document{RawText: raw, Paragraphs: []string{}}

			resolved, changed := doc.Resolve()

			assert.False(t, changed, "%q", raw)
			assert.Equal(t, []string{}, resolved.Paragraphs)
		}
	})

	t.Run("nil cache for blank text is derived once", func(t *testing.T) {
		resolved, changed := Document{RawText: ""}.Resolve()

		assert.True(t, changed)
		assert.NotNil(t, resolved.Paragraphs)
		assert.Empty(t, resolved.Paragraphs)

		_, again := resolved.Resolve()
		assert.False(t, again)
	})
}
