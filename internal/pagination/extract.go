package pagination

import (
	"strings"
	"unicode/utf8"
)

// ParagraphSeparator is the blank line that separates paragraphs in raw text.
const ParagraphSeparator = "\n\n"

// Extract splits raw text into trimmed, non-empty paragraphs in their original order.
func Extract(raw string) []string {
	paragraphs := make([]string, 0)
	for _, segment := range strings.Split(raw, ParagraphSeparator) {
		if p := strings.TrimSpace(segment); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// Join is the inverse of Extract: Extract(Join(Extract(t))) equals Extract(t).
func Join(paragraphs []string) string {
	return strings.Join(paragraphs, ParagraphSeparator)
}

// CharCount returns the length of a paragraph in characters after trimming.
func CharCount(paragraph string) int {
	return utf8.RuneCountInString(strings.TrimSpace(paragraph))
}

// Document is raw text together with its optional cached paragraph decomposition.
type Document struct {
	RawText    string
	Paragraphs []string // nil until derived
}

// Resolve returns a copy of the document with Paragraphs derived from RawText
// when they are missing. The boolean reports whether they were derived, i.e.
// whether the caller should persist the new decomposition.
//
// A nil decomposition is missing. An empty one is kept for blank text and
// treated as stale when the text has content.
func (d Document) Resolve() (Document, bool) {
	if d.Paragraphs != nil && (len(d.Paragraphs) > 0 || strings.TrimSpace(d.RawText) == "") {
		return d, false
	}
	return Document{RawText: d.RawText, Paragraphs: Extract(d.RawText)}, true
}
