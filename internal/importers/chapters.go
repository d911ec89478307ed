package importers

import (
	"regexp"
	"strings"
)

// Chapter is one section of a book.
type Chapter struct {
	Heading string
	Content string
}

// Tried in order; the first pattern with at least two matches splits the book.
var chapterPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)chapter\s+\d+`),
	regexp.MustCompile(`第[一二三四五六七八九十百]+章`),
	regexp.MustCompile(`(?m)^\d+\.[ \t]+[A-Z][^\n]*`),
}

// SplitChapters cuts content at chapter headings. Each chapter runs from its
// heading to the next one. Text before the first heading is dropped. It
// returns nil when no pattern matches at least twice.
func SplitChapters(content string) []Chapter {
	for _, pattern := range chapterPatterns {
		matches := pattern.FindAllStringIndex(content, -1)
		if len(matches) < 2 {
			continue
		}

		chapters := make([]Chapter, 0, len(matches))
		for i, m := range matches {
			end := len(content)
			if i+1 < len(matches) {
				end = matches[i+1][0]
			}
			chapters = append(chapters, Chapter{
				Heading: strings.TrimSpace(content[m[0]:m[1]]),
				Content: strings.TrimSpace(content[m[0]:end]),
			})
		}
		return chapters
	}
	return nil
}
