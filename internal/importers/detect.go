package importers

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mrlokans/paperread/internal/entities"
)

// DefaultCategory is used when no keyword group matches.
const DefaultCategory = "其他"

const maxTitleLength = 100

var (
	excessBlankLines = regexp.MustCompile(`\n{3,}`)
	latinWord        = regexp.MustCompile(`\b[A-Za-z]+\b`)
)

type categoryKeywords struct {
	category string
	pattern  *regexp.Regexp
}

func keywordPattern(words ...string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
}

// Checked in order; the first group with a match wins.
var categories = []categoryKeywords{
	{"技术", keywordPattern("technology", "programming", "software", "computer", "AI", "machine learning")},
	{"科学", keywordPattern("science", "research", "study", "experiment")},
	{"商业", keywordPattern("business", "marketing", "management", "economy")},
	{"健康", keywordPattern("health", "medical", "wellness", "fitness")},
	{"教育", keywordPattern("education", "learning", "teaching")},
	{"文学", keywordPattern("literature", "novel", "story", "fiction")},
	{"新闻", keywordPattern("news", "report", "current", "event")},
}

// CleanContent normalises line endings, collapses runs of blank lines to a
// single paragraph break and trims the text.
func CleanContent(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = excessBlankLines.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}

// ExtractTitle uses the first line when it looks like a heading, otherwise
// the file name.
func ExtractTitle(content, filename string) string {
	firstLine, _, _ := strings.Cut(strings.TrimSpace(content), "\n")
	firstLine = strings.TrimSpace(firstLine)
	if firstLine != "" && utf8.RuneCountInString(firstLine) < maxTitleLength && !strings.HasSuffix(firstLine, ".") {
		return firstLine
	}
	return titleFromFilename(filename)
}

func titleFromFilename(filename string) string {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	stem = strings.NewReplacer("_", " ", "-", " ").Replace(stem)

	words := strings.Fields(stem)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = strings.ToUpper(string(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

// DetectCategory returns the category of the first keyword group found in
// the title or content.
func DetectCategory(content, title string) string {
	text := content + " " + title
	for _, c := range categories {
		if c.pattern.MatchString(text) {
			return c.category
		}
	}
	return DefaultCategory
}

// DetectDifficulty grades text by the average length of its latin words.
func DetectDifficulty(content string) entities.Difficulty {
	words := latinWord.FindAllString(content, -1)
	if len(words) == 0 {
		return entities.DifficultyIntermediate
	}

	total := 0
	for _, w := range words {
		total += len(w)
	}
	avg := float64(total) / float64(len(words))

	switch {
	case avg < 5:
		return entities.DifficultyBeginner
	case avg < 6.5:
		return entities.DifficultyIntermediate
	default:
		return entities.DifficultyAdvanced
	}
}
