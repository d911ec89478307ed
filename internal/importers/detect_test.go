package importers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/paperread/internal/entities"
)

func TestCleanContent(t *testing.T) {
	input := "\r\n  Title\r\n\r\n\r\n\r\nFirst paragraph.\n\n\n\nSecond.\r\n  "
	assert.Equal(t, "Title\n\nFirst paragraph.\n\nSecond.", CleanContent(input))
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		filename string
		expected string
	}{
		{"short first line", "A Day at the Beach\n\nWe went swimming.", "beach.txt", "A Day at the Beach"},
		{"first line is a sentence", "We went swimming.\n\nIt was fun.", "/tmp/beach_day-story.txt", "Beach Day Story"},
		{"first line too long", strings.Repeat("word ", 30), "long_text.txt", "Long Text"},
		{"chinese first line", "春天来了\n\n花开了。", "spring.txt", "春天来了"},
		{"empty content", "", "my-notes.md", "My Notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractTitle(tt.content, tt.filename))
		})
	}
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		content  string
		title    string
		expected string
	}{
		{"New software changes how we work.", "", "技术"},
		{"A long novel about the sea.", "", "文学"},
		{"Plain words only.", "Business Today", "商业"},
		{"The research team studied software.", "", "技术"},
		{"Nothing to see here.", "", DefaultCategory},
		{"She said it again and again.", "", DefaultCategory},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectCategory(tt.content, tt.title))
		})
	}
}

func TestDetectDifficulty(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected entities.Difficulty
	}{
		{"short words", "The cat sat on the mat.", entities.DifficultyBeginner},
		{"medium words", "Gardens need patience and weekly care.", entities.DifficultyIntermediate},
		{"long words", "Extraordinary circumstances necessitate comprehensive deliberation.", entities.DifficultyAdvanced},
		{"no latin words", "你好世界", entities.DifficultyIntermediate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectDifficulty(tt.content))
		})
	}
}
