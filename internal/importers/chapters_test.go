package importers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitChapters(t *testing.T) {
	t.Run("english chapters", func(t *testing.T) {
		book := "Preface text.\n\nChapter 1\n\nIt begins.\n\nCHAPTER 2\n\nIt ends."

		chapters := SplitChapters(book)
		require.Len(t, chapters, 2)
		assert.Equal(t, Chapter{Heading: "Chapter 1", Content: "Chapter 1\n\nIt begins."}, chapters[0])
		assert.Equal(t, Chapter{Heading: "CHAPTER 2", Content: "CHAPTER 2\n\nIt ends."}, chapters[1])
	})

	t.Run("chinese chapters", func(t *testing.T) {
		book := "第一章\n\n开始。\n\n第二章\n\n继续。\n\n第十章\n\n结束。"

		chapters := SplitChapters(book)
		require.Len(t, chapters, 3)
		assert.Equal(t, "第十章", chapters[2].Heading)
		assert.Equal(t, "第十章\n\n结束。", chapters[2].Content)
	})

	t.Run("numbered headings", func(t *testing.T) {
		book := "1. Introduction\nHello.\n\n2. Methods\nWe tried 3. things."

		chapters := SplitChapters(book)
		require.Len(t, chapters, 2)
		assert.Equal(t, "1. Introduction", chapters[0].Heading)
		assert.Equal(t, "2. Methods", chapters[1].Heading)
		assert.Equal(t, "2. Methods\nWe tried 3. things.", chapters[1].Content)
	})

	t.Run("single heading is not a book", func(t *testing.T) {
		assert.Nil(t, SplitChapters("Chapter 1\n\nOnly one."))
	})

	t.Run("no headings", func(t *testing.T) {
		assert.Nil(t, SplitChapters("Just an article."))
	})
}
