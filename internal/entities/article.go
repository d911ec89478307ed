package entities

import (
	"time"

	"gorm.io/gorm"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ParseDifficulty returns the difficulty for a name and whether it is known.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch d := Difficulty(s); d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return d, true
	}
	return "", false
}

type ContentKind string

const (
	ContentKindArticle ContentKind = "article"
	ContentKindGrammar ContentKind = "grammar" // grammar lessons and user grammar notes
)

type Article struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Title      string      `gorm:"index;size:200" json:"title"`
	Content    string      `gorm:"type:text" json:"content"`
	Source     string      `gorm:"size:200" json:"source,omitempty"`
	Difficulty Difficulty  `gorm:"size:20;default:'intermediate'" json:"difficulty"`
	Category   string      `gorm:"size:50" json:"category,omitempty"`
	Kind       ContentKind `gorm:"index;size:20;default:'article'" json:"kind"`
	Author     UserID      `gorm:"index;size:50" json:"author,omitempty"` // set for user-written grammar notes

	WordCount      int `json:"word_count"`
	ParagraphCount int `json:"paragraph_count"`

	// Paragraphs caches the blank-line decomposition of Content. It is
	// rewritten together with ParagraphCount whenever Content changes.
	Paragraphs []string `gorm:"serializer:json;type:text" json:"-"`

	IsActive      bool `gorm:"default:true" json:"is_active"`
	IsRecommended bool `gorm:"default:false" json:"is_recommended"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Article) TableName() string {
	return "articles"
}
