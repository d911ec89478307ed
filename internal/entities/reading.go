package entities

import (
	"time"
)

// UserID identifies a reader. It is an opaque key: a chosen username, a
// generated guest name or the client address.
type UserID string

// ReadingHistory records that a user opened an article. There is one row per
// article and user; re-reading updates it.
type ReadingHistory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ArticleID    uint      `gorm:"uniqueIndex:idx_history_article_user" json:"article_id"`
	UserID       UserID    `gorm:"uniqueIndex:idx_history_article_user;size:50" json:"user_id"`
	ReadDuration int       `json:"read_duration"` // seconds
	LastPage     int       `gorm:"default:1" json:"last_page"`
	ReadAt       time.Time `gorm:"index" json:"read_at"`
	Article      Article   `gorm:"foreignKey:ArticleID" json:"-"`
}

func (ReadingHistory) TableName() string {
	return "reading_history"
}

// Annotation is a word a user highlighted in an article.
type Annotation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ArticleID uint      `gorm:"uniqueIndex:idx_annotation_article_user_word" json:"article_id"`
	UserID    UserID    `gorm:"uniqueIndex:idx_annotation_article_user_word;size:50" json:"user_id"`
	Word      string    `gorm:"uniqueIndex:idx_annotation_article_user_word;size:100" json:"word"`
	Color     string    `gorm:"size:20" json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

func (Annotation) TableName() string {
	return "annotations"
}

type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ArticleID uint      `gorm:"uniqueIndex:idx_favorite_article_user" json:"article_id"`
	UserID    UserID    `gorm:"uniqueIndex:idx_favorite_article_user;size:50" json:"user_id"`
	Article   Article   `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
