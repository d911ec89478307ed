// Package history provides database operations for per-user reading history.
//
// There is one row per (article, user). Recording a read again updates the
// timestamp, accumulates the duration and remembers the last page viewed.
package history

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/paperread/internal/entities"
)

// Repository handles all reading history database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new history repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// RecordReading upserts the history row for the article and user.
// A lastPage below 1 keeps the previously stored page.
func (r *Repository) RecordReading(articleID uint, userID entities.UserID, duration, lastPage int) (*entities.ReadingHistory, error) {
	if duration < 0 {
		duration = 0
	}

	entry := entities.ReadingHistory{
		ArticleID:    articleID,
		UserID:       userID,
		ReadDuration: duration,
		LastPage:     max(lastPage, 1),
		ReadAt:       time.Now(),
	}

	assignments := map[string]any{
		"read_at":       entry.ReadAt,
		"read_duration": gorm.Expr("read_duration + ?", duration),
	}
	if lastPage >= 1 {
		assignments["last_page"] = lastPage
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "article_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&entry).Error
	if err != nil {
		return nil, err
	}

	return r.GetEntry(articleID, userID)
}

// GetEntry returns the history row for the article and user.
func (r *Repository) GetEntry(articleID uint, userID entities.UserID) (*entities.ReadingHistory, error) {
	var entry entities.ReadingHistory
	err := r.db.Where("article_id = ? AND user_id = ?", articleID, userID).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetHistory returns the user's history with articles, most recent first.
// Entries of deleted articles are left out.
func (r *Repository) GetHistory(userID entities.UserID, limit int) ([]entities.ReadingHistory, error) {
	var entries []entities.ReadingHistory
	live := r.db.Model(&entities.Article{}).Select("id")
	query := r.db.Preload("Article").
		Where("user_id = ? AND article_id IN (?)", userID, live).
		Order("read_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&entries).Error
	return entries, err
}

// GetEntriesForArticles returns the user's history rows keyed by article ID.
func (r *Repository) GetEntriesForArticles(userID entities.UserID, articleIDs []uint) (map[uint]entities.ReadingHistory, error) {
	result := make(map[uint]entities.ReadingHistory, len(articleIDs))
	if len(articleIDs) == 0 {
		return result, nil
	}

	var entries []entities.ReadingHistory
	err := r.db.Where("user_id = ? AND article_id IN ?", userID, articleIDs).Find(&entries).Error
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		result[e.ArticleID] = e
	}
	return result, nil
}
