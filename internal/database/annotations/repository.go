// Package annotations provides database operations for words highlighted by readers.
package annotations

import (
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/paperread/internal/entities"
)

// Repository handles all annotation database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new annotations repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAnnotations returns the user's annotations for an article ordered by word.
func (r *Repository) GetAnnotations(articleID uint, userID entities.UserID) ([]entities.Annotation, error) {
	var annotations []entities.Annotation
	err := r.db.Where("article_id = ? AND user_id = ?", articleID, userID).
		Order("word ASC").
		Find(&annotations).Error
	return annotations, err
}

// ReplaceAnnotations swaps the user's annotation set for an article in one
// transaction. Blank words are dropped; a repeated word keeps its last colour.
func (r *Repository) ReplaceAnnotations(articleID uint, userID entities.UserID, annotations []entities.Annotation) ([]entities.Annotation, error) {
	byWord := make(map[string]int)
	cleaned := make([]entities.Annotation, 0, len(annotations))
	for _, a := range annotations {
		word := strings.TrimSpace(a.Word)
		if word == "" {
			continue
		}
		entry := entities.Annotation{
			ArticleID: articleID,
			UserID:    userID,
			Word:      word,
			Color:     strings.TrimSpace(a.Color),
		}
		if i, seen := byWord[word]; seen {
			cleaned[i] = entry
			continue
		}
		byWord[word] = len(cleaned)
		cleaned = append(cleaned, entry)
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ? AND user_id = ?", articleID, userID).
			Delete(&entities.Annotation{}).Error; err != nil {
			return err
		}
		if len(cleaned) == 0 {
			return nil
		}
		return tx.Create(&cleaned).Error
	})
	if err != nil {
		return nil, err
	}
	return cleaned, nil
}

// CountAnnotations returns how many words the user highlighted in an article.
func (r *Repository) CountAnnotations(articleID uint, userID entities.UserID) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Annotation{}).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Count(&count).Error
	return count, err
}
