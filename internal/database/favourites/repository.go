// Package favourites provides database operations for favourite article management.
//
// This package implements the FavouritesStore interface defined in internal/http/favourites.go.
//
// # Usage
//
//	repo := favourites.NewRepository(db)
//	favs, total, err := repo.GetFavourites(userID, 20, 0)
package favourites

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/paperread/internal/entities"
)

// Repository handles all favourites database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new favourites repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddFavourite marks an article as a favourite of the user. Adding it twice is a no-op.
func (r *Repository) AddFavourite(articleID uint, userID entities.UserID) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entities.Favorite{ArticleID: articleID, UserID: userID}).Error
}

// RemoveFavourite unmarks an article. Removing a missing favourite is a no-op.
func (r *Repository) RemoveFavourite(articleID uint, userID entities.UserID) error {
	return r.db.Where("article_id = ? AND user_id = ?", articleID, userID).
		Delete(&entities.Favorite{}).Error
}

// IsFavourite reports whether the user marked the article.
func (r *Repository) IsFavourite(articleID uint, userID entities.UserID) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Favorite{}).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Count(&count).Error
	return count > 0, err
}

// GetFavourites returns the user's favourites with their articles, newest first.
func (r *Repository) GetFavourites(userID entities.UserID, limit, offset int) ([]entities.Favorite, int64, error) {
	var favourites []entities.Favorite
	var total int64

	if err := r.db.Model(&entities.Favorite{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.Preload("Article").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&favourites).Error
	return favourites, total, err
}

// GetFavouriteArticleIDs returns which of the given articles the user marked.
func (r *Repository) GetFavouriteArticleIDs(userID entities.UserID, articleIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool, len(articleIDs))
	if len(articleIDs) == 0 {
		return result, nil
	}

	var ids []uint
	err := r.db.Model(&entities.Favorite{}).
		Where("user_id = ? AND article_id IN ?", userID, articleIDs).
		Pluck("article_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}
