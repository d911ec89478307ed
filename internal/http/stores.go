package http

import (
	"context"

	"github.com/mrlokans/paperread/internal/entities"
	"github.com/mrlokans/paperread/internal/pagination"
	"github.com/mrlokans/paperread/internal/services"
)

// This file consolidates the store interfaces used by HTTP controllers.
// Each controller depends only on the methods it calls.

// ArticleStore provides article CRUD.
type ArticleStore interface {
	CreateArticle(article *entities.Article) error
	UpdateArticle(article *entities.Article) error
	GetArticleByID(id uint) (*entities.Article, error)
	ListArticles(limit, offset int) ([]entities.Article, int64, error)
	DeleteArticle(id uint) error
}

// HistoryStore records and reads per-reader reading history.
type HistoryStore interface {
	RecordReading(articleID uint, userID entities.UserID, duration, lastPage int) (*entities.ReadingHistory, error)
	GetEntry(articleID uint, userID entities.UserID) (*entities.ReadingHistory, error)
	GetHistory(userID entities.UserID, limit int) ([]entities.ReadingHistory, error)
	GetEntriesForArticles(userID entities.UserID, articleIDs []uint) (map[uint]entities.ReadingHistory, error)
}

// AnnotationStore reads and replaces a reader's highlighted words.
type AnnotationStore interface {
	GetAnnotations(articleID uint, userID entities.UserID) ([]entities.Annotation, error)
	ReplaceAnnotations(articleID uint, userID entities.UserID, annotations []entities.Annotation) ([]entities.Annotation, error)
}

// FavouritesStore defines database operations for favourites management.
type FavouritesStore interface {
	AddFavourite(articleID uint, userID entities.UserID) error
	RemoveFavourite(articleID uint, userID entities.UserID) error
	GetFavourites(userID entities.UserID, limit, offset int) ([]entities.Favorite, int64, error)
	GetFavouriteArticleIDs(userID entities.UserID, articleIDs []uint) (map[uint]bool, error)
}

// ContentReader serves paginated article content.
type ContentReader interface {
	DefaultPolicy() pagination.Policy
	GetPage(articleID uint, policy pagination.Policy, page int) (*services.ContentPage, error)
}

// ParagraphRebuilder re-derives stored paragraph decompositions in-process.
type ParagraphRebuilder interface {
	RebuildArticle(articleID uint) (int, error)
	RebuildAll(ctx context.Context, onlyMissing bool, limit int) (services.RebuildResult, error)
}
