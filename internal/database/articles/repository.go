// Package articles provides database operations for reading content.
//
// Besides CRUD it owns the cached paragraph decomposition stored next to each
// article's raw text. The decomposition is derived with pagination.Extract and
// always written together with the paragraph count in a single UPDATE, so a
// concurrent reader sees either the old or the new decomposition.
//
// # Usage
//
//	repo := articles.NewRepository(db)
//	article, err := repo.GetArticleByID(42)
//	paragraphs, err := repo.SaveParagraphs(article.ID, pagination.Extract(article.Content))
package articles

import (
	"errors"
	"regexp"

	"gorm.io/gorm"

	"github.com/mrlokans/paperread/internal/entities"
	"github.com/mrlokans/paperread/internal/pagination"
)

var wordPattern = regexp.MustCompile(`\b[A-Za-z]+\b`)

// CountWords counts runs of latin letters, which is how word counts are shown to learners.
func CountWords(content string) int {
	return len(wordPattern.FindAllStringIndex(content, -1))
}

// Derive fills the fields computed from the article content.
func Derive(article *entities.Article) {
	article.WordCount = CountWords(article.Content)
	article.Paragraphs = pagination.Extract(article.Content)
	article.ParagraphCount = len(article.Paragraphs)
}

// Repository handles all article database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new articles repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateArticle stores a new article with its derived counts and paragraphs.
func (r *Repository) CreateArticle(article *entities.Article) error {
	if article.Kind == "" {
		article.Kind = entities.ContentKindArticle
	}
	if article.Difficulty == "" {
		article.Difficulty = entities.DifficultyIntermediate
	}
	article.IsActive = true
	Derive(article)
	return r.db.Create(article).Error
}

// UpdateArticle saves all fields of the article. The paragraph decomposition
// is recomputed because the content may have changed.
func (r *Repository) UpdateArticle(article *entities.Article) error {
	Derive(article)
	return r.db.Save(article).Error
}

// GetArticleByID retrieves an active article by ID.
func (r *Repository) GetArticleByID(id uint) (*entities.Article, error) {
	var article entities.Article
	err := r.db.Where("is_active = ?", true).First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetArticleByTitle retrieves an article by its exact title.
func (r *Repository) GetArticleByTitle(title string) (*entities.Article, error) {
	var article entities.Article
	err := r.db.Where("title = ?", title).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// ListArticles returns active articles, newest first, with pagination.
func (r *Repository) ListArticles(limit, offset int) ([]entities.Article, int64, error) {
	var articles []entities.Article
	var total int64

	query := r.db.Model(&entities.Article{}).Where("is_active = ?", true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = r.db.Where("is_active = ?", true).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&articles).Error
	return articles, total, err
}

// DeleteArticle soft-deletes an article.
func (r *Repository) DeleteArticle(id uint) error {
	result := r.db.Delete(&entities.Article{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SaveParagraphs replaces the cached paragraph decomposition of an article.
// Paragraphs and count are written in one statement; the last writer wins.
func (r *Repository) SaveParagraphs(id uint, paragraphs []string) error {
	if paragraphs == nil {
		paragraphs = []string{}
	}
	result := r.db.Model(&entities.Article{ID: id}).
		Select("paragraphs", "paragraph_count").
		UpdateColumns(&entities.Article{Paragraphs: paragraphs, ParagraphCount: len(paragraphs)})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RebuildParagraphs re-derives the decomposition of one article from its
// content and returns the new paragraph count.
func (r *Repository) RebuildParagraphs(id uint) (int, error) {
	var article entities.Article
	if err := r.db.Select("id", "content").First(&article, id).Error; err != nil {
		return 0, err
	}
	paragraphs := pagination.Extract(article.Content)
	if err := r.SaveParagraphs(id, paragraphs); err != nil {
		return 0, err
	}
	return len(paragraphs), nil
}

// ListArticleIDs returns the IDs of all articles that are not deleted.
func (r *Repository) ListArticleIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&entities.Article{}).Order("id ASC").Pluck("id", &ids).Error
	return ids, err
}

// ListArticleIDsMissingParagraphs returns articles with content but no cached decomposition.
func (r *Repository) ListArticleIDsMissingParagraphs(limit int) ([]uint, error) {
	var ids []uint
	query := r.db.Model(&entities.Article{}).
		Where("paragraph_count = 0 AND TRIM(content) <> ''").
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Pluck("id", &ids).Error
	return ids, err
}

// IsNotFound reports whether err means the article does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
