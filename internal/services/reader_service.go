package services

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/mrlokans/paperread/internal/entities"
	"github.com/mrlokans/paperread/internal/pagination"
)

// ErrArticleNotFound is returned when the requested article does not exist or is inactive.
var ErrArticleNotFound = errors.New("article not found")

// ContentPage is a page of an article together with the article's metadata.
type ContentPage struct {
	pagination.PageResult

	ArticleID      uint   `json:"article_id"`
	ArticleTitle   string `json:"article_title"`
	WordCount      int    `json:"word_count"`
	ParagraphCount int    `json:"paragraph_count"`
}

// ReaderService serves paginated article content. It resolves the cached
// paragraph decomposition of an article, persisting it when it was missing,
// and paginates through an optional layout cache.
type ReaderService struct {
	store    ArticleStore
	cache    *pagination.Cache
	defaults pagination.Policy
}

// NewReaderService creates a ReaderService. cache may be nil to disable layout caching.
func NewReaderService(store ArticleStore, cache *pagination.Cache, defaults pagination.Policy) *ReaderService {
	return &ReaderService{
		store:    store,
		cache:    cache,
		defaults: defaults.Normalize(),
	}
}

// DefaultPolicy returns the configured policy requests start from.
func (s *ReaderService) DefaultPolicy() pagination.Policy {
	return s.defaults
}

// Paragraphs returns the paragraph decomposition of an article, deriving and
// persisting it first when the article has none cached.
func (s *ReaderService) Paragraphs(articleID uint) (*entities.Article, []string, error) {
	article, err := s.store.GetArticleByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrArticleNotFound
		}
		return nil, nil, fmt.Errorf("load article %d: %w", articleID, err)
	}

	doc, derived := pagination.Document{
		RawText:    article.Content,
		Paragraphs: article.Paragraphs,
	}.Resolve()

	if derived {
		if err := s.store.SaveParagraphs(article.ID, doc.Paragraphs); err != nil {
			// The page can still be served from the freshly derived paragraphs.
			log.Printf("Failed to cache paragraphs for article %d: %v", article.ID, err)
		}
	}

	return article, doc.Paragraphs, nil
}

// GetPage returns the requested page of an article. Out of range page numbers
// are clamped.
func (s *ReaderService) GetPage(articleID uint, policy pagination.Policy, page int) (*ContentPage, error) {
	article, paragraphs, err := s.Paragraphs(articleID)
	if err != nil {
		return nil, err
	}

	var pages []pagination.Page
	if s.cache != nil {
		pages = s.cache.Paginate(documentKey(article), paragraphs, policy)
	} else {
		pages = pagination.Paginate(paragraphs, policy)
	}

	return &ContentPage{
		PageResult:     pagination.ResultFromPages(pages, len(paragraphs), policy, page),
		ArticleID:      article.ID,
		ArticleTitle:   article.Title,
		WordCount:      article.WordCount,
		ParagraphCount: len(paragraphs),
	}, nil
}

// documentKey changes whenever the article is saved, which is the only way
// its content and therefore its paragraphs change.
func documentKey(article *entities.Article) string {
	return fmt.Sprintf("article:%d:%d", article.ID, article.UpdatedAt.UnixNano())
}
