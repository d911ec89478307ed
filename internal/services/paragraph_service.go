package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/mrlokans/paperread/internal/pagination"
)

// RebuildResult summarises a bulk paragraph rebuild.
type RebuildResult struct {
	Total      int `json:"total"`
	Rebuilt    int `json:"rebuilt"`
	Failed     int `json:"failed"`
	Paragraphs int `json:"paragraphs"`
}

// ParagraphService re-derives stored paragraph decompositions from article content.
type ParagraphService struct {
	store ParagraphRebuildStore
	cache *pagination.Cache
}

func NewParagraphService(store ParagraphRebuildStore, cache *pagination.Cache) *ParagraphService {
	return &ParagraphService{store: store, cache: cache}
}

// RebuildArticle rebuilds one article and returns its new paragraph count.
func (s *ParagraphService) RebuildArticle(articleID uint) (int, error) {
	count, err := s.store.RebuildParagraphs(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrArticleNotFound
		}
		return 0, fmt.Errorf("rebuild paragraphs of article %d: %w", articleID, err)
	}
	return count, nil
}

// RebuildAll rebuilds every article, or only those with content but no stored
// decomposition when onlyMissing is set. limit caps the missing-only selection
// (0 = no cap). Failures of single articles are counted and logged; the run
// stops early only when ctx is cancelled.
func (s *ParagraphService) RebuildAll(ctx context.Context, onlyMissing bool, limit int) (RebuildResult, error) {
	var (
		ids []uint
		err error
	)
	if onlyMissing {
		ids, err = s.store.ListArticleIDsMissingParagraphs(limit)
	} else {
		ids, err = s.store.ListArticleIDs()
	}
	if err != nil {
		return RebuildResult{}, fmt.Errorf("list articles for rebuild: %w", err)
	}

	result := RebuildResult{Total: len(ids)}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		count, err := s.RebuildArticle(id)
		if err != nil {
			log.Printf("Failed to rebuild paragraphs for article %d: %v", id, err)
			result.Failed++
			continue
		}
		result.Rebuilt++
		result.Paragraphs += count
	}

	if result.Rebuilt > 0 && s.cache != nil {
		s.cache.Purge()
	}
	return result, nil
}
