package services

import "github.com/mrlokans/paperread/internal/entities"

// ArticleReader provides the article lookups needed to serve page requests.
type ArticleReader interface {
	GetArticleByID(id uint) (*entities.Article, error)
}

// ParagraphWriter persists the cached paragraph decomposition of an article.
type ParagraphWriter interface {
	SaveParagraphs(id uint, paragraphs []string) error
}

// ArticleStore is the persistence collaborator of ReaderService.
type ArticleStore interface {
	ArticleReader
	ParagraphWriter
}

// ParagraphRebuildStore re-derives and enumerates cached paragraph decompositions.
type ParagraphRebuildStore interface {
	RebuildParagraphs(id uint) (int, error)
	ListArticleIDs() ([]uint, error)
	ListArticleIDsMissingParagraphs(limit int) ([]uint, error)
}
