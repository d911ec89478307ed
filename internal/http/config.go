package http

import (
	"github.com/mrlokans/paperread/internal/database"
	"github.com/mrlokans/paperread/internal/pagination"
	"github.com/mrlokans/paperread/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database
	Articles ArticleStore
	Reader   ContentReader

	// Shared page layout cache, reported by /health (optional)
	PageCache *pagination.Cache

	// Per-reader state
	History     HistoryStore
	Annotations AnnotationStore
	Favourites  FavouritesStore

	// Paragraph maintenance
	Rebuilder ParagraphRebuilder

	// Task queue client (optional); rebuilds run in-process without it
	TaskClient *tasks.Client

	// Reject article and maintenance writes
	ReadOnly bool

	// Application info
	Version string
}
