package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/paperread/internal/database/annotations"
	"github.com/mrlokans/paperread/internal/database/articles"
	"github.com/mrlokans/paperread/internal/database/favourites"
	"github.com/mrlokans/paperread/internal/database/history"
	"github.com/mrlokans/paperread/internal/http"
	"github.com/mrlokans/paperread/internal/importers"
	"github.com/mrlokans/paperread/internal/pagination"
	"github.com/mrlokans/paperread/internal/scheduler"
	"github.com/mrlokans/paperread/internal/services"
	"github.com/mrlokans/paperread/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// ArticleStore implementations
var _ http.ArticleStore = (*articles.Repository)(nil)
var _ services.ArticleStore = (*articles.Repository)(nil)
var _ services.ParagraphRebuildStore = (*articles.Repository)(nil)
var _ importers.ArticleStore = (*articles.Repository)(nil)

// Per-reader state
var _ http.HistoryStore = (*history.Repository)(nil)
var _ http.AnnotationStore = (*annotations.Repository)(nil)
var _ http.FavouritesStore = (*favourites.Repository)(nil)

// =============================================================================
// Reading Services
// =============================================================================

// ContentReader implementations
var _ http.ContentReader = (*services.ReaderService)(nil)

// CacheSizer implementations
var _ http.CacheSizer = (*pagination.Cache)(nil)

// ParagraphRebuilder implementations
var _ http.ParagraphRebuilder = (*services.ParagraphService)(nil)
var _ tasks.ParagraphRebuilder = (*services.ParagraphService)(nil)
var _ scheduler.RebuildRunner = (*services.ParagraphService)(nil)

// =============================================================================
// Background Tasks
// =============================================================================

// TaskEnqueuer implementations
var _ http.TaskEnqueuer = (*tasks.Client)(nil)
var _ scheduler.TaskEnqueuer = (*tasks.Client)(nil)
var _ http.TaskStatusReader = (*tasks.Client)(nil)
