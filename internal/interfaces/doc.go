// Package interfaces documents the core abstractions used throughout the application.
//
// It gathers the extension points of the reading pipeline in one place and holds
// the compile-time checks that bind them to their implementations.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - ArticleStore: Article CRUD (internal/http/stores.go, internal/importers/articles.go)
//   - services.ArticleStore: Article lookup plus paragraph persistence (internal/services/interfaces.go)
//   - ParagraphRebuildStore: Re-deriving stored decompositions (internal/services/interfaces.go)
//   - HistoryStore: Per-reader reading history (internal/http/stores.go)
//   - AnnotationStore: Per-reader annotations (internal/http/stores.go)
//   - FavouritesStore: Favourite tracking (internal/http/stores.go)
//
// ## Reading Interfaces
//
//   - ContentReader: Paginated article content (internal/http/stores.go)
//   - ParagraphRebuilder: Bulk and single rebuilds (internal/http/stores.go, internal/tasks/rebuild_paragraphs.go)
//
// ## Background Work Interfaces
//
//   - TaskEnqueuer: Hands tasks to the backlite queue (internal/http/admin.go, internal/scheduler/paragraph_reconcile.go)
//   - RebuildRunner: In-process fallback for scheduled rebuilds (internal/scheduler/paragraph_reconcile.go)
//
// # Adding a New Pagination Mode
//
//  1. Add a Mode constant in internal/pagination/policy.go and teach Policy.Normalize
//     which fields it uses.
//
//  2. Add a paginate function next to paginateFixed/paginateSmart and dispatch to it
//     from Paginate. It must return at least one page, even for empty input.
//
//  3. Accept the new mode in config.Pagination.Validate and in the HTTP/CLI parsers.
//
// # Adding a New Per-Reader Domain
//
// To add new reader state (e.g., bookmarks):
//
//  1. Create sub-package: internal/database/bookmarks/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Declare the store interface in internal/http/stores.go and add
//     a compile-time check to checks.go:
//
//     var _ http.BookmarkStore = (*bookmarks.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
