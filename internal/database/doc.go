// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── articles/        # Article CRUD and the cached paragraph decomposition
//	├── history/         # Per-user reading history and progress
//	├── annotations/     # Per-user highlighted words
//	└── favourites/      # Per-user favourite articles
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	db, err := database.NewDatabase("./paperread.db")
//
//	articlesRepo := articles.NewRepository(db.DB)
//	historyRepo := history.NewRepository(db.DB)
//
//	article, err := articlesRepo.GetArticleByID(123)
//
// Per-user rows are keyed by (article ID, entities.UserID). The user ID is an
// opaque string; nothing in this layer resolves or validates identities.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Add a compile-time interface check in internal/interfaces/checks.go
package database
