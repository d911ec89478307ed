package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(SecurityHeadersMiddleware())
	router.Use(IdentityMiddleware())

	// A nil *database.Database must not become a non-nil Pinger
	var pinger Pinger
	if cfg.Database != nil {
		pinger = cfg.Database
	}
	health := NewHealthController(pinger, cfg.Version)
	if cfg.PageCache != nil {
		health.WithPageCache(cfg.PageCache)
	}

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)

	api := router.Group("/api")
	libraryWrites := NewReadOnlyGuard(cfg.ReadOnly).Handler()

	// Articles API endpoints
	if cfg.Articles != nil {
		articlesController := NewArticlesController(cfg.Articles, cfg.History, cfg.Favourites)
		api.GET("/articles", articlesController.ListArticles)
		api.POST("/articles", libraryWrites, articlesController.CreateArticle)
		api.GET("/articles/:id", articlesController.GetArticle)
		api.PUT("/articles/:id", libraryWrites, articlesController.UpdateArticle)
		api.DELETE("/articles/:id", libraryWrites, articlesController.DeleteArticle)
	}

	// Paginated reading
	if cfg.Reader != nil {
		contentController := NewContentController(cfg.Reader)
		api.GET("/articles/:id/content_paginated", contentController.GetPaginatedContent)
	}

	// Reading history endpoints
	if cfg.History != nil && cfg.Articles != nil {
		readingController := NewReadingController(cfg.Articles, cfg.History)
		api.POST("/articles/:id/record_reading", readingController.RecordReading)
		api.GET("/history", readingController.GetHistory)
	}

	// Annotation endpoints
	if cfg.Annotations != nil {
		annotationsController := NewAnnotationsController(cfg.Annotations)
		api.GET("/articles/:id/annotations", annotationsController.GetAnnotations)
		api.POST("/articles/:id/save_annotations", annotationsController.SaveAnnotations)
	}

	// Favourites endpoints
	if cfg.Favourites != nil && cfg.Articles != nil {
		favouritesController := NewFavouritesController(cfg.Favourites, cfg.Articles)
		api.POST("/articles/:id/favourite", favouritesController.AddFavourite)
		api.DELETE("/articles/:id/favourite", favouritesController.RemoveFavourite)
		api.GET("/favourites", favouritesController.ListFavourites)
	}

	// Paragraph maintenance
	if cfg.Rebuilder != nil {
		var queue TaskEnqueuer
		if cfg.TaskClient != nil {
			queue = cfg.TaskClient
		}
		adminController := NewAdminController(cfg.Rebuilder, queue)
		api.POST("/admin/paragraphs/rebuild", libraryWrites, adminController.RebuildParagraphs)
	}

	// Task queue inspection
	if cfg.TaskClient != nil {
		tasksController := NewTasksController(cfg.TaskClient)
		api.GET("/tasks/types", tasksController.ListTaskTypes)
		api.GET("/tasks/:id", tasksController.GetTaskStatus)
	}

	return router
}
