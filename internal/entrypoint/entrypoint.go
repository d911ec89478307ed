package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/paperread/internal/config"
	"github.com/mrlokans/paperread/internal/database"
	"github.com/mrlokans/paperread/internal/database/annotations"
	"github.com/mrlokans/paperread/internal/database/articles"
	"github.com/mrlokans/paperread/internal/database/favourites"
	"github.com/mrlokans/paperread/internal/database/history"
	http_controllers "github.com/mrlokans/paperread/internal/http"
	"github.com/mrlokans/paperread/internal/pagination"
	"github.com/mrlokans/paperread/internal/scheduler"
	"github.com/mrlokans/paperread/internal/services"
	"github.com/mrlokans/paperread/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Paperread v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	articleRepo := articles.NewRepository(db.DB)

	var pageCache *pagination.Cache
	if cfg.PageCache.Size > 0 {
		pageCache, err = pagination.NewCache(cfg.PageCache.Size)
		if err != nil {
			log.Fatalf("Failed to initialize page cache: %v", err)
		}
		log.Printf("Page cache enabled (%d layouts)", cfg.PageCache.Size)
	}

	defaults := cfg.Pagination.Policy()
	reader := services.NewReaderService(articleRepo, pageCache, defaults)
	rebuilder := services.NewParagraphService(articleRepo, pageCache)
	log.Printf("Default pagination policy: %s", defaults.Key())

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}
		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewRebuildParagraphsQueue(rebuilder),
			tasks.NewRebuildAllParagraphsQueue(rebuilder),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Reconcile articles that were stored without a paragraph decomposition
	var queue scheduler.TaskEnqueuer
	if taskClient != nil {
		queue = taskClient
	}
	reconcile := scheduler.NewParagraphReconcileScheduler(cfg.ParagraphReconcile, rebuilder, queue)
	schedulerCtx, schedulerCancel := context.WithCancel(context.Background())
	defer schedulerCancel()
	if err := reconcile.Start(schedulerCtx); err != nil {
		log.Printf("Warning: failed to start paragraph reconcile scheduler: %v", err)
	}

	if cfg.Library.ReadOnly {
		log.Println("Article library is read-only")
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:    db,
		Articles:    articleRepo,
		Reader:      reader,
		PageCache:   pageCache,
		History:     history.NewRepository(db.DB),
		Annotations: annotations.NewRepository(db.DB),
		Favourites:  favourites.NewRepository(db.DB),
		Rebuilder:   rebuilder,
		TaskClient:  taskClient,
		ReadOnly:    cfg.Library.ReadOnly,
		Version:     version,
	})

	Serve(router, cfg, func(ctx context.Context) {
		reconcile.Stop()
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	})
}
