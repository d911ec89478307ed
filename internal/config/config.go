package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"

	"github.com/mrlokans/paperread/internal/pagination"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Tasks
		Pagination
		PageCache
		ParagraphReconcile
		Import
		Library
	}

	HTTP struct {
		Port int32
		Host string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	// Pagination holds the server-wide default policy. Requests override it field by field.
	Pagination struct {
		Mode          string // "fixed" or "smart"
		PageSize      int
		TargetChars   int
		MinChars      int
		MaxChars      int
		MinParagraphs int
		MaxParagraphs int
	}
	PageCache struct {
		Size int // Number of page layouts kept in memory, 0 disables the cache
	}
	ParagraphReconcile struct {
		Enabled   bool
		Schedule  string // Cron format: "*/30 * * * *" = every 30 minutes
		BatchSize int    // Articles rebuilt per run
	}
	Import struct {
		Pattern string
	}
	Library struct {
		ReadOnly bool // Reject article writes over HTTP; reader state stays writable
	}
)

// Policy converts the configured defaults into a pagination policy.
func (p Pagination) Policy() pagination.Policy {
	return pagination.Policy{
		Mode:          pagination.ParseMode(p.Mode),
		PageSize:      p.PageSize,
		TargetChars:   p.TargetChars,
		MinChars:      p.MinChars,
		MaxChars:      p.MaxChars,
		MinParagraphs: p.MinParagraphs,
		MaxParagraphs: p.MaxParagraphs,
	}
}

// Validate rejects default policies that would only paginate because of
// normalisation. The pagination core itself accepts any values.
func (p Pagination) Validate() error {
	if p.Mode != string(pagination.ModeFixed) && p.Mode != string(pagination.ModeSmart) {
		return fmt.Errorf("pagination mode must be %q or %q, got %q", pagination.ModeFixed, pagination.ModeSmart, p.Mode)
	}
	positive := map[string]int{
		"PAGINATION_PAGE_SIZE":      p.PageSize,
		"PAGINATION_TARGET_CHARS":   p.TargetChars,
		"PAGINATION_MIN_CHARS":      p.MinChars,
		"PAGINATION_MAX_CHARS":      p.MaxChars,
		"PAGINATION_MIN_PARAGRAPHS": p.MinParagraphs,
		"PAGINATION_MAX_PARAGRAPHS": p.MaxParagraphs,
	}
	for name, value := range positive {
		if value < 1 {
			return fmt.Errorf("%s must be positive, got %d", name, value)
		}
	}
	if p.MinChars > p.MaxChars {
		return fmt.Errorf("PAGINATION_MIN_CHARS (%d) exceeds PAGINATION_MAX_CHARS (%d)", p.MinChars, p.MaxChars)
	}
	if p.MinParagraphs > p.MaxParagraphs {
		return fmt.Errorf("PAGINATION_MIN_PARAGRAPHS (%d) exceeds PAGINATION_MAX_PARAGRAPHS (%d)", p.MinParagraphs, p.MaxParagraphs)
	}
	return nil
}

// ValidateCronSchedule checks that a standard 5-field cron expression parses.
func ValidateCronSchedule(schedule string) error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	_, err := parser.Parse(schedule)
	return err
}

// Validate checks the whole configuration at startup.
func (c *Config) Validate() error {
	if err := c.Pagination.Validate(); err != nil {
		return err
	}
	if c.ParagraphReconcile.Enabled {
		if err := ValidateCronSchedule(c.ParagraphReconcile.Schedule); err != nil {
			return fmt.Errorf("invalid PARAGRAPH_RECONCILE_SCHEDULE '%s': %w", c.ParagraphReconcile.Schedule, err)
		}
	}
	return nil
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Pagination defaults
	v.SetDefault("pagination_mode", string(pagination.DefaultPolicy.Mode))
	v.SetDefault("pagination_page_size", pagination.DefaultPolicy.PageSize)
	v.SetDefault("pagination_target_chars", pagination.DefaultPolicy.TargetChars)
	v.SetDefault("pagination_min_chars", pagination.DefaultPolicy.MinChars)
	v.SetDefault("pagination_max_chars", pagination.DefaultPolicy.MaxChars)
	v.SetDefault("pagination_min_paragraphs", pagination.DefaultPolicy.MinParagraphs)
	v.SetDefault("pagination_max_paragraphs", pagination.DefaultPolicy.MaxParagraphs)
	v.SetDefault("page_cache_size", pagination.DefaultCacheSize)

	// Paragraph reconciliation
	v.SetDefault("paragraph_reconcile_enabled", true)
	v.SetDefault("paragraph_reconcile_schedule", "*/30 * * * *") // Every 30 minutes
	v.SetDefault("paragraph_reconcile_batch_size", 100)

	v.SetDefault("import_pattern", DefaultImportPattern)
	v.SetDefault("library_read_only", false)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Pagination: Pagination{
			Mode:          v.GetString("PAGINATION_MODE"),
			PageSize:      v.GetInt("PAGINATION_PAGE_SIZE"),
			TargetChars:   v.GetInt("PAGINATION_TARGET_CHARS"),
			MinChars:      v.GetInt("PAGINATION_MIN_CHARS"),
			MaxChars:      v.GetInt("PAGINATION_MAX_CHARS"),
			MinParagraphs: v.GetInt("PAGINATION_MIN_PARAGRAPHS"),
			MaxParagraphs: v.GetInt("PAGINATION_MAX_PARAGRAPHS"),
		},
		PageCache: PageCache{
			Size: v.GetInt("PAGE_CACHE_SIZE"),
		},
		ParagraphReconcile: ParagraphReconcile{
			Enabled:   v.GetBool("PARAGRAPH_RECONCILE_ENABLED"),
			Schedule:  v.GetString("PARAGRAPH_RECONCILE_SCHEDULE"),
			BatchSize: v.GetInt("PARAGRAPH_RECONCILE_BATCH_SIZE"),
		},
		Import: Import{
			Pattern: v.GetString("IMPORT_PATTERN"),
		},
		Library: Library{
			ReadOnly: v.GetBool("LIBRARY_READ_ONLY"),
		},
	}
}
