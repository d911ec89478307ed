package tasks

import (
	"path/filepath"
	"strings"
	"time"
)

// Config holds configuration for the task queue system.
type Config struct {
	Workers         int           // concurrent workers, default 2
	ReleaseAfter    time.Duration // stuck tasks return to the queue after this, default 15m
	CleanupInterval time.Duration // how often retained results are purged, default 1h
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Workers:         2,
		ReleaseAfter:    15 * time.Minute,
		CleanupInterval: time.Hour,
	}
}

// withDefaults replaces unset or invalid values with their defaults.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Workers < 1 {
		c.Workers = d.Workers
	}
	if c.ReleaseAfter <= 0 {
		c.ReleaseAfter = d.ReleaseAfter
	}
	if c.CleanupInterval <= 0 {
		c.CleanupInterval = d.CleanupInterval
	}
	return c
}

// DatabasePath derives the queue database location from the main database:
// "data/paperread.db" becomes "data/paperread-tasks.db".
func DatabasePath(mainDBPath string) string {
	dir, base := filepath.Split(mainDBPath)
	ext := filepath.Ext(base)
	return filepath.Join(dir, strings.TrimSuffix(base, ext)+"-tasks"+ext)
}
