package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/paperread/internal/services"
)

// Queue names, also used as task type identifiers by the HTTP API.
const (
	RebuildParagraphsQueueName    = "rebuild_paragraphs"
	RebuildAllParagraphsQueueName = "rebuild_all_paragraphs"
)

// ParagraphRebuilder re-derives stored paragraph decompositions.
type ParagraphRebuilder interface {
	RebuildArticle(articleID uint) (int, error)
	RebuildAll(ctx context.Context, onlyMissing bool, limit int) (services.RebuildResult, error)
}

// RebuildParagraphsTask rebuilds the decomposition of a single article.
type RebuildParagraphsTask struct {
	ArticleID uint `json:"article_id"`
}

// Config returns the queue configuration for single-article rebuilds.
func (t RebuildParagraphsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        RebuildParagraphsQueueName,
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// RebuildParagraphsProcessor creates a processor function for RebuildParagraphsTask.
func RebuildParagraphsProcessor(rebuilder ParagraphRebuilder) backlite.QueueProcessor[RebuildParagraphsTask] {
	return func(ctx context.Context, task RebuildParagraphsTask) error {
		if rebuilder == nil {
			return fmt.Errorf("paragraph rebuilder not configured")
		}

		count, err := rebuilder.RebuildArticle(task.ArticleID)
		if err != nil {
			return fmt.Errorf("rebuild article %d: %w", task.ArticleID, err)
		}

		log.Printf("[TASK] Rebuilt article %d: %d paragraphs", task.ArticleID, count)
		return nil
	}
}

// NewRebuildParagraphsQueue creates a backlite queue for single-article rebuilds.
func NewRebuildParagraphsQueue(rebuilder ParagraphRebuilder) backlite.Queue {
	return backlite.NewQueue(RebuildParagraphsProcessor(rebuilder))
}

// RebuildAllParagraphsTask rebuilds many articles in one run.
type RebuildAllParagraphsTask struct {
	// OnlyMissing restricts the run to articles without a stored decomposition.
	OnlyMissing bool `json:"only_missing,omitempty"`
	// Limit caps the number of missing articles handled (0 = all).
	Limit int `json:"limit,omitempty"`
}

// Config returns the queue configuration for bulk rebuilds.
func (t RebuildAllParagraphsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        RebuildAllParagraphsQueueName,
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     30 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// RebuildAllParagraphsProcessor creates a processor function for RebuildAllParagraphsTask.
func RebuildAllParagraphsProcessor(rebuilder ParagraphRebuilder) backlite.QueueProcessor[RebuildAllParagraphsTask] {
	return func(ctx context.Context, task RebuildAllParagraphsTask) error {
		if rebuilder == nil {
			return fmt.Errorf("paragraph rebuilder not configured")
		}

		result, err := rebuilder.RebuildAll(ctx, task.OnlyMissing, task.Limit)
		if err != nil {
			return fmt.Errorf("rebuild paragraphs: %w", err)
		}

		log.Printf("[TASK] Paragraph rebuild complete: %d total, %d rebuilt, %d failed, %d paragraphs",
			result.Total, result.Rebuilt, result.Failed, result.Paragraphs)
		return nil
	}
}

// NewRebuildAllParagraphsQueue creates a backlite queue for bulk rebuilds.
func NewRebuildAllParagraphsQueue(rebuilder ParagraphRebuilder) backlite.Queue {
	return backlite.NewQueue(RebuildAllParagraphsProcessor(rebuilder))
}
