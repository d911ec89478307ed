package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/robfig/cron/v3"

	"github.com/mrlokans/paperread/internal/config"
	"github.com/mrlokans/paperread/internal/services"
	"github.com/mrlokans/paperread/internal/tasks"
)

// RebuildRunner rebuilds decompositions in-process.
type RebuildRunner interface {
	RebuildAll(ctx context.Context, onlyMissing bool, limit int) (services.RebuildResult, error)
}

// TaskEnqueuer hands work to the background task queue.
type TaskEnqueuer interface {
	Enqueue(tasks ...backlite.Task) ([]string, error)
}

// ParagraphReconcileScheduler periodically rebuilds paragraph decompositions
// that are missing, e.g. for articles inserted directly into the database.
type ParagraphReconcileScheduler struct {
	cfg    config.ParagraphReconcile
	runner RebuildRunner
	queue  TaskEnqueuer

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewParagraphReconcileScheduler creates a scheduler. When queue is nil each
// run rebuilds in-process through runner.
func NewParagraphReconcileScheduler(cfg config.ParagraphReconcile, runner RebuildRunner, queue TaskEnqueuer) *ParagraphReconcileScheduler {
	return &ParagraphReconcileScheduler{
		cfg:    cfg,
		runner: runner,
		queue:  queue,
		cron:   cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if reconciliation is enabled
func (s *ParagraphReconcileScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.cfg.Enabled {
		log.Printf("Paragraph reconcile scheduler: disabled")
		return nil
	}

	if err := config.ValidateCronSchedule(s.cfg.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.cfg.Schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		s.RunNow(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reconcile job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Paragraph reconcile scheduler: started with schedule '%s'. Next run: %v",
		s.cfg.Schedule, s.nextRunLocked())

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running job and stops the scheduler
func (s *ParagraphReconcileScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron.Remove(s.entryID)
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Paragraph reconcile scheduler: stopped")
}

// IsRunning returns whether the scheduler is active
func (s *ParagraphReconcileScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next reconciliation will occur
func (s *ParagraphReconcileScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	next := s.nextRunLocked()
	if next.IsZero() {
		return nil
	}
	return &next
}

func (s *ParagraphReconcileScheduler) nextRunLocked() time.Time {
	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			return entry.Next
		}
	}
	return time.Time{}
}

// RunNow performs one reconciliation synchronously, enqueueing it when a task
// queue is configured.
func (s *ParagraphReconcileScheduler) RunNow(ctx context.Context) {
	task := tasks.RebuildAllParagraphsTask{OnlyMissing: true, Limit: s.cfg.BatchSize}

	if s.queue != nil {
		if _, err := s.queue.Enqueue(task); err != nil {
			log.Printf("Paragraph reconcile: failed to enqueue rebuild: %v", err)
			return
		}
		log.Printf("Paragraph reconcile: rebuild enqueued (batch size %d)", s.cfg.BatchSize)
		return
	}

	if s.runner == nil {
		log.Printf("Paragraph reconcile: skipped (no runner configured)")
		return
	}

	startTime := time.Now()
	result, err := s.runner.RebuildAll(ctx, task.OnlyMissing, task.Limit)
	if err != nil {
		log.Printf("Paragraph reconcile: failed: %v", err)
		return
	}
	if result.Total == 0 {
		return
	}
	log.Printf("Paragraph reconcile: rebuilt %d of %d articles (%d failed) in %v",
		result.Rebuilt, result.Total, result.Failed, time.Since(startTime).Round(time.Millisecond))
}
