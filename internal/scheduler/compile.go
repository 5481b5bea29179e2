package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/khalsafoundry/pothi/internal/compiler"
	"github.com/khalsafoundry/pothi/internal/logging"
)

// CompileRunner executes a full corpus compile and reports the outcome.
type CompileRunner interface {
	Run(ctx context.Context, trigger string) (*compiler.Report, error)
}

// CompileScheduler runs the corpus compile on a cron schedule, so artifact
// sets pick up corpus edits without anyone calling the API.
type CompileScheduler struct {
	runner   CompileRunner
	schedule string
	enabled  bool

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewCompileScheduler creates a scheduler for the given cron schedule.
// Standard five-field cron format, minute precision.
func NewCompileScheduler(runner CompileRunner, schedule string, enabled bool) *CompileScheduler {
	return &CompileScheduler{
		runner:   runner,
		schedule: schedule,
		enabled:  enabled,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if scheduled compiles are enabled.
func (s *CompileScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.enabled {
		logging.Info("compile scheduler disabled")
		return nil
	}

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runCompile(cancelCtx)
	})
	if err != nil {
		s.cancelFunc()
		s.cancelFunc = nil
		return fmt.Errorf("invalid compile schedule '%s': %w", s.schedule, err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true

	logging.Info("compile scheduler started",
		"schedule", s.schedule,
		"next_run", s.nextRunLocked())

	// Monitor for context cancellation
	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop stops the scheduler. An in-flight scheduled compile is cancelled and
// its staging directory discarded; the published artifact set stays intact.
func (s *CompileScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.cron.Remove(s.entryID)

	s.isRunning = false
	logging.Info("compile scheduler stopped")
}

// RunNow triggers an immediate compile without waiting for the schedule.
func (s *CompileScheduler) RunNow() {
	go s.runCompile(context.Background())
}

// IsRunning returns whether the scheduler is active.
func (s *CompileScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next scheduled compile will occur.
func (s *CompileScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	return s.nextRunLocked()
}

func (s *CompileScheduler) nextRunLocked() *time.Time {
	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// runCompile performs the actual compile. Failures are already recorded by
// the runner; the scheduler only logs the outcome.
func (s *CompileScheduler) runCompile(ctx context.Context) {
	logging.Info("scheduled compile starting")

	report, err := s.runner.Run(ctx, "schedule")
	if err != nil {
		logging.Error("scheduled compile failed", "error", err)
		return
	}

	logging.Info("scheduled compile finished",
		"run_id", report.RunID,
		"artifacts", report.Artifacts,
		"warnings", len(report.Warnings),
		"duration_ms", report.DurationMS)
}
