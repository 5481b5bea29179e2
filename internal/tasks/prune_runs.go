package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/khalsafoundry/pothi/internal/logging"
)

// RunHistoryPruner provides the ability to delete old compile run records.
type RunHistoryPruner interface {
	PruneOldRuns(retention time.Duration) (int64, error)
}

// PruneRunsTask removes compile run records older than the configured
// retention period.
type PruneRunsTask struct {
	RetentionDays int `json:"retention_days"`
}

// Config returns the queue configuration for run history pruning tasks.
func (t PruneRunsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "prune_runs",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// PruneRunsProcessor creates a processor function for PruneRunsTask.
func PruneRunsProcessor(pruner RunHistoryPruner) backlite.QueueProcessor[PruneRunsTask] {
	return func(ctx context.Context, task PruneRunsTask) error {
		if pruner == nil {
			return fmt.Errorf("run history pruner not configured")
		}

		retentionDays := task.RetentionDays
		if retentionDays <= 0 {
			retentionDays = 30
		}
		retention := time.Duration(retentionDays) * 24 * time.Hour

		deleted, err := pruner.PruneOldRuns(retention)
		if err != nil {
			return fmt.Errorf("prune run history: %w", err)
		}

		logging.Info("pruned compile run history", "deleted", deleted, "retention_days", retentionDays)
		return nil
	}
}

// NewPruneRunsQueue creates a backlite queue for run history pruning tasks.
func NewPruneRunsQueue(pruner RunHistoryPruner) backlite.Queue {
	return backlite.NewQueue(PruneRunsProcessor(pruner))
}
