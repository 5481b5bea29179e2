package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/khalsafoundry/pothi/internal/compiler"
	"github.com/khalsafoundry/pothi/internal/logging"
)

// CompileRunner executes a full corpus compile and reports the outcome.
type CompileRunner interface {
	Run(ctx context.Context, trigger string) (*compiler.Report, error)
}

// CompileTask compiles the whole corpus into a fresh artifact set.
// Trigger records what requested the run (api, schedule, cli).
type CompileTask struct {
	Trigger string `json:"trigger"`
}

// Config returns the queue configuration for compile tasks.
// A run either publishes a complete artifact set or leaves the previous one
// in place, so a failed attempt is not retried automatically.
func (t CompileTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "compile",
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

// CompileProcessor creates a processor function for CompileTask.
func CompileProcessor(runner CompileRunner) backlite.QueueProcessor[CompileTask] {
	return func(ctx context.Context, task CompileTask) error {
		if runner == nil {
			return fmt.Errorf("compile runner not configured")
		}

		trigger := task.Trigger
		if trigger == "" {
			trigger = "task"
		}

		report, err := runner.Run(ctx, trigger)
		if err != nil {
			return fmt.Errorf("compile run: %w", err)
		}

		logging.Info("compile task finished",
			"run_id", report.RunID,
			"trigger", trigger,
			"artifacts", report.Artifacts,
			"warnings", len(report.Warnings),
			"duration_ms", report.DurationMS)
		return nil
	}
}

// NewCompileQueue creates a backlite queue for compile tasks.
func NewCompileQueue(runner CompileRunner) backlite.Queue {
	return backlite.NewQueue(CompileProcessor(runner))
}
