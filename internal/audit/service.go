package audit

import (
	"time"

	"github.com/khalsafoundry/pothi/internal/compiler"
	"github.com/khalsafoundry/pothi/internal/database/audit"
	"github.com/khalsafoundry/pothi/internal/entities"
	"github.com/khalsafoundry/pothi/internal/logging"
)

// Service provides high-level run auditing: the database history row plus
// the optional per-run report file.
type Service struct {
	repo    *audit.Repository
	auditor *Auditor
}

// NewService creates a new audit service. A nil auditor disables report
// files; the database history is always kept.
func NewService(repo *audit.Repository, auditor *Auditor) *Service {
	return &Service{repo: repo, auditor: auditor}
}

// RecordCompletion persists one finished run. Recording problems are logged
// and swallowed: the run outcome already reached the caller, and a history
// hiccup must not turn a successful compile into a failure.
func (s *Service) RecordCompletion(report *compiler.Report, trigger string, runErr error) {
	run := &entities.CompileRun{
		RunID:         report.RunID,
		Status:        entities.RunStatusSuccess,
		Trigger:       trigger,
		ArtifactCount: report.Artifacts,
		WarningCount:  len(report.Warnings),
		DurationMS:    report.DurationMS,
		StartedAt:     report.StartedAt,
		FinishedAt:    report.FinishedAt,
	}
	if runErr != nil {
		run.Status = entities.RunStatusFailed
		run.ErrorMsg = truncate(runErr.Error(), 500)
	}

	if err := s.repo.RecordRun(run); err != nil {
		logging.Error("failed to record compile run", "run_id", report.RunID, "error", err)
	}

	if s.auditor != nil {
		if _, err := s.auditor.SaveReport(report); err != nil {
			logging.Error("failed to write run report", "run_id", report.RunID, "error", err)
		}
	}
}

// RecentRuns retrieves run history rows, most recent first.
func (s *Service) RecentRuns(limit int) ([]entities.CompileRun, error) {
	return s.repo.RecentRuns(limit)
}

// RunByID retrieves one run history row.
func (s *Service) RunByID(runID string) (*entities.CompileRun, error) {
	return s.repo.RunByID(runID)
}

// PruneOldRuns removes history rows older than the retention period.
func (s *Service) PruneOldRuns(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldRuns(cutoff)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
