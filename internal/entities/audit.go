package entities

import "time"

type RunStatus string

const (
	RunStatusRunning RunStatus = "running"
	RunStatusSuccess RunStatus = "success"
	RunStatusFailed  RunStatus = "failed"
)

// CompileRun is one row of the compile audit trail.
type CompileRun struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RunID         string    `gorm:"uniqueIndex;size:36" json:"run_id"`
	Status        RunStatus `gorm:"index;size:20" json:"status"`
	Trigger       string    `gorm:"size:50" json:"trigger"` // e.g., "cli", "schedule", "api"
	ArtifactCount int       `json:"artifact_count"`
	WarningCount  int       `json:"warning_count"`
	ErrorMsg      string    `gorm:"size:500" json:"error_msg,omitempty"`
	DurationMS    int64     `json:"duration_ms"`
	StartedAt     time.Time `gorm:"index" json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
}

func (CompileRun) TableName() string {
	return "compile_runs"
}
