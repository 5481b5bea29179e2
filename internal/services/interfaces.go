package services

import (
	"github.com/khalsafoundry/pothi/internal/compiler"
)

// RunRecorder persists compile run outcomes to the audit trail.
// Use a nil recorder to run without history.
type RunRecorder interface {
	RecordCompletion(report *compiler.Report, trigger string, runErr error)
}
