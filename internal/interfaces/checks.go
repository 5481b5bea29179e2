package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/khalsafoundry/pothi/internal/audit"
	"github.com/khalsafoundry/pothi/internal/compiler"
	"github.com/khalsafoundry/pothi/internal/database/corpus"
	"github.com/khalsafoundry/pothi/internal/exporters"
	"github.com/khalsafoundry/pothi/internal/http"
	"github.com/khalsafoundry/pothi/internal/scheduler"
	"github.com/khalsafoundry/pothi/internal/services"
	"github.com/khalsafoundry/pothi/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// CorpusStore implementations
var _ compiler.CorpusStore = (*corpus.Repository)(nil)

// SearchStore implementations
var _ http.SearchStore = (*corpus.Repository)(nil)

// RunStore implementations
var _ http.RunStore = (*audit.Service)(nil)

// =============================================================================
// Compilation Pipeline
// =============================================================================

// ArtifactSink implementations
var _ compiler.ArtifactSink = (*exporters.JSONExporter)(nil)

// RunRecorder implementations
var _ services.RunRecorder = (*audit.Service)(nil)

// =============================================================================
// Background Work
// =============================================================================

// CompileRunner implementations
var _ tasks.CompileRunner = (*services.CompileService)(nil)
var _ scheduler.CompileRunner = (*services.CompileService)(nil)

// RunHistoryPruner implementations
var _ tasks.RunHistoryPruner = (*audit.Service)(nil)

// ScheduleInfo implementations
var _ http.ScheduleInfo = (*scheduler.CompileScheduler)(nil)
