package http

import (
	"github.com/khalsafoundry/pothi/internal/database"
	"github.com/khalsafoundry/pothi/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces a long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	SearchStore SearchStore
	RunStore    RunStore
	Database    *database.Database

	// Task queue client (optional). Without it, triggering compiles over
	// the API is disabled; search and run history stay available.
	TaskClient *tasks.Client

	// Compile scheduler (optional), reported by the schedule endpoint.
	Scheduler ScheduleInfo

	// Application info
	Version string
}
