package http

import (
	"context"

	"github.com/khalsafoundry/pothi/internal/entities"
	"github.com/khalsafoundry/pothi/internal/search"
)

// This file consolidates the store interface definitions used by HTTP
// controllers. Each controller only depends on the methods it actually uses.

// SearchStore executes ranked line queries against the corpus.
type SearchStore interface {
	SearchLines(ctx context.Context, directive search.Directive, limit int) ([]entities.Line, error)
}

// RunStore provides read access to the compile run history.
type RunStore interface {
	RecentRuns(limit int) ([]entities.CompileRun, error)
	RunByID(runID string) (*entities.CompileRun, error)
}
