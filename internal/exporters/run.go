// Package exporters writes compiled artifacts to disk. Every run builds its
// full tree in a hidden staging directory next to the output directory and
// swaps it in only once every artifact landed, so readers of the output
// directory never observe a half-written run.
package exporters

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Run identifies one export run and the directories it works with. The
// staging directory is a dot-prefixed sibling of the output directory so the
// final swap is a same-filesystem rename.
type Run struct {
	ID         uuid.UUID
	StartedAt  time.Time
	StagingDir string
	OutputDir  string
}

// NewRun allocates a run ID and creates its staging directory.
func NewRun(outputDir string) (*Run, error) {
	id := uuid.New()
	outputDir = filepath.Clean(outputDir)
	staging := filepath.Join(
		filepath.Dir(outputDir),
		"."+filepath.Base(outputDir)+".staging-"+shortID(id),
	)
	if err := os.MkdirAll(staging, 0755); err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}
	return &Run{
		ID:         id,
		StartedAt:  time.Now(),
		StagingDir: staging,
		OutputDir:  outputDir,
	}, nil
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
