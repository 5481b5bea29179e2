package exporters

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
	"github.com/zeebo/blake3"

	"github.com/khalsafoundry/pothi/internal/compiler"
	"github.com/khalsafoundry/pothi/internal/logging"
)

// ManifestFileName is the checksum index written next to the artifacts.
const ManifestFileName = "manifest.json"

// Manifest indexes every artifact of a finalized run. The checksum entries
// are derived purely from artifact bytes, so two runs over the same dataset
// produce identical entry lists even though their run IDs differ.
type Manifest struct {
	RunID       string          `json:"run_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Artifacts   []ManifestEntry `json:"artifacts"`
}

// ManifestEntry describes one artifact file.
type ManifestEntry struct {
	Name   string `json:"name"`
	File   string `json:"file"`
	Bytes  int    `json:"bytes"`
	BLAKE3 string `json:"blake3"`
}

// JSONExporter writes each artifact as an indented JSON file under the run's
// staging directory and records its checksum. Artifact names may contain
// slashes; each segment becomes a subdirectory.
type JSONExporter struct {
	run     *Run
	entries []ManifestEntry
}

func NewJSONExporter(run *Run) *JSONExporter {
	return &JSONExporter{run: run}
}

// Save serializes the artifact and writes it atomically into staging.
func (e *JSONExporter) Save(name string, artifact any) error {
	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing artifact %s: %w", name, err)
	}
	data = append(data, '\n')

	file := name + ".json"
	path := filepath.Join(e.run.StagingDir, filepath.FromSlash(file))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating artifact directory for %s: %w", name, err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing artifact %s: %w", name, err)
	}

	sum := blake3.Sum256(data)
	e.entries = append(e.entries, ManifestEntry{
		Name:   name,
		File:   file,
		Bytes:  len(data),
		BLAKE3: hex.EncodeToString(sum[:]),
	})
	return nil
}

// Manifest returns the entries recorded so far.
func (e *JSONExporter) Manifest() Manifest {
	return Manifest{
		RunID:       e.run.ID.String(),
		GeneratedAt: e.run.StartedAt.UTC(),
		Artifacts:   e.entries,
	}
}

// Finalize writes the manifest into staging and swaps the staging directory
// into place. The previous output directory, if any, is moved aside first and
// restored when the swap fails, so the output directory always holds either
// the old complete run or the new one.
func (e *JSONExporter) Finalize() error {
	manifest, err := json.MarshalIndent(e.Manifest(), "", "  ")
	if err != nil {
		return fmt.Errorf("serializing manifest: %w", err)
	}
	manifest = append(manifest, '\n')
	manifestPath := filepath.Join(e.run.StagingDir, ManifestFileName)
	if err := atomic.WriteFile(manifestPath, bytes.NewReader(manifest)); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	previous := e.run.OutputDir + ".previous-" + shortID(e.run.ID)
	hadPrevious := false
	if _, err := os.Stat(e.run.OutputDir); err == nil {
		if err := os.Rename(e.run.OutputDir, previous); err != nil {
			return fmt.Errorf("moving previous output aside: %w", err)
		}
		hadPrevious = true
	}

	if err := os.Rename(e.run.StagingDir, e.run.OutputDir); err != nil {
		if hadPrevious {
			if restoreErr := os.Rename(previous, e.run.OutputDir); restoreErr != nil {
				return fmt.Errorf("swapping staging into place: %w (restore failed: %v)", err, restoreErr)
			}
		}
		return fmt.Errorf("swapping staging into place: %w", err)
	}

	if hadPrevious {
		if err := os.RemoveAll(previous); err != nil {
			return fmt.Errorf("removing previous output: %w", err)
		}
	}

	logging.Info("export finalized",
		"run_id", e.run.ID.String(),
		"artifacts", len(e.entries),
		"output_dir", e.run.OutputDir,
	)
	return nil
}

// Abort discards the staging directory. The output directory is untouched.
func (e *JSONExporter) Abort() error {
	return os.RemoveAll(e.run.StagingDir)
}

var _ compiler.ArtifactSink = (*JSONExporter)(nil)
