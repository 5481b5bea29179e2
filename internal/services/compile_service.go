// Package services coordinates full compile runs: staging, compilation,
// finalization, bundling and audit recording.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/khalsafoundry/pothi/internal/compiler"
	"github.com/khalsafoundry/pothi/internal/exporters"
	"github.com/khalsafoundry/pothi/internal/logging"
)

// CompileConfig holds the per-deployment settings of a compile run.
type CompileConfig struct {
	// OutputDir is where the finalized artifact tree lives.
	OutputDir string

	// Workers bounds the per-source compilation stage.
	Workers int

	// BundlePath, when set, packs the finalized tree into a tar.xz archive.
	BundlePath string
}

// CompileService executes compile runs end to end. Runs serialize so the
// output swap never races a concurrent run's swap. The output directory is
// replaced only when every artifact compiled and landed in staging; any
// failure discards staging and leaves the previous output in place.
type CompileService struct {
	store    compiler.CorpusStore
	recorder RunRecorder
	cfg      CompileConfig

	mu sync.Mutex
}

// NewCompileService creates a compile service. recorder may be nil.
func NewCompileService(store compiler.CorpusStore, recorder RunRecorder, cfg CompileConfig) *CompileService {
	return &CompileService{
		store:    store,
		recorder: recorder,
		cfg:      cfg,
	}
}

// Run executes one compile run. trigger names what started it and ends up in
// the run history ("cli", "api", "schedule").
func (s *CompileService) Run(ctx context.Context, trigger string) (*compiler.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, err := exporters.NewRun(s.cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to start run: %w", err)
	}
	exporter := exporters.NewJSONExporter(run)
	logging.CompileStage(run.ID.String(), "start", "trigger", trigger, "output_dir", s.cfg.OutputDir)

	report, err := compiler.New(s.store, exporter, s.cfg.Workers).Compile(ctx, run.ID.String())
	if err != nil {
		s.discard(exporter, run)
		s.record(report, trigger, err)
		return report, err
	}

	if err := exporter.Finalize(); err != nil {
		s.discard(exporter, run)
		s.record(report, trigger, err)
		return report, fmt.Errorf("failed to finalize run: %w", err)
	}

	if s.cfg.BundlePath != "" {
		if err := exporters.WriteBundle(s.cfg.OutputDir, s.cfg.BundlePath); err != nil {
			// The artifact tree is already live; only the bundle is missing.
			s.record(report, trigger, err)
			return report, fmt.Errorf("failed to write bundle: %w", err)
		}
	}

	s.record(report, trigger, nil)
	return report, nil
}

func (s *CompileService) discard(exporter *exporters.JSONExporter, run *exporters.Run) {
	if err := exporter.Abort(); err != nil {
		logging.Error("failed to discard staging directory",
			"run_id", run.ID.String(),
			"staging_dir", run.StagingDir,
			"error", err,
		)
	}
}

func (s *CompileService) record(report *compiler.Report, trigger string, runErr error) {
	if s.recorder == nil || report == nil {
		return
	}
	s.recorder.RecordCompletion(report, trigger, runErr)
}
