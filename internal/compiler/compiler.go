// Package compiler turns the relational corpus into denormalized artifact
// trees: flat reference tables, bani line ranges, the source hierarchy, the
// translation-source catalog, and one body artifact per source page. It
// consumes pre-ordered rows from a CorpusStore and hands finished trees to
// an ArtifactSink; storage and serialization stay outside.
package compiler

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/khalsafoundry/pothi/internal/entities"
	"github.com/khalsafoundry/pothi/internal/logging"
	"github.com/khalsafoundry/pothi/internal/utils"
)

type Compiler struct {
	store   CorpusStore
	sink    ArtifactSink
	workers int
}

// New creates a compiler. Workers bounds the per-source stage; values below
// one run it sequentially.
func New(store CorpusStore, sink ArtifactSink, workers int) *Compiler {
	if workers < 1 {
		workers = 1
	}
	return &Compiler{store: store, sink: sink, workers: workers}
}

type namedArtifact struct {
	name    string
	payload any
}

// Compile runs all stages in order: reference tables, bani ranges, the
// source hierarchy, the translation-source catalog, then the per-source page
// bodies. The first fatal error aborts remaining stages; the returned report
// carries whatever completed before the failure.
func (c *Compiler) Compile(ctx context.Context, runID string) (*Report, error) {
	report := &Report{
		RunID:     runID,
		StartedAt: time.Now(),
		Warnings:  []IntegrityWarning{},
	}
	finish := func() {
		report.FinishedAt = time.Now()
		report.DurationMS = report.FinishedAt.Sub(report.StartedAt).Milliseconds()
	}

	if err := c.compileReferenceTables(ctx, report); err != nil {
		finish()
		return report, err
	}
	if err := c.compileBanis(ctx, report); err != nil {
		finish()
		return report, err
	}

	sources, err := c.store.Sources(ctx)
	if err != nil {
		finish()
		return report, &RetrievalError{Stage: "sources", Err: err}
	}
	if err := c.compileSourceCatalog(ctx, report, sources); err != nil {
		finish()
		return report, err
	}
	if err := c.compileShabads(ctx, report, sources); err != nil {
		finish()
		return report, err
	}

	finish()
	logging.CompileStage(runID, "done", "artifacts", report.Artifacts, "warnings", len(report.Warnings))
	return report, nil
}

func (c *Compiler) save(report *Report, name string, artifact any) error {
	if err := c.sink.Save(name, artifact); err != nil {
		return fmt.Errorf("saving artifact %s: %w", name, err)
	}
	report.Artifacts++
	return nil
}

func (c *Compiler) compileReferenceTables(ctx context.Context, report *Report) error {
	logging.CompileStage(report.RunID, "reference_tables")

	writers, err := c.store.Writers(ctx)
	if err != nil {
		return &RetrievalError{Stage: "writers", Err: err}
	}
	if err := c.save(report, "writers", FlattenWriters(writers)); err != nil {
		return err
	}

	languages, err := c.store.Languages(ctx)
	if err != nil {
		return &RetrievalError{Stage: "languages", Err: err}
	}
	if err := c.save(report, "languages", FlattenLanguages(languages)); err != nil {
		return err
	}

	publications, err := c.store.Publications(ctx)
	if err != nil {
		return &RetrievalError{Stage: "publications", Err: err}
	}
	if err := c.save(report, "publications", FlattenPublications(publications)); err != nil {
		return err
	}

	lineTypes, err := c.store.LineTypes(ctx)
	if err != nil {
		return &RetrievalError{Stage: "line_types", Err: err}
	}
	return c.save(report, "line_types", FlattenLineTypes(lineTypes))
}

func (c *Compiler) compileBanis(ctx context.Context, report *Report) error {
	logging.CompileStage(report.RunID, "banis")

	banis, err := c.store.Banis(ctx)
	if err != nil {
		return &RetrievalError{Stage: "banis", Err: err}
	}

	artifacts := make([]BaniArtifact, 0, len(banis))
	for _, bani := range banis {
		ranges, warnings := CompileRanges(bani.NameEnglish, bani.BaniLines)
		for _, warning := range warnings {
			logging.Integrity(warning.Bani, warning.LineGroup, "missing_order_ids", warning.Missing)
		}
		report.Warnings = append(report.Warnings, warnings...)
		artifacts = append(artifacts, BaniArtifact{
			NameGurmukhi: bani.NameGurmukhi,
			NameEnglish:  bani.NameEnglish,
			LineGroups:   ranges,
		})
	}
	return c.save(report, "banis", artifacts)
}

func (c *Compiler) compileSourceCatalog(ctx context.Context, report *Report, sources []entities.Source) error {
	logging.CompileStage(report.RunID, "source_catalog")

	if err := c.save(report, "sources", FlattenSources(sources)); err != nil {
		return err
	}

	translationSources, err := c.store.TranslationSources(ctx)
	if err != nil {
		return &RetrievalError{Stage: "translation_sources", Err: err}
	}
	return c.save(report, "translation_sources", FlattenTranslationSources(translationSources))
}

// compileShabads builds the per-source page artifacts. Sources are processed
// by a bounded worker pool; each worker constructs its source's artifacts in
// isolation and deposits them in an index-addressed slot, and artifacts are
// handed to the sink in source order only after every worker finishes, so
// output order does not depend on scheduling.
func (c *Compiler) compileShabads(ctx context.Context, report *Report, sources []entities.Source) error {
	logging.CompileStage(report.RunID, "shabads", "sources", len(sources), "workers", c.workers)

	results := make([][]namedArtifact, len(sources))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(c.workers)

	for i, source := range sources {
		group.Go(func() error {
			artifacts, err := c.compileSource(groupCtx, source)
			if err != nil {
				return err
			}
			results[i] = artifacts
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for _, artifacts := range results {
		for _, artifact := range artifacts {
			if err := c.save(report, artifact.name, artifact.payload); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Compiler) compileSource(ctx context.Context, source entities.Source) ([]namedArtifact, error) {
	shabads, err := c.store.ShabadsBySource(ctx, source.ID)
	if err != nil {
		return nil, &RetrievalError{Stage: "shabads/" + source.NameEnglish, Err: err}
	}

	views := make([]ShabadView, 0, len(shabads))
	for _, shabad := range shabads {
		view, err := CompileShabad(shabad)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	slug := utils.Slug(source.NameEnglish)
	ref := SourceRef{NameGurmukhi: source.NameGurmukhi, NameEnglish: source.NameEnglish}

	pageSet := PaginateShabads(views)
	artifacts := make([]namedArtifact, 0, len(pageSet.Pages))
	for _, page := range pageSet.Pages {
		artifacts = append(artifacts, namedArtifact{
			name: slug + "/" + page.Label,
			payload: PageArtifact{
				Source:  ref,
				Page:    page.Label,
				Shabads: page.Shabads,
			},
		})
	}
	return artifacts, nil
}
