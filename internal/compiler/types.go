package compiler

import (
	"context"
	"time"

	"github.com/khalsafoundry/pothi/internal/entities"
)

// CorpusStore is the read side the compiler consumes. Implementations must
// honor the ordering contract: reference rows by key, shabads by sequence
// number, lines by order_id, bani membership by the member lines' order_id.
type CorpusStore interface {
	Writers(ctx context.Context) ([]entities.Writer, error)
	Languages(ctx context.Context) ([]entities.Language, error)
	Publications(ctx context.Context) ([]entities.Publication, error)
	LineTypes(ctx context.Context) ([]entities.LineType, error)
	Sources(ctx context.Context) ([]entities.Source, error)
	TranslationSources(ctx context.Context) ([]entities.TranslationSource, error)
	Banis(ctx context.Context) ([]entities.Bani, error)
	ShabadsBySource(ctx context.Context, sourceID uint) ([]entities.Shabad, error)
}

// ArtifactSink receives compiled trees by artifact name. Names may contain
// slashes to place artifacts in subdirectories.
type ArtifactSink interface {
	Save(name string, artifact any) error
}

// LineRange is one contiguous run of a bani's membership. Start and end are
// line identifiers, the one internal key that is part of the published
// surface: bani boundaries address lines.
type LineRange struct {
	LineGroup int  `json:"line_group"`
	StartLine uint `json:"start_line"`
	EndLine   uint `json:"end_line"`
}

// BaniArtifact is one bani with its compiled ranges, in line-group
// first-appearance order.
type BaniArtifact struct {
	NameGurmukhi string      `json:"name_gurmukhi"`
	NameEnglish  string      `json:"name_english"`
	LineGroups   []LineRange `json:"line_groups"`
}

// TranslationView is one rendered meaning of a line, with the encoded
// additional_information field decoded.
type TranslationView struct {
	Translation           string         `json:"translation"`
	AdditionalInformation map[string]any `json:"additional_information,omitempty"`
}

// LineView is a line's compiled body: grouped content, translations and
// transliterations. Content maps publication name to rendering; Translations
// map language name to translation-source name to the translation.
type LineView struct {
	ID               uint                                  `json:"id"`
	OrderID          int                                   `json:"order_id"`
	Gurmukhi         string                                `json:"gurmukhi"`
	FirstLetters     string                                `json:"first_letters"`
	PageNo           int                                   `json:"page_no"`
	Type             string                                `json:"type,omitempty"`
	Content          map[string]string                     `json:"content"`
	Translations     map[string]map[string]TranslationView `json:"translations"`
	Transliterations map[string]string                     `json:"transliterations"`
}

// ShabadView is a compiled shabad. Writer, section and subsection references
// are display names; the reference-table artifacts carry their full records.
type ShabadView struct {
	Writer     string     `json:"writer"`
	Section    string     `json:"section"`
	Subsection string     `json:"subsection,omitempty"`
	Lines      []LineView `json:"lines"`
}

// SourceRef names the source a page artifact belongs to.
type SourceRef struct {
	NameGurmukhi string `json:"name_gurmukhi"`
	NameEnglish  string `json:"name_english"`
}

// PageArtifact is one (source, page) body artifact.
type PageArtifact struct {
	Source  SourceRef    `json:"source"`
	Page    string       `json:"page"`
	Shabads []ShabadView `json:"shabads"`
}

// Report summarizes one compile run.
type Report struct {
	RunID      string             `json:"run_id"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt time.Time          `json:"finished_at"`
	DurationMS int64              `json:"duration_ms"`
	Artifacts  int                `json:"artifacts"`
	Warnings   []IntegrityWarning `json:"warnings"`
}
