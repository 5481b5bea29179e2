// Package corpus provides the typed read queries feeding compilation and
// search. Every query declares its joins and orderings statically: lines
// arrive ordered by order_id within their source, shabads by their sequence
// number, reference rows by key. Callers depend on that contract and never
// re-sort.
package corpus

import (
	"context"

	"gorm.io/gorm"

	"github.com/khalsafoundry/pothi/internal/entities"
	"github.com/khalsafoundry/pothi/internal/search"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Writers returns all writers ordered by key.
func (r *Repository) Writers(ctx context.Context) ([]entities.Writer, error) {
	var writers []entities.Writer
	err := r.db.WithContext(ctx).Order("id ASC").Find(&writers).Error
	return writers, err
}

// Languages returns all languages ordered by key.
func (r *Repository) Languages(ctx context.Context) ([]entities.Language, error) {
	var languages []entities.Language
	err := r.db.WithContext(ctx).Order("id ASC").Find(&languages).Error
	return languages, err
}

// Publications returns all publications ordered by key.
func (r *Repository) Publications(ctx context.Context) ([]entities.Publication, error) {
	var publications []entities.Publication
	err := r.db.WithContext(ctx).Order("id ASC").Find(&publications).Error
	return publications, err
}

// LineTypes returns all line types ordered by key.
func (r *Repository) LineTypes(ctx context.Context) ([]entities.LineType, error) {
	var lineTypes []entities.LineType
	err := r.db.WithContext(ctx).Order("id ASC").Find(&lineTypes).Error
	return lineTypes, err
}

// Sources returns the full source hierarchy: sections and subsections
// preloaded, every level ordered by key.
func (r *Repository) Sources(ctx context.Context) ([]entities.Source, error) {
	var sources []entities.Source
	err := r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Sections.Subsections", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Order("id ASC").
		Find(&sources).Error
	return sources, err
}

// TranslationSources returns the translation-source catalog with language
// and source resolved.
func (r *Repository) TranslationSources(ctx context.Context) ([]entities.TranslationSource, error) {
	var translationSources []entities.TranslationSource
	err := r.db.WithContext(ctx).
		Preload("Language").
		Preload("Source").
		Order("id ASC").
		Find(&translationSources).Error
	return translationSources, err
}

// Banis returns every bani with its membership rows ordered by the member
// lines' order_id, which is the range computation's input contract.
func (r *Repository) Banis(ctx context.Context) ([]entities.Bani, error) {
	var banis []entities.Bani
	err := r.db.WithContext(ctx).
		Preload("BaniLines", func(db *gorm.DB) *gorm.DB {
			return db.Select("bani_lines.*").
				Joins("JOIN lines ON lines.id = bani_lines.line_id").
				Order("lines.order_id ASC")
		}).
		Preload("BaniLines.Line").
		Order("id ASC").
		Find(&banis).Error
	return banis, err
}

// ShabadsBySource returns one source's shabads in sequence order, each with
// its lines ordered by order_id and every per-line relation preloaded.
func (r *Repository) ShabadsBySource(ctx context.Context, sourceID uint) ([]entities.Shabad, error) {
	var shabads []entities.Shabad
	err := r.db.WithContext(ctx).
		Preload("Writer").
		Preload("Section").
		Preload("Subsection").
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_id ASC")
		}).
		Preload("Lines.LineType").
		Preload("Lines.Content", func(db *gorm.DB) *gorm.DB {
			return db.Order("publication_id ASC")
		}).
		Preload("Lines.Content.Publication").
		Preload("Lines.Translations", func(db *gorm.DB) *gorm.DB {
			return db.Order("translation_source_id ASC")
		}).
		Preload("Lines.Translations.TranslationSource").
		Preload("Lines.Translations.TranslationSource.Language").
		Preload("Lines.Transliterations", func(db *gorm.DB) *gorm.DB {
			return db.Order("language ASC")
		}).
		Where("source_id = ?", sourceID).
		Order("sno ASC").
		Find(&shabads).Error
	return shabads, err
}

// SearchLines executes a search directive. Limit <= 0 means no limit.
func (r *Repository) SearchLines(ctx context.Context, directive search.Directive, limit int) ([]entities.Line, error) {
	var lines []entities.Line
	query := r.db.WithContext(ctx).Model(&entities.Line{}).Scopes(directive)
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&lines).Error
	return lines, err
}
