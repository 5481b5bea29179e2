package audit

import (
	"time"

	"gorm.io/gorm"

	"github.com/khalsafoundry/pothi/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// RecordRun saves one compile run to the history.
func (r *Repository) RecordRun(run *entities.CompileRun) error {
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}
	return r.db.Create(run).Error
}

// RecentRuns retrieves compile runs, most recent first.
func (r *Repository) RecentRuns(limit int) ([]entities.CompileRun, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []entities.CompileRun
	err := r.db.Order("started_at DESC, id DESC").Limit(limit).Find(&runs).Error
	return runs, err
}

// RunByID retrieves a single compile run by its run identifier.
func (r *Repository) RunByID(runID string) (*entities.CompileRun, error) {
	var run entities.CompileRun
	err := r.db.Where("run_id = ?", runID).First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// DeleteOldRuns removes run rows older than the specified time. Returns the
// number of deleted rows.
func (r *Repository) DeleteOldRuns(olderThan time.Time) (int64, error) {
	result := r.db.Where("started_at < ?", olderThan).Delete(&entities.CompileRun{})
	return result.RowsAffected, result.Error
}
