package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RunsController serves the compile run history.
type RunsController struct {
	store RunStore
}

func NewRunsController(store RunStore) *RunsController {
	return &RunsController{store: store}
}

// ListRuns handles GET /api/runs
// Returns recent compile runs, most recent first.
func (rc *RunsController) ListRuns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	runs, err := rc.store.RecentRuns(limit)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"runs":  runs,
		"count": len(runs),
	})
}

// GetRun handles GET /api/runs/:id
// Returns one compile run by its run identifier.
func (rc *RunsController) GetRun(c *gin.Context) {
	runID := c.Param("id")

	run, err := rc.store.RunByID(runID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.IndentedJSON(http.StatusOK, run)
}
