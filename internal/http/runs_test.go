package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/khalsafoundry/pothi/internal/entities"
)

type stubRunStore struct {
	runs []entities.CompileRun
	err  error

	limit int
}

func (s *stubRunStore) RecentRuns(limit int) ([]entities.CompileRun, error) {
	s.limit = limit
	if s.err != nil {
		return nil, s.err
	}
	return s.runs, nil
}

func (s *stubRunStore) RunByID(runID string) (*entities.CompileRun, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.runs {
		if s.runs[i].RunID == runID {
			return &s.runs[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func setupRunsRouter(store *stubRunStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewRunsController(store)

	router := gin.New()
	router.GET("/api/runs", controller.ListRuns)
	router.GET("/api/runs/:id", controller.GetRun)
	return router
}

func sampleRuns() []entities.CompileRun {
	started := time.Date(2026, 2, 10, 3, 0, 0, 0, time.UTC)
	return []entities.CompileRun{
		{RunID: "run-2", Status: entities.RunStatusSuccess, Trigger: "schedule", ArtifactCount: 9, StartedAt: started.Add(24 * time.Hour)},
		{RunID: "run-1", Status: entities.RunStatusFailed, Trigger: "api", ErrorMsg: "corpus unavailable", StartedAt: started},
	}
}

func TestRunsController_ListRuns(t *testing.T) {
	store := &stubRunStore{runs: sampleRuns()}
	router := setupRunsRouter(store)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/runs", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 20, store.limit)

	var response struct {
		Runs  []entities.CompileRun `json:"runs"`
		Count int                   `json:"count"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, 2, response.Count)
	require.Len(t, response.Runs, 2)
	assert.Equal(t, "run-2", response.Runs[0].RunID)
}

func TestRunsController_ListRunsClampsLimit(t *testing.T) {
	store := &stubRunStore{}
	router := setupRunsRouter(store)

	for _, limit := range []string{"0", "-1", "9999", "nope"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/runs?limit="+limit, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 20, store.limit, "limit %q should fall back to the default", limit)
	}
}

func TestRunsController_GetRun(t *testing.T) {
	store := &stubRunStore{runs: sampleRuns()}
	router := setupRunsRouter(store)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/runs/run-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var run entities.CompileRun
	err := json.Unmarshal(w.Body.Bytes(), &run)
	require.NoError(t, err)
	assert.Equal(t, "run-1", run.RunID)
	assert.Equal(t, entities.RunStatusFailed, run.Status)
	assert.Equal(t, "corpus unavailable", run.ErrorMsg)
}

func TestRunsController_GetRunNotFound(t *testing.T) {
	store := &stubRunStore{runs: sampleRuns()}
	router := setupRunsRouter(store)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/runs/run-404", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRunsController_StoreFailure(t *testing.T) {
	store := &stubRunStore{err: errors.New("history unavailable")}
	router := setupRunsRouter(store)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/runs", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
