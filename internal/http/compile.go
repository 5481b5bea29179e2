package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khalsafoundry/pothi/internal/tasks"
)

// ScheduleInfo reports the state of the periodic compile schedule.
type ScheduleInfo interface {
	IsRunning() bool
	GetNextRunTime() *time.Time
}

// CompileController triggers compile runs through the task queue and reports
// on their progress.
type CompileController struct {
	client    *tasks.Client
	scheduler ScheduleInfo
}

func NewCompileController(client *tasks.Client, scheduler ScheduleInfo) *CompileController {
	return &CompileController{
		client:    client,
		scheduler: scheduler,
	}
}

// Trigger handles POST /api/compile
// Enqueues a compile task and returns its ID for status polling.
func (cc *CompileController) Trigger(c *gin.Context) {
	if cc.client == nil {
		c.IndentedJSON(http.StatusServiceUnavailable, gin.H{"error": "task queue is not enabled"})
		return
	}

	ids, err := cc.client.Add(tasks.CompileTask{Trigger: "api"}).Save()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.IndentedJSON(http.StatusAccepted, gin.H{
		"task_id": ids[0],
		"message": "compile enqueued",
	})
}

// TaskStatus handles GET /api/compile/tasks/:id
// Returns the queue status of a previously enqueued compile.
func (cc *CompileController) TaskStatus(c *gin.Context) {
	if cc.client == nil {
		c.IndentedJSON(http.StatusServiceUnavailable, gin.H{"error": "task queue is not enabled"})
		return
	}

	taskID := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := cc.client.Status(ctx, taskID)
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": status,
	})
}

// Schedule handles GET /api/compile/schedule
// Reports whether periodic compiles are active and when the next one runs.
func (cc *CompileController) Schedule(c *gin.Context) {
	response := gin.H{"enabled": false}

	if cc.scheduler != nil && cc.scheduler.IsRunning() {
		response["enabled"] = true
		if next := cc.scheduler.GetNextRunTime(); next != nil {
			response["next_run"] = next.Format(time.RFC3339)
		}
	}

	c.IndentedJSON(http.StatusOK, response)
}
