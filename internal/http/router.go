package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Create controllers with appropriate interfaces
	health := NewHealthController(cfg.Database, cfg.Version)
	searchController := NewSearchController(cfg.SearchStore)
	compileController := NewCompileController(cfg.TaskClient, cfg.Scheduler)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Search endpoints
	if cfg.SearchStore != nil {
		router.GET("/api/search/text", searchController.SearchText)
		router.GET("/api/search/first-letters", searchController.SearchFirstLetters)
	}

	// Compile endpoints
	router.POST("/api/compile", compileController.Trigger)
	router.GET("/api/compile/tasks/:id", compileController.TaskStatus)
	router.GET("/api/compile/schedule", compileController.Schedule)

	// Run history endpoints
	if cfg.RunStore != nil {
		runsController := NewRunsController(cfg.RunStore)
		router.GET("/api/runs", runsController.ListRuns)
		router.GET("/api/runs/:id", runsController.GetRun)
	}

	return router
}
