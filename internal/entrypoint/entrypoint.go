package entrypoint

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khalsafoundry/pothi/internal/audit"
	"github.com/khalsafoundry/pothi/internal/config"
	"github.com/khalsafoundry/pothi/internal/database"
	auditdb "github.com/khalsafoundry/pothi/internal/database/audit"
	"github.com/khalsafoundry/pothi/internal/database/corpus"
	http_controllers "github.com/khalsafoundry/pothi/internal/http"
	"github.com/khalsafoundry/pothi/internal/logging"
	"github.com/khalsafoundry/pothi/internal/scheduler"
	"github.com/khalsafoundry/pothi/internal/services"
	"github.com/khalsafoundry/pothi/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	// The compile stage swaps a staging directory into the output location,
	// so the output parent must exist and be writable before we serve.
	outputParent := filepath.Dir(filepath.Clean(cfg.Output.Dir))
	if err := os.MkdirAll(outputParent, 0755); err != nil {
		logging.Error("output directory parent is not usable", "dir", outputParent, "error", err)
		os.Exit(1)
	}
	probe := filepath.Join(outputParent, ".pothi")
	if _, err := os.Create(probe); err != nil {
		logging.Error("output directory parent is not writable", "dir", outputParent, "error", err)
		os.Exit(1)
	}
	os.Remove(probe)

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		logging.ServerStartup(cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.Info("shutting down server", "timeout", timeout.String())

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue and scheduler)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	logging.Info("server exiting")
}

func Run(cfg *config.Config, version string) {
	logging.Init(cfg.Log.Level, cfg.Log.Format)
	logging.Info("starting pothi", "version", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		logging.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error("error closing database", "error", err)
		}
	}()

	corpusRepo := corpus.NewRepository(db.DB)

	// Run auditing: history rows always, report files when a directory is set
	var auditor *audit.Auditor
	if cfg.Audit.Dir != "" {
		auditor = audit.NewAuditor(cfg.Audit.Dir)
	}
	auditService := audit.NewService(auditdb.NewRepository(db.DB), auditor)

	bundlePath := ""
	if cfg.Output.Bundle {
		bundlePath = filepath.Clean(cfg.Output.Dir) + ".tar.xz"
	}

	compileService := services.NewCompileService(corpusRepo, auditService, services.CompileConfig{
		OutputDir:  cfg.Output.Dir,
		Workers:    cfg.Compile.Workers,
		BundlePath: bundlePath,
	})

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			MaxRetries:        cfg.Tasks.MaxRetries,
			RetryDelay:        cfg.Tasks.RetryDelay,
			TaskTimeout:       cfg.Tasks.TaskTimeout,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			logging.Error("failed to initialize task queue", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				logging.Error("error closing task client", "error", err)
			}
		}()

		// Register task queues
		taskClient.Register(
			tasks.NewCompileQueue(compileService),
			tasks.NewPruneRunsQueue(auditService),
		)

		// Start task workers in background
		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)

		// Keep the run history bounded: one prune pass per boot
		if _, err := taskClient.Add(tasks.PruneRunsTask{RetentionDays: cfg.Audit.RetentionDays}).Save(); err != nil {
			logging.Error("failed to enqueue run history prune", "error", err)
		}
	}

	// Periodic compiles
	compileScheduler := scheduler.NewCompileScheduler(compileService, cfg.Compile.Schedule, cfg.Compile.ScheduleEnabled)
	if err := compileScheduler.Start(context.Background()); err != nil {
		logging.Error("failed to start compile scheduler", "error", err)
		os.Exit(1)
	}

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		SearchStore: corpusRepo,
		RunStore:    auditService,
		Database:    db,
		TaskClient:  taskClient,
		Scheduler:   compileScheduler,
		Version:     version,
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		compileScheduler.Stop()
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
