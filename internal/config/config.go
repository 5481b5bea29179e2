package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Output
		Audit
		Compile
		Tasks
		Global
		Log
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Output struct {
		Dir    string // Final artifact directory, swapped in atomically per run
		Bundle bool   // Also write a compressed tarball next to the directory
	}
	Audit struct {
		Dir           string
		RetentionDays int // Days to keep compile run rows (default: 30)
	}
	Compile struct {
		Workers         int    // Bounded pool for the per-source stage
		Schedule        string // Cron format: "0 3 * * *" = nightly at 03:00
		ScheduleEnabled bool
	}
	Tasks struct {
		Enabled           bool
		Workers           int
		MaxRetries        int
		RetryDelay        time.Duration
		TaskTimeout       time.Duration
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Log struct {
		Level  string // debug, info, warn, error
		Format string // json or text
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8199)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("output_bundle", false)
	v.SetDefault("audit_dir", "./audit")
	v.SetDefault("audit_retention_days", 30)
	v.SetDefault("compile_workers", 4)
	v.SetDefault("compile_schedule", "0 3 * * *") // Nightly at 03:00
	v.SetDefault("compile_schedule_enabled", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_max_retries", 1)
	v.SetDefault("task_retry_delay", "1m")
	v.SetDefault("task_timeout", "15m")
	v.SetDefault("task_release_after", "30m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Output: Output{
			Dir:    v.GetString("OUTPUT_DIR"),
			Bundle: v.GetBool("OUTPUT_BUNDLE"),
		},
		Audit: Audit{
			Dir:           v.GetString("AUDIT_DIR"),
			RetentionDays: v.GetInt("AUDIT_RETENTION_DAYS"),
		},
		Compile: Compile{
			Workers:         v.GetInt("COMPILE_WORKERS"),
			Schedule:        v.GetString("COMPILE_SCHEDULE"),
			ScheduleEnabled: v.GetBool("COMPILE_SCHEDULE_ENABLED"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			Workers:           v.GetInt("TASK_WORKERS"),
			MaxRetries:        v.GetInt("TASK_MAX_RETRIES"),
			RetryDelay:        v.GetDuration("TASK_RETRY_DELAY"),
			TaskTimeout:       v.GetDuration("TASK_TIMEOUT"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}
}
