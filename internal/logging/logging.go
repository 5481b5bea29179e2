// Package logging provides structured logging using Go's slog package.
package logging

import (
	"log/slog"
	"os"
	"time"
)

var defaultLogger *slog.Logger

func init() {
	Init("info", "json")
}

// Init installs the global logger. Level is one of debug, info, warn,
// error; format is json or text. Unknown values fall back to info/json.
func Init(level, format string) {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// GetLogger returns the global logger instance.
func GetLogger() *slog.Logger {
	return defaultLogger
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// CompileStage logs progress of one compile stage.
func CompileStage(runID, stage string, args ...any) {
	allArgs := []any{
		"run_id", runID,
		"stage", stage,
	}
	allArgs = append(allArgs, args...)
	defaultLogger.Info("compile_stage", allArgs...)
}

// Integrity logs a non-fatal corpus integrity finding.
func Integrity(bani string, lineGroup int, args ...any) {
	allArgs := []any{
		"bani", bani,
		"line_group", lineGroup,
	}
	allArgs = append(allArgs, args...)
	defaultLogger.Warn("integrity_warning", allArgs...)
}

// ServerStartup logs listen address information.
func ServerStartup(host string, port int32, args ...any) {
	allArgs := []any{
		"host", host,
		"port", port,
	}
	allArgs = append(allArgs, args...)
	defaultLogger.Info("server_startup", allArgs...)
}
