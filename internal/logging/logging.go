package logging

import (
	"io"
	"log/slog"
	"os"
)

var (
	// Logger is the process-wide structured logger. Diagnostics go to
	// stderr; stdout is reserved for command output such as key tables
	// and export scripts.
	Logger *slog.Logger

	// Verbose mirrors the root --verbose flag.
	Verbose bool
)

func init() {
	Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Setup rebuilds the logger from the root command flags. Verbose lowers
// the level to debug, jsonOutput swaps in a JSON handler, and a nil
// writer means stderr.
func Setup(verbose, jsonOutput bool, w io.Writer) {
	Verbose = verbose

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if w == nil {
		w = os.Stderr
	}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	}
	Logger = slog.New(handler)
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs at info level.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs at warn level.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// With returns a child logger carrying extra attributes.
func With(args ...any) *slog.Logger {
	return Logger.With(args...)
}
