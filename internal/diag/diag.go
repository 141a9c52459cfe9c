// Package diag holds the slog logger used for contract-violation diagnostics
// and tool output.
package diag

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// L is the global logger instance. It writes text records to stderr until
// Init replaces it.
var L = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Options configures the logger initialization.
type Options struct {
	Format string     // "text" (default) or "json"
	Writer io.Writer  // Destination. Default: os.Stderr
	Level  slog.Level // Minimum log level. Default: LevelInfo
}

// Init replaces L according to opts. Call from main() or package init before
// any log calls; L is not guarded against concurrent replacement.
func Init(opts Options) error {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: opts.Level}

	switch strings.ToLower(opts.Format) {
	case "", "text":
		L = slog.New(slog.NewTextHandler(w, hopts))
	case "json":
		L = slog.New(slog.NewJSONHandler(w, hopts))
	default:
		return fmt.Errorf("diag: unknown format %q", opts.Format)
	}
	return nil
}

// Discard silences all output.
func Discard() {
	L = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
