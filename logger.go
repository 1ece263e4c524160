package kbridge

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record; Enabled is false at all levels so callers
// skip formatting.
func silent() *slog.Logger { return slog.New(slog.DiscardHandler) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(silent())
}

// SetLogger configures the logger for kbridge.
// By default, kbridge produces no log output. Call SetLogger to enable logging.
//
// Pass nil to restore the default silent behavior.
//
// Log levels used by kbridge:
//   - [slog.LevelDebug]: conversions, glyph buffer sizes, file paths and formats
//   - [slog.LevelWarn]: rejected layouts and codec fallbacks
//
// Example:
//
//	kbridge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by kbridge.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
