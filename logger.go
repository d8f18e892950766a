package mipmap

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards all records. Enabled reports
// false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the package logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by the mipmap package and its
// backends. By default nothing is logged. Pass nil to restore the silent
// default. SetLogger is safe for concurrent use.
//
// Log levels used:
//   - [slog.LevelDebug]: per-level computation and uploads, probe results
//   - [slog.LevelInfo]: pyramid summaries
//   - [slog.LevelWarn]: closest-fit fallbacks, backend format conversions
//
// Example:
//
//	mipmap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger. Backends call it to share the
// configuration without an import cycle.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
