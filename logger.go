// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package imrender

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/imrender/internal/gpu"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for imrender and its internal packages.
// By default, imrender produces no log output.
//
// Pass nil to restore the silent default.
//
// Log levels used by imrender:
//   - [slog.LevelDebug]: per-frame diagnostics (draw calls, buffer sizes)
//   - [slog.LevelInfo]: lifecycle events (pipeline created, font texture loaded)
//   - [slog.LevelWarn]: geometry dropped because it exceeded buffer capacity
//
// Example:
//
//	imrender.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gpu.SetLogger(l)
}

// Logger returns the current logger used by imrender.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// slogger is the package-internal shorthand for Logger.
func slogger() *slog.Logger { return loggerPtr.Load() }
