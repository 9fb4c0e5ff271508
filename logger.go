// SPDX-License-Identifier: Unlicense OR MIT

package boxkit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by boxkit and its sub-packages.
// Passing nil restores the default silent logger.
//
// Levels used:
//   - [slog.LevelDebug]: dispatch and placement decisions
//   - [slog.LevelWarn]: recovered panics in loop callbacks and done callbacks
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages call it on every use so a
// later SetLogger takes effect immediately.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
