package turtle

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Its Enabled reports false, which Step
// checks before building the per-frame attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr is shared by every turtle, stage and L-system compile.
// A stage stepping on one goroutine may see SetLogger from another.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes the diagnostics of turtle, canvas, stage and lsystem
// to l. Records carry the turtle name (see WithName) as the "turtle"
// attribute. By default nothing is logged; nil restores that.
//
// Log levels used:
//   - [slog.LevelDebug]: per-step diagnostics (commands drained, waypoint underflow, clears)
//   - [slog.LevelInfo]: stage lifecycle (run started, run finished)
//   - [slog.LevelWarn]: a frame callback stopped a run
//
// Example:
//
//	turtle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
// Sub-packages (canvas/, stage/, lsystem/) call this to share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
