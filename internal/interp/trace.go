package interp

import (
	"io"
	"log/slog"
)

// newTraceLogger wires the interpreter's trace option (WithTrace) to log/slog,
// the way the teacher's own internal/mcp/logging.go leans on stdlib slog
// for diagnostic levels rather than a third-party logger. Disabled tracing
// discards everything; there is no third-party sink involved since this is
// purely an in-process debug aid, not a production logging pipeline.
func newTraceLogger(enabled bool, w io.Writer) *slog.Logger {
	if !enabled {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// traceStmt logs one statement-executor step.
func (ip *Interpreter) traceStmt(kind string) {
	ip.log.Debug("exec", "stmt", kind)
}

// traceCall logs one call-machinery step.
func (ip *Interpreter) traceCall(name string, nargs int) {
	ip.log.Debug("call", "name", name, "args", nargs)
}
