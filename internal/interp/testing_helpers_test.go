package interp

import (
	"bytes"
	"testing"

	"github.com/lucent-lang/lucent/internal/host"
)

// newTestInterpreter returns a fresh Interpreter writing program output to
// the returned buffer, for tests that don't need canned input.
func newTestInterpreter() (*Interpreter, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(host.New(&buf)), &buf
}

// expectAborted runs fn and fails the test unless it panics with an
// *host.Aborted of the given kind — the shape every Name/Type/Fault error
// takes once it reaches the host façade.
func expectAborted(t *testing.T, kind host.ErrorKind, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		aborted, ok := r.(*host.Aborted)
		if !ok {
			t.Fatalf("expected *host.Aborted, got %T: %v", r, r)
		}
		if aborted.Kind != kind {
			t.Errorf("Aborted.Kind = %s, want %s (%s)", aborted.Kind, kind, aborted.Msg)
		}
	}()
	fn()
}
