package interp

import (
	"golang.org/x/xerrors"

	"github.com/lucent-lang/lucent/internal/host"
	"github.com/lucent-lang/lucent/internal/value"
)

// raise formats a diagnostic with xerrors (capturing a stack frame the way
// the teacher's internal/lsp packages do for every wrapped error) and hands
// it to the host façade, which aborts the run.
func (ip *Interpreter) raise(kind host.ErrorKind, format string, args ...any) {
	err := xerrors.Errorf(format, args...)
	ip.host.Error(kind, err.Error())
}

// The *Errorf helpers below return value.Value so they can be used as the
// tail expression of a function that must statically return one
// (`return ip.typeErrorf(...)`); Error always panics inside raise, so the
// zero Value returned here is never actually observed by a caller.

func (ip *Interpreter) nameErrorf(format string, args ...any) value.Value {
	ip.raise(host.NameError, format, args...)
	return value.Value{}
}

func (ip *Interpreter) typeErrorf(format string, args ...any) value.Value {
	ip.raise(host.TypeError, format, args...)
	return value.Value{}
}

func (ip *Interpreter) faultErrorf(format string, args ...any) value.Value {
	ip.raise(host.FaultError, format, args...)
	return value.Value{}
}
