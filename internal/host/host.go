// Package host implements the I/O façade consumed by the interpreter: output, canned/interactive input, and the fatal error callback.
package host

import (
	"bufio"
	"fmt"
	"io"
)

// ErrorKind is one of the three fatal error kinds.
type ErrorKind int

const (
	NameError ErrorKind = iota
	TypeError
	FaultError
)

func (k ErrorKind) String() string {
	switch k {
	case NameError:
		return "Name"
	case TypeError:
		return "Type"
	case FaultError:
		return "Fault"
	default:
		return "Unknown"
	}
}

// Aborted is the panic value used to unwind out of a run once Error has
// been called; Run recovers it at the top level.
type Aborted struct {
	Kind ErrorKind
	Msg  string
}

func (a *Aborted) Error() string { return fmt.Sprintf("%s error: %s", a.Kind, a.Msg) }

// Facade is the host I/O surface. Construct with New.
type Facade struct {
	console bool
	out     io.Writer
	in      *bufio.Scanner
}

// Option configures a Facade.
type Option func(*Facade)

// WithConsoleOutput toggles whether Output actually writes.
func WithConsoleOutput(on bool) Option {
	return func(f *Facade) { f.console = on }
}

// WithInput supplies the input source GetInput reads from (canned input or
// os.Stdin). Without it, GetInput panics with a Fault *Aborted.
func WithInput(r io.Reader) Option {
	return func(f *Facade) { f.in = bufio.NewScanner(r) }
}

// New constructs a Facade writing to w, with console output on by default.
func New(w io.Writer, opts ...Option) *Facade {
	f := &Facade{console: true, out: w}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Output emits one line.
func (f *Facade) Output(line string) {
	if !f.console {
		return
	}
	fmt.Fprintln(f.out, line)
}

// GetInput reads one line from the configured input source.
func (f *Facade) GetInput() string {
	if f.in == nil {
		panic(&Aborted{Kind: FaultError, Msg: "no input source configured"})
	}
	if !f.in.Scan() {
		return ""
	}
	return f.in.Text()
}

// Error aborts the run: it panics with an *Aborted that Run recovers.
func (f *Facade) Error(kind ErrorKind, msg string) {
	panic(&Aborted{Kind: kind, Msg: msg})
}
