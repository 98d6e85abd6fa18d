// Command lucent runs Lucent source programs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucent-lang/lucent/internal/ast"
	"github.com/lucent-lang/lucent/internal/host"
	"github.com/lucent-lang/lucent/internal/interp"
)

// ParseSource is the seam an embedder wires a real parser into. The parser
// is an external collaborator: this binary ships only the
// evaluator, so the default simply reports that no parser is configured.
var ParseSource = func(src string) (*ast.Program, error) {
	return nil, fmt.Errorf("no parser configured for this build of lucent")
}

func parseSource(src string) (*ast.Program, error) {
	return ParseSource(src)
}

var (
	flagInput string
	flagQuiet bool
	flagTrace bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lucent",
		Short: "Run Lucent source programs",
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file.lc>",
		Short: "Parse and interpret a Lucent source file",
		Args:  cobra.ExactArgs(1),
		RunE:  runFile,
	}
	cmd.Flags().StringVar(&flagInput, "input", "", "file to read canned input lines from (default: stdin)")
	cmd.Flags().BoolVar(&flagQuiet, "quiet", false, "suppress program output")
	cmd.Flags().BoolVar(&flagTrace, "trace", false, "log each statement and call to stderr")
	return cmd
}

func runFile(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	prog, err := parseSource(string(src))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	hostOpts := []host.Option{host.WithConsoleOutput(!flagQuiet)}
	in := os.Stdin
	if flagInput != "" {
		f, err := os.Open(flagInput)
		if err != nil {
			return fmt.Errorf("opening %s: %w", flagInput, err)
		}
		defer f.Close()
		in = f
	}
	hostOpts = append(hostOpts, host.WithInput(in))
	h := host.New(os.Stdout, hostOpts...)

	var interpOpts []interp.Option
	if flagTrace {
		interpOpts = append(interpOpts, interp.WithTrace(true, os.Stderr))
	}
	ip := interp.New(h, interpOpts...)

	return ip.Run(prog)
}
