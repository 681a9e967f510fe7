// Package cli is the asmtool command tree.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"asmkit/internal/appshell"
	"asmkit/internal/writers"
)

var version = "0.1.0-dev"

// Exit codes.
const (
	ExitOK      = 0
	ExitUsage   = 2
	ExitRuntime = 3
)

// usageError marks bad invocations (exit 2) as opposed to failures while
// running (exit 3).
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, a ...any) error { return usageError{fmt.Errorf(format, a...)} }

func args(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if err := v(cmd, a); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// NewRootCommand builds the command tree writing to stdout/stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	root, _ := newRoot(stdout, stderr)
	return root
}

func newRoot(stdout, stderr io.Writer) (*cobra.Command, *Options) {
	o := &Options{}
	root := &cobra.Command{
		Use:   "asmtool",
		Short: "Read Celera Assembler .asm files",
		Long: `asmtool streams Celera Assembler ASM output files.

It summarizes and validates them, lists contig and unitig ids, and rebuilds
individual contigs or unitigs (consensus plus every placed read, trimmed,
oriented and gapped) from the ASM file and the FASTA of the raw reads.
Random access goes through a bookmark index kept in an SQLite sidecar.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.resolve(cmd); err != nil {
				return usageError{err}
			}
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })
	bindGlobal(root, o)

	root.AddCommand(
		newStatsCommand(o),
		newValidateCommand(o),
		newIDsCommand(o),
		newIndexCommand(o),
		newGetCommand(o),
		newDumpCommand(o),
	)
	return root, o
}

// Run executes argv and returns the process exit code.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	root := NewRootCommand(outw, stderr)
	root.SetArgs(argv)

	err := root.ExecuteContext(ctx)
	if ferr := outw.Flush(); err == nil && ferr != nil && !writers.IsBrokenPipe(ferr) {
		err = ferr
	}
	return exitCode(ctx, err, stderr)
}

func exitCode(ctx context.Context, err error, stderr io.Writer) int {
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled) || ctx.Err() != nil:
		return appshell.ExitCanceled
	}
	_, _ = fmt.Fprintf(stderr, "asmtool: %v\n", err)
	var ue usageError
	if errors.As(err, &ue) || strings.HasPrefix(err.Error(), "unknown command") {
		_, _ = fmt.Fprintln(stderr, "Run 'asmtool --help' for usage.")
		return ExitUsage
	}
	return ExitRuntime
}
