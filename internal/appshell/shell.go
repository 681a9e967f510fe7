package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ExitCanceled is returned when SIGINT/SIGTERM cancel a run.
const ExitCanceled = 130

func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	os.Exit(MainArgs(os.Args[1:], os.Stdout, os.Stderr, run))
}

// MainArgs runs with a signal-aware context and normalizes the exit code.
func MainArgs(argv []string, stdout, stderr io.Writer, run func(context.Context, []string, io.Writer, io.Writer) int) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = ExitCanceled
	}
	return code
}
