// Package appshell wires a command's RunContext to the process: signals,
// arguments and the exit code.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ExitCanceled is reported for a run stopped by SIGINT or SIGTERM.
const ExitCanceled = 130

// RunFunc is the shape of app.RunContext.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run under a context canceled by SIGINT or SIGTERM and exits with
// its code.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Exec(ctx, os.Args[1:], os.Stdout, os.Stderr, run)
	stop()
	os.Exit(code)
}

// Exec runs one invocation. No arguments shows help, and an interrupted run
// never reports success.
func Exec(ctx context.Context, argv []string, stdout, stderr io.Writer, run RunFunc) int {
	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = ExitCanceled
	}
	return code
}
