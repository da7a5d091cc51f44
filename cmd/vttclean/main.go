package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"vttclean/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one CLI invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmdCtx := newCommandContext()
	cmd := newRootCommand(cmdCtx)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	runCtx := logging.WithCorrelationID(ctx, uuid.NewString())
	if err := cmd.ExecuteContext(runCtx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, renderErrorLine(err.Error(), cmdCtx.colorize(stderr)))
		}
		return 1
	}
	return 0
}
