// Command aoc20 runs the Advent of Code 2020 solvers.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/phlip9/aoc20/internal/cli"
	"github.com/phlip9/aoc20/internal/days"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	opts := &cli.RootOptions{Registry: days.Registry()}
	err := cli.NewRootCommandWithOptions(opts).ExecuteContext(ctx)
	stop()
	if closeErr := opts.CloseLog(); closeErr != nil {
		fmt.Fprintln(os.Stderr, "Error: close log file:", closeErr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
