package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/ghgcalc/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	// Setup context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(version).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "[ghgcalc] Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
