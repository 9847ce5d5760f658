// Package main is the entry point for the safe-rsync CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aandersen/safe-rsync/internal/app"
	"github.com/aandersen/safe-rsync/internal/cli"
	"github.com/aandersen/safe-rsync/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(exitCode(err))
	}
}

func run() error {
	// An interrupt cancels the context, which kills a running rsync child
	// before the wrapper exits.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := app.New()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.ExecuteContext(ctx)
}

// exitCode maps an error to the process exit status. rsync's own nonzero
// codes are propagated verbatim; every other failure exits 1.
func exitCode(err error) int {
	var execErr *domain.ExecError
	if errors.As(err, &execErr) {
		return execErr.Code
	}
	return 1
}
