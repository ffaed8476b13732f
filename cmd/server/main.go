// Package main implements the entry point for the Todo API server,
// an HTTP service exposing CRUD operations over an in-memory task registry.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/todo-api/internal/redact"
)

// main is the entry point for the todo-api server.
// It initializes configuration and logging, wires the registry, service and
// handlers together, and serves HTTP until interrupted.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "todo-api: %s\n", redact.Error(err))
		os.Exit(1)
	}
}

// run holds the startup sequence so it can return errors instead of exiting.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	l, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, l)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
