package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/events"
	"github.com/phrazzld/todo-api/internal/platform/memory"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	todoStore store.TodoStore

	// Service interfaces
	todoService service.TodoService

	// Event system
	eventEmitter *events.InMemoryEventEmitter
}

// newApplication creates a new application instance with all dependencies initialized.
// The registry is constructed exactly once here and shared by every handler.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	// Initialize stores
	app.todoStore = memory.NewMemoryTodoStore(logger)

	// Initialize event emitter with the audit trail
	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewAuditLogHandler(logger))

	// Initialize todo service
	var err error
	app.todoService, err = service.NewTodoService(app.todoStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo service: %w", err)
	}

	logger.Info("Application initialized successfully",
		"event_handlers", app.eventEmitter.HandlerCount())
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	count, err := app.todoStore.Count(context.Background())
	if err != nil {
		app.logger.Error("Error counting todos at shutdown", "error", err)
	}

	app.logger.Info("Application shutdown completed", "todos_discarded", count)
}
