package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/logger"
)

// setupAppLogger configures and initializes the application logger based on config settings.
// Returns the configured logger or an error if setup fails.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"bind_address", cfg.Server.BindAddress(),
		"debug", cfg.Server.Debug,
		"log_level", cfg.Server.LogLevel)
	l.Debug("Full configuration", "config", cfg.String())

	return l, nil
}
