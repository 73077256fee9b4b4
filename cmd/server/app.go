package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasklist-api/internal/config"
	"github.com/phrazzld/tasklist-api/internal/platform/memory"
	"github.com/phrazzld/tasklist-api/internal/service"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskStore   *memory.TaskStore
	taskService service.TaskService
}

// newApplication creates a new application instance with all dependencies initialized.
// The task store is created once here and lives until the process exits.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	app.taskStore = memory.NewTaskStore(logger)
	if err := seedStore(app.taskStore, cfg.Store, logger); err != nil {
		return nil, err
	}

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// seedStore loads the configured seed dataset into s.
func seedStore(s *memory.TaskStore, cfg config.StoreConfig, logger *slog.Logger) error {
	if !cfg.SeedEnabled {
		logger.Info("task store seeding disabled")
		return nil
	}

	var (
		seed *memory.SeedData
		err  error
	)
	source := "embedded"
	if cfg.SeedFile != "" {
		source = "file"
		seed, err = memory.LoadSeedFile(cfg.SeedFile)
	} else {
		seed, err = memory.DefaultSeed()
	}
	if err != nil {
		return fmt.Errorf("failed to load %s seed data: %w", source, err)
	}

	memory.Seed(s, seed)
	logger.Info("task store seeded",
		slog.String("source", source),
		slog.Int("users", len(seed.Users)))
	return nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
