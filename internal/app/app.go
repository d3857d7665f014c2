package app

import (
	"ping-router/internal/common/logging"
	"ping-router/internal/config"
	"ping-router/internal/delivery"
	"ping-router/internal/directory"
	"ping-router/internal/routing"
	"ping-router/internal/storage"
)

// App holds all the application dependencies.
type App struct {
	Config    *config.Config
	Directory *directory.Directory
	Rules     *routing.Store
	Store     storage.MessageStore
	Simulator *delivery.Simulator
	Logger    logging.Logger
}

// New creates a new application instance with all dependencies wired.
// The user directory is seeded here and the rule store starts with the
// built-in defaults.
func New(cfg *config.Config) *App {
	logger := logging.GetGlobalLogger().WithFields(logging.Field{Key: "component", Value: "app"})

	dir := directory.NewSeeded()

	return &App{
		Config:    cfg,
		Directory: dir,
		Rules:     routing.NewStore(),
		Store:     storage.NewMemoryStore(),
		Simulator: delivery.NewSimulator(dir, logging.GetGlobalLogger()),
		Logger:    logger,
	}
}
