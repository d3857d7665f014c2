package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"ping-router/internal/common/logging"
	"ping-router/internal/config"
	"ping-router/internal/handlers"
	"ping-router/internal/server"
)

// Run is the main entry point for the application
func Run() error {
	// Load environment variables
	_ = godotenv.Load()

	// Initialize logging
	logging.InitGlobalLogger()
	defer logging.MustSync()

	// Load and validate configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logging.Error("Configuration validation failed", err)
		return err
	}

	logging.Info("Starting ping router",
		logging.String("port", cfg.Port),
		logging.String("version", handlers.ServiceVersion),
	)

	// Initialize application
	application := New(cfg)

	h := handlers.New(
		application.Directory,
		application.Rules,
		application.Store,
		application.Simulator,
		logging.GetGlobalLogger(),
	)

	// Set up routes
	router := mux.NewRouter()
	SetupRoutes(router, h)

	// Start server
	srv := server.New(CORSHandler(cfg.CORSAllowedOrigins)(router), cfg.Port)
	errCh := srv.Start()

	logging.Info("Server started",
		logging.String("addr", ":"+cfg.Port),
		logging.Int("users", application.Directory.Count()),
	)

	// Wait for interrupt signal or a server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logging.Error("Server failed", err)
		return err
	case <-quit:
	}

	logging.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Server forced to shutdown", err)
		return err
	}

	logging.Info("Server exited")
	return nil
}
