package app

import (
	"net/http"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"ping-router/internal/handlers"
	"ping-router/internal/middleware"
)

// SetupRoutes configures all HTTP routes for the application.
func SetupRoutes(router *mux.Router, h *handlers.Handlers) {
	// Add logging middleware to all routes
	router.Use(middleware.LoggingMiddleware)

	// Service identity and liveness (no prefix)
	router.HandleFunc("/", h.Root).Methods("GET")
	router.HandleFunc("/test", h.Test).Methods("GET")
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")

	// API endpoints
	api := router.PathPrefix("/api").Subrouter()

	// User directory (read-only)
	api.HandleFunc("/users/{handle}", h.GetUser).Methods("GET")

	// Messages
	api.HandleFunc("/messages", h.ListMessages).Methods("GET")
	api.HandleFunc("/messages", h.CreateMessage).Methods("POST")
	api.HandleFunc("/messages", h.ClearMessages).Methods("DELETE")

	// Routing rules
	api.HandleFunc("/rules", h.GetRules).Methods("GET")
	api.HandleFunc("/rules", h.UpdateRules).Methods("PUT")
}

// CORSHandler wraps the router with the configured CORS policy. It wraps
// the whole router rather than registering as mux middleware so preflight
// OPTIONS requests are answered even when no route matches them.
func CORSHandler(origins []string) func(http.Handler) http.Handler {
	return gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(origins),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
}
