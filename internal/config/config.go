// Package config provides configuration management for the ping router service.
// It handles loading configuration from environment variables with sensible
// defaults and validates the configuration before the service starts.
//
// Environment Variables:
//
//   - PORT: Server port (default: 8000)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - LOG_FILE: Optional log file path; stdout when unset
//   - CORS_ALLOWED_ORIGINS: Comma-separated list of allowed CORS origins
//     (default: "*")
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the ping router service.
// All fields correspond to environment variables that can be set to
// override the default values.
type Config struct {
	Port               string   // Server port number
	LogLevel           string   // Logging level (debug, info, warn, error)
	LogFile            string   // Optional log file path
	CORSAllowedOrigins []string // Allowed origins for CORS requests
}

// Load creates a new Config instance with values loaded from environment
// variables. If an environment variable is not set, the corresponding
// default value is used.
//
// This function does not validate the configuration - call Validate() on the
// returned Config to ensure all values are properly set and valid.
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8000"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFile:            getEnv("LOG_FILE", ""),
		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

// Validate checks that all configuration values are usable.
// The application should call this after loading configuration and before
// starting the server.
func (c *Config) Validate() error {
	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a valid port number between 1 and 65535")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
		// Valid log levels
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}

	if len(c.CORSAllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS must not be empty")
	}

	return nil
}

// getEnv retrieves an environment variable value or returns a default value
// if not set.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitAndTrim splits a comma-separated value into trimmed entries,
// dropping empty ones.
func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
