// Package config loads service configuration from environment variables.
// Each component has a typed Config struct with documented defaults; invalid
// values fall back to the default with a warning log rather than aborting,
// so a misconfigured instance stays diagnosable at runtime.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// ServerConfig holds the HTTP server settings for cmd/api.
type ServerConfig struct {
	// Port the API listens on. Loaded from PORT. Default: 8080.
	Port int

	// ReadTimeout bounds how long reading a request may take. Default: 15s.
	ReadTimeout time.Duration

	// WriteTimeout bounds how long writing a response may take. Upstream
	// LLM calls can be slow, so this stays generous. Default: 90s.
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown. Default: 10s.
	ShutdownTimeout time.Duration
}

// LoadServerConfig loads the HTTP server configuration from the environment.
func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port:            envInt("PORT", 8080),
		ReadTimeout:     envDuration("SERVER_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    envDuration("SERVER_WRITE_TIMEOUT", 90*time.Second),
		ShutdownTimeout: envDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// envStr returns the environment value for key, or def when unset or empty.
func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt returns the integer environment value for key. Non-numeric values
// fall back to def with a warning.
func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default",
			slog.String("key", key),
			slog.String("value", v),
			slog.Int("default", def))
		return def
	}
	return parsed
}

// envDuration returns the duration environment value for key (Go duration
// syntax, e.g. "30s"). Unparseable values fall back to def with a warning.
func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration in environment, using default",
			slog.String("key", key),
			slog.String("value", v),
			slog.Duration("default", def))
		return def
	}
	return parsed
}

// envFloat returns the float environment value for key. Unparseable values
// fall back to def with a warning.
func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid float in environment, using default",
			slog.String("key", key),
			slog.String("value", v),
			slog.Float64("default", def))
		return def
	}
	return parsed
}
