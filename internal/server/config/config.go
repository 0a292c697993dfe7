// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"os"
)

// Store kinds selectable via USER_STORE
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config holds runtime settings for the Kuhaku server.
type Config struct {
	Port         string // PORT, listen port
	JWTSecret    string // JWT_SECRET, signing secret (required)
	CORSOrigin   string // CORS_ORIGIN, allowed browser origin (required)
	UserStore    string // USER_STORE, "json" or "sqlite"
	UsersFile    string // USERS_FILE, dataset path for the json store
	DatabasePath string // DATABASE_PATH, database file for the sqlite store
	LogLevel     string // LOG_LEVEL, debug|info|warn|error
}

// Load reads configuration from environment variables.
// JWT_SECRET and CORS_ORIGIN have no usable defaults: without the secret
// tokens cannot be issued or validated, and without the origin a browser
// frontend cannot reach the API.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "3333"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		CORSOrigin:   os.Getenv("CORS_ORIGIN"),
		UserStore:    getEnv("USER_STORE", StoreJSON),
		UsersFile:    getEnv("USERS_FILE", "mocks/users.json"),
		DatabasePath: getEnv("DATABASE_PATH", "kuhaku.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.CORSOrigin == "" {
		return nil, fmt.Errorf("CORS_ORIGIN is required")
	}

	if cfg.UserStore != StoreJSON && cfg.UserStore != StoreSQLite {
		return nil, fmt.Errorf("USER_STORE must be %q or %q, got %q", StoreJSON, StoreSQLite, cfg.UserStore)
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

// getEnv reads a variable with a fallback default
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
