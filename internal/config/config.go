// Package config loads runtime configuration from the environment.
package config

import (
	"os"
	"strconv"
)

// Default configuration values
const (
	DefaultPort      = 3000
	DefaultUploadDir = "uploads"
)

// Config holds everything the server needs from the environment.
type Config struct {
	// Env is the application environment ("development" or "production").
	Env string
	// Port is the HTTP listen port.
	Port int
	// UploadDir is the directory uploaded images are stored in.
	UploadDir string

	// Database connection settings.
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	SSLEnabled bool

	// Admin bootstrap credentials, used by the seed CLI.
	AdminEmail    string
	AdminPassword string
}

// GetEnv retrieves the value of an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvInt retrieves an integer environment variable with a fallback value
func GetEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

// Load builds a Config from the environment.
func Load() Config {
	return Config{
		Env:           GetEnv("APP_ENV", "development"),
		Port:          GetEnvInt("PORT", DefaultPort),
		UploadDir:     GetEnv("UPLOAD_DIR", DefaultUploadDir),
		DBHost:        GetEnv("DB_HOST", "localhost"),
		DBPort:        GetEnvInt("DB_PORT", 5432),
		DBUser:        GetEnv("DB_USER", "postgres"),
		DBPassword:    GetEnv("DB_PASSWORD", "postgres"),
		DBName:        GetEnv("DB_NAME", "lapirenov"),
		SSLEnabled:    GetEnv("DB_SSL_MODE", "disable") != "disable",
		AdminEmail:    GetEnv("ADMIN_EMAIL", ""),
		AdminPassword: GetEnv("ADMIN_PASSWORD", ""),
	}
}

// IsProduction reports whether the app runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
