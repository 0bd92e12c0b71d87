package config

import "os"

// defaultSessionSecret is only suitable for local development. Deployments
// must set MEALSMITH_SESSION_SECRET.
const defaultSessionSecret = "dev-only-insecure-session-secret"

// Config holds all process-wide settings. It is built once in main and
// passed down explicitly; nothing reads the environment after startup.
type Config struct {
	Port          string
	DBPath        string
	SessionSecret string
	LogLevel      string
}

// Load resolves configuration from the environment with fallback defaults.
func Load() Config {
	return Config{
		Port:          envOr("MEALSMITH_PORT", "8080"),
		DBPath:        envOr("MEALSMITH_DB_PATH", "mealsmith.db"),
		SessionSecret: envOr("MEALSMITH_SESSION_SECRET", defaultSessionSecret),
		LogLevel:      envOr("MEALSMITH_LOG_LEVEL", "info"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
