package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application.
// The values are loaded from environment variables.
type AppConfig struct {
	// Core settings
	DatabasePath string
	LogLevel     string

	// Notification settings
	NotificationTimeout time.Duration

	// Derived-data cache settings
	ProgressCacheTTL time.Duration
}

// Default values used when no environment is present (library consumers
// are not required to call LoadConfig).
const (
	DefaultDatabasePath        = "./moneymetrics.db"
	DefaultNotificationTimeout = 4 * time.Second
	DefaultProgressCacheTTL    = 30 * time.Second
)

// Cfg is a global instance of the AppConfig.
var Cfg *AppConfig

// LoadConfig loads configuration from environment variables or a .env file.
// It centralizes all configuration logic for the application.
func LoadConfig() {
	// Try loading from the current directory first, then the parent
	// (common when running from a subdirectory).
	errEnv := godotenv.Load()
	if errEnv != nil {
		errEnv = godotenv.Load("../.env")
	}

	if errEnv != nil {
		if os.IsNotExist(errEnv) {
			log.Println("Info: No .env file found in current or parent directory. Relying on OS environment variables.")
		} else {
			log.Printf("Warning: Error loading .env file: %v. Relying on OS environment variables.", errEnv)
		}
	} else {
		log.Println(".env file loaded successfully.")
	}

	Cfg = &AppConfig{
		DatabasePath:        getEnv("DATABASE_PATH", DefaultDatabasePath),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		NotificationTimeout: getEnvAsDuration("NOTIFICATION_TIMEOUT", DefaultNotificationTimeout),
		ProgressCacheTTL:    getEnvAsDuration("PROGRESS_CACHE_TTL", DefaultProgressCacheTTL),
	}

	log.Printf("Configuration loaded: LogLevel=%s, DBPath=%s, NotificationTimeout=%s",
		Cfg.LogLevel, Cfg.DatabasePath, Cfg.NotificationTimeout)
}

// NotificationTimeout returns the configured popup timeout, falling back
// to the default when LoadConfig was never called.
func NotificationTimeout() time.Duration {
	if Cfg == nil {
		return DefaultNotificationTimeout
	}
	return Cfg.NotificationTimeout
}

// ProgressCacheTTL returns the configured progress cache TTL, falling
// back to the default when LoadConfig was never called.
func ProgressCacheTTL() time.Duration {
	if Cfg == nil {
		return DefaultProgressCacheTTL
	}
	return Cfg.ProgressCacheTTL
}

// getEnv retrieves an environment variable or returns a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvAsDuration retrieves an environment variable as a time.Duration or returns a fallback.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	if seconds, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(seconds) * time.Second
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback)
	return fallback
}
