package config

import (
	"fmt"
	"os"
	"strconv"
)

// RestConfig bundles everything the REST entry point needs.
type RestConfig struct {
	Logger   LoggerSettings
	Database DatabaseSettings
	Port     int
}

const defaultRestPort = 8080

// InitializeRestConfig reads the REST service configuration from environment
// variables, falling back to console logging and an in-memory SQLite audit
// store so the service runs with no configuration at all.
func InitializeRestConfig() (*RestConfig, error) {
	cfg := &RestConfig{
		Logger: LoggerSettings{
			LogLevel: envOr("LOG_LEVEL", LogLevelInfo),
			LogType:  envOr("LOG_TYPE", LogTypeConsole),
			FilePath: os.Getenv("LOG_FILE_PATH"),
		},
		Database: DatabaseSettings{
			Type: envOr("DB_TYPE", SqliteDbType),
			DSN:  envOr("DB_DSN", "file::memory:?cache=shared"),
			Name: os.Getenv("DB_NAME"),
		},
		Port: defaultRestPort,
	}

	if cfg.Logger.LogType == LogTypeFile {
		cfg.Logger.MaxSize = envIntOr("LOG_MAX_SIZE", 10)
		cfg.Logger.MaxBackups = envIntOr("LOG_MAX_BACKUPS", 3)
		cfg.Logger.MaxAge = envIntOr("LOG_MAX_AGE", 28)
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p < 1 || p > 65535 {
			return nil, fmt.Errorf("invalid PORT value %q", port)
		}
		cfg.Port = p
	}

	if err := cfg.Logger.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
