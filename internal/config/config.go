// Package config loads Blogly settings from the environment.
//
// main calls godotenv.Load before Load, so values may also come from a .env
// file in the working directory.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/gorm/logger"

	"github.com/beesaferoot/blogly/internal/models"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all runtime settings.
type Config struct {
	DatabaseURL     string
	Driver          string
	Port            string
	GinMode         string
	DefaultImageURL string
	LogLevel        slog.Level
	DBLogLevel      logger.LogLevel
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// LoadDotEnv loads the given .env files (default ".env") if they exist.
// A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:     getenv("DATABASE_URL", "postgresql:///blogly"),
		Driver:          strings.ToLower(getenv("DB_DRIVER", DriverPostgres)),
		Port:            getenv("PORT", "8080"),
		GinMode:         os.Getenv("GIN_MODE"),
		DefaultImageURL: getenv("DEFAULT_IMAGE_URL", models.DefaultImageURL),
	}

	switch cfg.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", cfg.Driver, DriverPostgres, DriverSQLite)
	}

	lvl, err := parseLogLevel(getenv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = lvl

	dbLvl, err := parseDBLogLevel(getenv("DB_LOG_LEVEL", "warn"))
	if err != nil {
		return Config{}, err
	}
	cfg.DBLogLevel = dbLvl

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return lvl, nil
}

func parseDBLogLevel(s string) (logger.LogLevel, error) {
	switch strings.ToLower(s) {
	case "silent":
		return logger.Silent, nil
	case "error":
		return logger.Error, nil
	case "warn":
		return logger.Warn, nil
	case "info":
		return logger.Info, nil
	}
	return 0, fmt.Errorf("invalid DB_LOG_LEVEL %q (want silent, error, warn or info)", s)
}
