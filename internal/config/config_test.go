package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/beesaferoot/blogly/internal/models"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DATABASE_URL", "DB_DRIVER", "PORT", "GIN_MODE", "DEFAULT_IMAGE_URL", "LOG_LEVEL", "DB_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgresql:///blogly", cfg.DatabaseURL)
	assert.Equal(t, DriverPostgres, cfg.Driver)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, models.DefaultImageURL, cfg.DefaultImageURL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, logger.Warn, cfg.DBLogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "blogly.db")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("PORT", "5000")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("DEFAULT_IMAGE_URL", "https://example.com/avatar.png")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_LOG_LEVEL", "info")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "blogly.db", cfg.DatabaseURL)
	assert.Equal(t, DriverSQLite, cfg.Driver)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "https://example.com/avatar.png", cfg.DefaultImageURL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, logger.Info, cfg.DBLogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"driver", "DB_DRIVER", "mysql"},
		{"log level", "LOG_LEVEL", "loud"},
		{"db log level", "DB_LOG_LEVEL", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that are already set, even if empty.
	require.NoError(t, os.Unsetenv("PORT"))
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9999\n"), 0o644))

	require.NoError(t, LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")))
	t.Cleanup(func() { _ = os.Unsetenv("PORT") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr())
}
