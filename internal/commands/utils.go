package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/beesaferoot/blogly/internal/config"
	"github.com/beesaferoot/blogly/internal/database"
	"github.com/beesaferoot/blogly/internal/migration"
)

// getDB loads the configuration and opens the database. --debug, when the
// command defines it, turns on SQL logging.
func getDB(cmd *cobra.Command) (*gorm.DB, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}

	if f := cmd.Flags().Lookup("debug"); f != nil {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			cfg.DBLogLevel = logger.Info
		}
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, config.Config{}, err
	}
	return db, cfg, nil
}

func getMigrator(db *gorm.DB) *migration.Migrator {
	return migration.NewMigrator(db, migration.Blogly()...)
}

func newLogger(cfg config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
}
