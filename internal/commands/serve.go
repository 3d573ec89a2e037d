package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/beesaferoot/blogly/internal/database"
	"github.com/beesaferoot/blogly/internal/models"
	"github.com/beesaferoot/blogly/internal/store"
	"github.com/beesaferoot/blogly/internal/web"
)

func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Blogly web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			skipMigrate, _ := cmd.Flags().GetBool("skip-migrate")

			db, cfg, err := getDB(cmd)
			if err != nil {
				return err
			}
			defer database.Close(db)

			log := newLogger(cfg)
			if cfg.GinMode != "" {
				gin.SetMode(cfg.GinMode)
			}
			if addr == "" {
				addr = cfg.Addr()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if !skipMigrate {
				applied, err := getMigrator(db).Up(ctx)
				if err != nil {
					return fmt.Errorf("failed to apply migrations: %w", err)
				}
				for _, mr := range applied {
					log.Info("applied migration", "version", mr.Version, "name", mr.Name)
				}
			}

			drifts, err := getMigrator(db).Verify(ctx, &models.User{}, &models.Post{})
			if err != nil {
				return fmt.Errorf("failed to inspect schema: %w", err)
			}
			for _, d := range drifts {
				log.Warn("schema drift", "detail", d.String())
			}

			srv := web.NewServer(store.New(db, cfg.DefaultImageURL), log)
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (default \":$PORT\")")
	cmd.Flags().Bool("skip-migrate", false, "Do not apply pending migrations on startup")
	cmd.Flags().Bool("debug", false, "Log every SQL statement")

	return cmd
}
