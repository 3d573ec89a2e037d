package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/blogly/internal/database"
)

func UpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			out := cmd.OutOrStdout()

			db, _, err := getDB(cmd)
			if err != nil {
				return err
			}
			defer database.Close(db)

			migrator := getMigrator(db)

			pending, err := migrator.Pending(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get applied migrations: %w", err)
			}

			if len(pending) == 0 {
				fmt.Fprintln(out, "No pending migrations.")
				return nil
			}

			if dryRun {
				fmt.Fprintln(out, "Pending migrations:")
				for _, mr := range pending {
					fmt.Fprintf(out, "- %s (%s)\n", mr.Name, mr.Version)
				}
				return nil
			}

			applied, err := migrator.Up(cmd.Context())
			for _, mr := range applied {
				fmt.Fprintf(out, "Successfully applied migration: %s (%s)\n", mr.Name, mr.Version)
			}
			return err
		},
	}

	cmd.Flags().Bool("dry-run", false, "Show pending migrations without executing them")
	cmd.Flags().Bool("debug", false, "Enable debug output")

	return cmd
}
