package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/blogly/internal/database"
)

func DownCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Revert the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := getDB(cmd)
			if err != nil {
				return err
			}
			defer database.Close(db)

			reverted, err := getMigrator(db).Down(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully reverted migration: %s (%s)\n", reverted.Name, reverted.Version)
			return nil
		},
	}

	cmd.Flags().Bool("debug", false, "Enable debug output")

	return cmd
}
