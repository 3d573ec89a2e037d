package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/blogly/internal/database"
	"github.com/beesaferoot/blogly/internal/models"
)

var errSchemaDrift = errors.New("database schema does not match models")

func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the database schema against the models",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			db, _, err := getDB(cmd)
			if err != nil {
				return err
			}
			defer database.Close(db)

			drifts, err := getMigrator(db).Verify(cmd.Context(), &models.User{}, &models.Post{})
			if err != nil {
				return fmt.Errorf("failed to inspect schema: %w", err)
			}

			if len(drifts) == 0 {
				fmt.Fprintln(out, "Schema matches models.")
				return nil
			}
			for _, d := range drifts {
				fmt.Fprintf(out, "- %s\n", d)
			}
			return errSchemaDrift
		},
	}

	cmd.Flags().Bool("debug", false, "Enable debug output")

	return cmd
}
