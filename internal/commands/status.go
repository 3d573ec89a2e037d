package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beesaferoot/blogly/internal/database"
)

func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show status of all migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			db, _, err := getDB(cmd)
			if err != nil {
				return err
			}
			defer database.Close(db)

			statuses, err := getMigrator(db).Status(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get applied migrations: %w", err)
			}

			fmt.Fprintf(out, "%-16s  %-30s  %-8s\n", "Version", "Name", "Status")
			for _, st := range statuses {
				status := "Pending"
				if st.Applied {
					status = "Applied"
				}
				fmt.Fprintf(out, "%-16s  %-30s  %-8s\n", st.Version, st.Name, status)
			}

			return nil
		},
	}

	cmd.Flags().Bool("debug", false, "Enable debug output")

	return cmd
}
