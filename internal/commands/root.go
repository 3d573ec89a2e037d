// Package commands defines the blogly command line.
package commands

import "github.com/spf13/cobra"

// NewRootCmd builds the blogly command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "blogly",
		Short:         "Blogly: users and their blog posts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		ServeCmd(),
		UpCmd(),
		DownCmd(),
		StatusCmd(),
		HistoryCmd(),
		ValidateCmd(),
	)
	return rootCmd
}
