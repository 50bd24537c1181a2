package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the catalog tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := connect()
		if err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
		defer db.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Catalog schema is up to date (%s)\n", db.Driver())
		return nil
	},
}
