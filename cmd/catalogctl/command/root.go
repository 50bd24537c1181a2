package command

import (
	"fmt"
	"os"

	"movies-admin/internal/config"
	"movies-admin/internal/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	driver string
	dbName string
)

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "catalogctl - movies catalog maintenance tool",
	Long: `catalogctl manages the movies catalog database outside of the HTTP API:
- migrate creates or updates the catalog tables
- load imports genres, persons and film works from a YAML fixture

Connection settings come from the same DB_* environment variables and envs/ files as the server.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "database driver override (postgres or sqlite)")
	rootCmd.PersistentFlags().StringVar(&dbName, "db", "", "database name override; the file path for sqlite")

	rootCmd.AddCommand(migrateCmd, loadCmd, versionCmd)
}

// connect opens the configured database, which also runs the schema migration.
func connect() (*database.Database, *logrus.Logger, error) {
	config.LoadEnvFiles()
	cfg := config.Load()
	log := config.NewLogger()

	if driver != "" {
		cfg.Database.Driver = driver
	}
	if dbName != "" {
		cfg.Database.DBName = dbName
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return db, log, nil
}
