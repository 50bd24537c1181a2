package command

import (
	"fmt"
	"os"

	"movies-admin/internal/fixtures"

	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load [file.yaml]",
	Short: "Import catalog data from a YAML fixture",
	Long: `Import genres, persons, film works and their associations from a YAML fixture.
The whole file is applied in one transaction: a single invalid row aborts the import.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open fixture: %w", err)
		}
		defer file.Close()

		fixture, err := fixtures.Parse(file)
		if err != nil {
			return err
		}

		db, log, err := connect()
		if err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}
		defer db.Close()

		summary, err := fixtures.NewLoader(db, log).Load(cmd.Context(), fixture)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Loaded %s\n", args[0])
		fmt.Fprintf(out, "  genres:            %d\n", summary.Genres)
		fmt.Fprintf(out, "  persons:           %d\n", summary.Persons)
		fmt.Fprintf(out, "  film works:        %d\n", summary.Filmworks)
		fmt.Fprintf(out, "  genre film works:  %d\n", summary.GenreFilmworks)
		fmt.Fprintf(out, "  person film works: %d\n", summary.PersonFilmworks)
		return nil
	},
}
