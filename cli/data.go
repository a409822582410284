package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/junaidrashid-git/storefront-api/dataio"
	"github.com/junaidrashid-git/storefront-api/store"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write every table to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		counts, err := dataio.ExportFile(cmd.Context(), e.db, args[0])
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", counts, args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Upsert every row of a JSON export",
	Long: `Upsert every row of a file written by "storefront export". Rows are
matched by id; existing rows are overwritten. The whole import is one
transaction.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		if err := store.New(e.db).Migrate(cmd.Context()); err != nil {
			return err
		}
		counts, err := dataio.ImportFile(cmd.Context(), e.db, args[0])
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", counts)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}
