package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/junaidrashid-git/storefront-api/seed"
	"github.com/junaidrashid-git/storefront-api/store"
)

var seedReset bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample product catalogue",
	Long: `Load the sample product catalogue. An existing catalogue is left
alone unless --reset is given, which deletes every product first.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "Delete existing products before seeding")
}

func runSeed(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.close()

	st := store.New(e.db)
	if err := st.Migrate(cmd.Context()); err != nil {
		return err
	}

	n, err := seed.Run(cmd.Context(), st.Products, seedReset)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Products already present, nothing seeded (use --reset to replace them)")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Database seeded with %d sample products\n", n)
	return nil
}
