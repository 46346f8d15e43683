package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect or rebuild the product catalog",
	}

	cmd.AddCommand(newCatalogListCmd())
	cmd.AddCommand(newCatalogRegenerateCmd())

	return cmd
}

func newCatalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog products, generating them if storage is empty",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string) error {
			products, err := app.Catalog.Load(cmd.Context(), cfg.CatalogSize)
			if err != nil {
				return err
			}
			newCmdOutput(cmd).Print(products)
			return nil
		}),
	}
}

func newCatalogRegenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regenerate",
		Short: "Replace the stored catalog with freshly generated products",
		Long: `Deletes every stored product and generates --catalog-size new ones.
Only meaningful with --storage redis; the memory backend forgets the
catalog when the command exits.`,
		Args: cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, args []string) error {
			products, err := app.Catalog.Regenerate(cmd.Context(), cfg.CatalogSize)
			if err != nil {
				return err
			}

			out := newCmdOutput(cmd)
			if out.JSON() {
				out.Print(products)
				return nil
			}
			out.PrintMessage(fmt.Sprintf("Generated %d products.", len(products)))
			return nil
		}),
	}
}
