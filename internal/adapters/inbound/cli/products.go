package cli

import (
	"fmt"

	"github.com/abdidvp/pricecalc/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newProductsCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the catalog's products with their selection numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			catalog, err := e.reporter.LoadCatalog(e.catalogPath)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, catalog.Products())
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderProducts(catalog.Products(), catalog.Reference()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output products as JSON")

	return cmd
}
