package cli

import (
	"fmt"

	"github.com/abdidvp/pricecalc/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newCountriesCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "countries",
		Short: "List registered countries with VAT rate, currency and exchange rate",
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
				return renderJSON(cmd, catalog.Countries())
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCountries(catalog.Countries(), catalog.Reference()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output countries as JSON")

	return cmd
}
