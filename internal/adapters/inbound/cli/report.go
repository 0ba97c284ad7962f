package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/abdidvp/pricecalc/internal/adapters/outbound/tui"
	"github.com/abdidvp/pricecalc/internal/domain"
	"github.com/spf13/cobra"
)

func newReportCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "report [product]",
		Short: "Show a product's price in every country",
		Long: "Price a product in every registered country. The product is selected by its number " +
			"(see 'pricecalc products') or by name; without an argument you are prompted for a number.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			catalog, err := e.reporter.LoadCatalog(e.catalogPath)
			if err != nil {
				return err
			}

			var selector string
			if len(args) > 0 {
				selector = args[0]
			} else {
				// Keep stdout clean for JSON consumers.
				prompt := cmd.OutOrStdout()
				if jsonOutput {
					prompt = cmd.ErrOrStderr()
				}
				selector, err = promptProduct(cmd.InOrStdin(), prompt, catalog)
				if err != nil {
					return err
				}
			}

			report, err := e.reporter.BuildReport(catalog, selector)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON (amounts unrounded)")

	return cmd
}

// promptProduct lists the catalog's products on out and reads one selection line from in.
func promptProduct(in io.Reader, out io.Writer, catalog *domain.Catalog) (string, error) {
	fmt.Fprint(out, tui.RenderProducts(catalog.Products(), catalog.Reference()))
	fmt.Fprint(out, "\nSelect a product by number: ")

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading selection: %w", err)
		}
		return "", &domain.ValidationError{Field: "product", Reason: "no product selected"}
	}
	fmt.Fprintln(out)
	return strings.TrimSpace(scanner.Text()), nil
}

func renderJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
