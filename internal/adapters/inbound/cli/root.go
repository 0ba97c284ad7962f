package cli

import (
	"github.com/abdidvp/pricecalc/internal/adapters/outbound/config"
	"github.com/abdidvp/pricecalc/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/pricecalc/internal/adapters/outbound/logging"
	"github.com/abdidvp/pricecalc/internal/application"
	"github.com/go-kit/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// rootOptions carries flags shared by every subcommand.
type rootOptions struct {
	catalogPath string
}

// env is the per-invocation wiring of settings and services.
type env struct {
	reporter    application.PriceReporter
	catalogPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "pricecalc",
		Short:         "Tax-inclusive product prices across countries",
		Long:          "pricecalc prices a product in every registered country: it adds each country's VAT to the tax-exclusive price and converts the result into the local currency.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "Catalog YAML file (default $PRICECALC_CATALOG, then the built-in catalog)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newReportCmd(opts))
	cmd.AddCommand(newProductsCmd(opts))
	cmd.AddCommand(newCountriesCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// setup reads PRICECALC_* settings and wires the report service.
// Logs go to the command's stderr.
func (o *rootOptions) setup(cmd *cobra.Command) (*env, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), settings.LogFormat, settings.LogLevel)
	if err != nil {
		return nil, err
	}

	var reporter application.PriceReporter
	reporter = application.NewReportService(config.New(), gitinfo.New())
	reporter = application.NewLoggingService(log.With(logger, "component", "report"), reporter)

	return &env{
		reporter:    reporter,
		catalogPath: settings.CatalogPath(o.catalogPath),
	}, nil
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
