package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abdidvp/pricecalc/internal/adapters/inbound/cli"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// newTestCmd returns a root command with output captured and a known logging
// environment, so stray PRICECALC_* variables cannot leak into the test.
func newTestCmd(t *testing.T, args ...string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("PRICECALC_LOG_FORMAT", "logfmt")
	t.Setenv("PRICECALC_LOG_LEVEL", "warn")
	t.Setenv("PRICECALC_CATALOG", "")

	cmd := cli.NewRootCmdForTest()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	return cmd, stdout, stderr
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const smallCatalog = `
countries:
  - {name: Ireland, tax_rate: 0.0, currency_symbol: "€"}
  - {name: North Macedonia, tax_rate: 5.0, currency_symbol: "ДЕН", exchange_rate: 61.69}
products:
  - {name: Flour, price: 1.20}
  - {name: RedWine, price: 8.00}
`
