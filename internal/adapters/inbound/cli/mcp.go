package cli

import (
	mcpadapter "github.com/abdidvp/pricecalc/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the pricecalc MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start pricecalc MCP server (stdio)",
		Long:  "Start the pricecalc MCP server using stdio transport. This lets AI assistants list the catalog and build price reports.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			s := mcpadapter.NewPriceCalcMCPServer(e.reporter, e.catalogPath)
			return server.ServeStdio(s)
		},
	}
}
