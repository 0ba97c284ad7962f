package mcp

import (
	"github.com/abdidvp/pricecalc/internal/application"
	"github.com/mark3labs/mcp-go/server"
)

// NewPriceCalcMCPServer creates an MCP server with all pricecalc tools and
// resources registered. catalogPath selects the catalog; empty means the
// built-in one.
func NewPriceCalcMCPServer(reporter application.PriceReporter, catalogPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"pricecalc",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, reporter, catalogPath)
	registerResources(s, reporter, catalogPath)

	return s
}
