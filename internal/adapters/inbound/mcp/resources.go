package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/pricecalc/internal/application"
)

const catalogURI = "pricecalc://catalog"

// registerResources registers all pricecalc MCP resources on the given server.
func registerResources(s *server.MCPServer, reporter application.PriceReporter, catalogPath string) {
	s.AddResource(
		mcplib.NewResource(
			catalogURI,
			"Catalog",
			mcplib.WithResourceDescription("Reference currency, countries and products the reports are built from"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCatalogResource(reporter, catalogPath),
	)
}

func handleCatalogResource(reporter application.PriceReporter, catalogPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		catalog, err := reporter.LoadCatalog(catalogPath)
		if err != nil {
			return nil, err
		}

		data, err := json.MarshalIndent(catalog, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling catalog: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      catalogURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
