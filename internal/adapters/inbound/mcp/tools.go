package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/shopspring/decimal"

	"github.com/abdidvp/pricecalc/internal/application"
)

// registerTools registers all pricecalc MCP tools on the given server.
func registerTools(s *server.MCPServer, reporter application.PriceReporter, catalogPath string) {
	s.AddTool(
		mcplib.NewTool("pricecalc_list_products",
			mcplib.WithDescription("Lists catalog products with their 1-based selection numbers and tax-exclusive prices"),
		),
		handleListProducts(reporter, catalogPath),
	)

	s.AddTool(
		mcplib.NewTool("pricecalc_list_countries",
			mcplib.WithDescription("Lists registered countries with VAT rate, currency symbol and exchange rate to the reference currency"),
		),
		handleListCountries(reporter, catalogPath),
	)

	s.AddTool(
		mcplib.NewTool("pricecalc_price_report",
			mcplib.WithDescription("Prices a product in every registered country: VAT-inclusive price, local-currency price and VAT amount. Amounts are unrounded decimal strings."),
			mcplib.WithString("product",
				mcplib.Required(),
				mcplib.Description("Product number (see pricecalc_list_products) or product name"),
			),
		),
		handlePriceReport(reporter, catalogPath),
	)
}

func handleListProducts(reporter application.PriceReporter, catalogPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		catalog, err := reporter.LoadCatalog(catalogPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		type numbered struct {
			Number int             `json:"number"`
			Name   string          `json:"name"`
			Price  decimal.Decimal `json:"price"`
		}
		products := catalog.Products()
		out := make([]numbered, 0, len(products))
		for i, p := range products {
			out = append(out, numbered{Number: i + 1, Name: p.Name(), Price: p.PriceExclusiveTax()})
		}
		return jsonResult(out)
	}
}

func handleListCountries(reporter application.PriceReporter, catalogPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		catalog, err := reporter.LoadCatalog(catalogPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(catalog.Countries())
	}
}

func handlePriceReport(reporter application.PriceReporter, catalogPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		selector, err := request.RequireString("product")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		catalog, err := reporter.LoadCatalog(catalogPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := reporter.BuildReport(catalog, selector)
		if err != nil {
			return errorResult(fmt.Sprintf("report failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

// jsonResult marshals v into a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
