package tui

import (
	"fmt"
	"strings"

	"github.com/abdidvp/pricecalc/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// ── warm palette ──
var (
	accent = lipgloss.Color("#D97706") // amber
	fg     = lipgloss.Color("#E8E6E3") // warm light gray
	dim    = lipgloss.Color("#6B7280") // muted gray
	faint  = lipgloss.Color("#3F3F46") // very dim
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	columnStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	faintStyle  = lipgloss.NewStyle().Foreground(faint)
	nameStyle   = lipgloss.NewStyle().Foreground(fg)
)

// Minimum column widths of the price table. Columns grow to fit their
// widest value so that every row stays on one line.
const (
	countryWidth = 25
	amountWidth  = 20
	localWidth   = 24
	taxRefWidth  = 10
	taxLocWidth  = 15
)

type reportWidths struct {
	country, base, incl, local, taxRef, taxLoc int
}

func measureReport(rows []domain.Row) reportWidths {
	w := reportWidths{
		country: countryWidth,
		base:    amountWidth,
		incl:    amountWidth,
		local:   localWidth,
		taxRef:  taxRefWidth,
		taxLoc:  taxLocWidth,
	}
	for _, row := range rows {
		w.country = widest(w.country, row.CountryName)
		w.base = widest(w.base, money(row.BasePrice))
		w.incl = widest(w.incl, money(row.PriceWithTax))
		w.local = widest(w.local, row.CurrencySymbol+money(row.LocalPrice))
		w.taxRef = widest(w.taxRef, money(row.TaxAmountReference))
		w.taxLoc = widest(w.taxLoc, row.CurrencySymbol+money(row.TaxAmountLocal))
	}
	return w
}

// RenderReport formats a price report as a table, one line per country.
// Amounts are rounded to two decimals here and nowhere else.
func RenderReport(report *domain.PriceReport) string {
	var b strings.Builder
	sym := report.Reference.Symbol
	w := measureReport(report.Rows)

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Prices for product: " + report.Product.Name()))
	b.WriteString("\n\n")

	header := strings.Join([]string{
		cell(w.country, lipgloss.Left, "Country"),
		cell(w.base, lipgloss.Right, fmt.Sprintf("Price excl. VAT (%s)", sym)),
		cell(w.incl, lipgloss.Right, fmt.Sprintf("Price incl. VAT (%s)", sym)),
		cell(w.local+1, lipgloss.Right, "Price in Local Currency"),
		cell(w.taxRef+w.taxLoc+3, lipgloss.Right, fmt.Sprintf("VAT Amount (%s / Local)", sym)),
	}, " ")
	b.WriteString(columnStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(strings.Repeat("─", lipgloss.Width(header))))
	b.WriteString("\n")

	if len(report.Rows) == 0 {
		b.WriteString(dimStyle.Render("No countries registered."))
		b.WriteString("\n")
		return b.String()
	}

	for _, row := range report.Rows {
		b.WriteString(renderRow(row, w))
		b.WriteString("\n")
	}
	return b.String()
}

// renderRow follows the layout
// <country> <base> <incl> <symbol><local> <taxRef> / <symbol><taxLocal>.
func renderRow(row domain.Row, w reportWidths) string {
	return strings.Join([]string{
		nameStyle.Render(cell(w.country, lipgloss.Left, row.CountryName)),
		cell(w.base, lipgloss.Right, money(row.BasePrice)),
		cell(w.incl, lipgloss.Right, money(row.PriceWithTax)),
		cell(w.local, lipgloss.Left, row.CurrencySymbol+money(row.LocalPrice)),
		cell(w.taxRef, lipgloss.Right, money(row.TaxAmountReference)) + " / " +
			cell(w.taxLoc, lipgloss.Left, row.CurrencySymbol+money(row.TaxAmountLocal)),
	}, " ")
}

// RenderProducts lists products with their 1-based selection numbers.
func RenderProducts(products []domain.Product, reference domain.Currency) string {
	if len(products) == 0 {
		return dimStyle.Render("No products in catalog.") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Available Products:"))
	b.WriteString("\n")
	for i, p := range products {
		fmt.Fprintf(&b, "%d. %s %s\n",
			i+1,
			p.Name(),
			dimStyle.Render("("+reference.Symbol+money(p.PriceExclusiveTax())+")"),
		)
	}
	return b.String()
}

// RenderCountries lists countries in registration order. Countries that use
// the reference currency show "reference" instead of a rate of 1.
func RenderCountries(countries []domain.Country, reference domain.Currency) string {
	if len(countries) == 0 {
		return dimStyle.Render("No countries registered.") + "\n"
	}

	nameWidth := countryWidth
	for _, c := range countries {
		nameWidth = widest(nameWidth, c.Name())
	}

	var b strings.Builder
	header := strings.Join([]string{
		cell(nameWidth, lipgloss.Left, "Country"),
		cell(10, lipgloss.Right, "VAT (%)"),
		cell(10, lipgloss.Right, "Currency"),
		cell(20, lipgloss.Right, fmt.Sprintf("Rate per 1 %s", reference.Code)),
	}, " ")
	b.WriteString(columnStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(strings.Repeat("─", lipgloss.Width(header))))
	b.WriteString("\n")

	for _, c := range countries {
		rate := c.ExchangeRateToReference().String()
		if c.IsReference() {
			rate = "reference"
		}
		b.WriteString(strings.Join([]string{
			nameStyle.Render(cell(nameWidth, lipgloss.Left, c.Name())),
			cell(10, lipgloss.Right, c.TaxRatePercent().String()),
			cell(10, lipgloss.Right, c.CurrencySymbol()),
			cell(20, lipgloss.Right, rate),
		}, " "))
		b.WriteString("\n")
	}
	return b.String()
}

func cell(width int, align lipgloss.Position, s string) string {
	return lipgloss.NewStyle().Width(width).Align(align).Render(s)
}

// widest returns the larger of width and the display width of s.
func widest(width int, s string) int {
	if sw := lipgloss.Width(s); sw > width {
		return sw
	}
	return width
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
