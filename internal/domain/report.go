package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Row is the price of one product in one country. Amounts are unrounded;
// rounding is left to whatever renders the row.
type Row struct {
	CountryName        string          `json:"country"`
	CurrencySymbol     string          `json:"currency_symbol"`
	BasePrice          decimal.Decimal `json:"base_price"`
	PriceWithTax       decimal.Decimal `json:"price_with_tax"`
	LocalPrice         decimal.Decimal `json:"local_price"`
	TaxAmountReference decimal.Decimal `json:"tax_amount_reference"`
	TaxAmountLocal     decimal.Decimal `json:"tax_amount_local"`
}

// PriceReport is a generated report together with the context needed to display it.
type PriceReport struct {
	Product   Product  `json:"product"`
	Reference Currency `json:"reference"`
	Revision  string   `json:"catalog_revision,omitempty"`
	Rows      []Row    `json:"rows"`
}

// GenerateReport prices product in every country, in the order given.
// The product and all countries are validated before any row is produced.
// An empty country list yields an empty report.
func GenerateReport(product Product, countries []Country) ([]Row, error) {
	if err := product.Validate(); err != nil {
		return nil, fmt.Errorf("product %q: %w", product.Name(), err)
	}
	for i, c := range countries {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("country #%d %q: %w", i+1, c.Name(), err)
		}
	}

	base := product.PriceExclusiveTax()
	rows := make([]Row, 0, len(countries))
	for _, c := range countries {
		rows = append(rows, priceIn(base, c))
	}
	return rows, nil
}

func priceIn(base decimal.Decimal, c Country) Row {
	withTax := PriceWithTax(base, c.TaxRatePercent())
	tax := withTax.Sub(base)
	rate := c.ExchangeRateToReference()

	return Row{
		CountryName:        c.Name(),
		CurrencySymbol:     c.CurrencySymbol(),
		BasePrice:          base,
		PriceWithTax:       withTax,
		LocalPrice:         ToLocal(withTax, rate),
		TaxAmountReference: tax,
		TaxAmountLocal:     ToLocal(tax, rate),
	}
}
