package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Country is an immutable tax and currency record. The exchange rate converts
// one unit of the reference currency into the local currency; countries using
// the reference currency carry a rate of exactly 1.
type Country struct {
	name                    string
	taxRatePercent          decimal.Decimal
	currencySymbol          string
	exchangeRateToReference decimal.Decimal
}

type countryFields struct {
	Name           string          `json:"name"            validate:"required"`
	TaxRatePercent decimal.Decimal `json:"tax_rate"        validate:"dgte=0,dlte=100"`
	CurrencySymbol string          `json:"currency_symbol" validate:"required"`
	ExchangeRate   decimal.Decimal `json:"exchange_rate"   validate:"dgt=0"`
}

// NewCountry validates and builds a Country.
func NewCountry(name string, taxRatePercent decimal.Decimal, currencySymbol string, exchangeRate decimal.Decimal) (Country, error) {
	c := Country{
		name:                    name,
		taxRatePercent:          taxRatePercent,
		currencySymbol:          currencySymbol,
		exchangeRateToReference: exchangeRate,
	}
	if err := c.Validate(); err != nil {
		return Country{}, err
	}
	return c, nil
}

// NewReferenceCountry builds a Country that uses the reference currency.
func NewReferenceCountry(name string, taxRatePercent decimal.Decimal, currencySymbol string) (Country, error) {
	return NewCountry(name, taxRatePercent, currencySymbol, decimal.NewFromInt(1))
}

func (c Country) Name() string                            { return c.name }
func (c Country) TaxRatePercent() decimal.Decimal         { return c.taxRatePercent }
func (c Country) CurrencySymbol() string                  { return c.currencySymbol }
func (c Country) ExchangeRateToReference() decimal.Decimal { return c.exchangeRateToReference }

// IsReference reports whether the country's currency is the reference currency.
func (c Country) IsReference() bool {
	return c.exchangeRateToReference.Equal(decimal.NewFromInt(1))
}

// Validate checks the tax rate is within [0, 100], the exchange rate is
// positive and name and symbol are set.
func (c Country) Validate() error {
	return validateStruct(c.fields())
}

func (c Country) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.fields())
}

func (c Country) fields() countryFields {
	return countryFields{
		Name:           c.name,
		TaxRatePercent: c.taxRatePercent,
		CurrencySymbol: c.currencySymbol,
		ExchangeRate:   c.exchangeRateToReference,
	}
}
