package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Product is an immutable product with its tax-exclusive unit price
// expressed in the reference currency.
type Product struct {
	name              string
	priceExclusiveTax decimal.Decimal
}

type productFields struct {
	Name  string          `json:"name"  validate:"required"`
	Price decimal.Decimal `json:"price" validate:"dgte=0"`
}

// NewProduct validates and builds a Product. The price must not be negative.
func NewProduct(name string, priceExclusiveTax decimal.Decimal) (Product, error) {
	p := Product{name: name, priceExclusiveTax: priceExclusiveTax}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (p Product) Name() string                       { return p.name }
func (p Product) PriceExclusiveTax() decimal.Decimal { return p.priceExclusiveTax }

// Validate reports whether p has a name and a non-negative price.
func (p Product) Validate() error {
	return validateStruct(p.fields())
}

func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.fields())
}

func (p Product) fields() productFields {
	return productFields{Name: p.name, Price: p.priceExclusiveTax}
}
