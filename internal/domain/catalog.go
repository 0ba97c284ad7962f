package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

// Currency identifies the reference currency base prices are expressed in.
type Currency struct {
	Code   string `yaml:"code"   json:"code"   validate:"required"`
	Symbol string `yaml:"symbol" json:"symbol" validate:"required"`
}

// DefaultReference returns the euro.
func DefaultReference() Currency {
	return Currency{Code: "EUR", Symbol: "€"}
}

// Catalog is the read-only set of countries and products a report is built from.
// Countries keep their registration order, which is also the display order.
type Catalog struct {
	reference Currency
	countries []Country
	products  []Product
	source    string
}

// NewCatalog validates every entry and returns an immutable Catalog.
func NewCatalog(reference Currency, countries []Country, products []Product) (*Catalog, error) {
	if err := validateStruct(reference); err != nil {
		return nil, fmt.Errorf("reference currency: %w", err)
	}
	for i, c := range countries {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("countries[%d]: %w", i, err)
		}
	}
	for i, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("products[%d]: %w", i, err)
		}
	}

	return &Catalog{
		reference: reference,
		countries: append([]Country(nil), countries...),
		products:  append([]Product(nil), products...),
	}, nil
}

// WithSource returns a copy of c that remembers the file it was loaded from.
func (c *Catalog) WithSource(path string) *Catalog {
	cp := *c
	cp.source = path
	return &cp
}

func (c *Catalog) Reference() Currency { return c.reference }
func (c *Catalog) Source() string      { return c.source }

// Countries returns the countries in registration order.
func (c *Catalog) Countries() []Country {
	return append([]Country(nil), c.countries...)
}

func (c *Catalog) Products() []Product {
	return append([]Product(nil), c.products...)
}

// SelectProduct resolves selector to a product. A number selects by 1-based
// position; anything else is matched against product names ignoring case,
// spacing, punctuation and camel-casing.
func (c *Catalog) SelectProduct(selector string) (Product, error) {
	sel := strings.TrimSpace(selector)
	if sel == "" {
		return Product{}, &ValidationError{Field: "product", Reason: "no product selected"}
	}

	if n, err := strconv.Atoi(sel); err == nil {
		if len(c.products) == 0 {
			return Product{}, &ValidationError{Field: "product", Reason: "catalog has no products"}
		}
		if n < 1 || n > len(c.products) {
			return Product{}, &ValidationError{
				Field:  "product",
				Reason: fmt.Sprintf("selection %d out of range (1-%d)", n, len(c.products)),
			}
		}
		return c.products[n-1], nil
	}

	if key := nameKey(sel); key != "" {
		for _, p := range c.products {
			if nameKey(p.Name()) == key {
				return p, nil
			}
		}
	}
	return Product{}, &ValidationError{Field: "product", Reason: fmt.Sprintf("no product named %q", sel)}
}

// MarshalJSON renders the catalog for machine consumers.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Reference Currency  `json:"reference"`
		Countries []Country `json:"countries"`
		Products  []Product `json:"products"`
	}{c.reference, c.countries, c.products})
}

// nameKey normalizes a product name to lower-case words, so that
// "ChefSelect orange-juice" and "chef select orange juice" compare equal.
func nameKey(name string) string {
	var words []string
	for _, field := range strings.Fields(name) {
		for _, w := range camelcase.Split(field) {
			if strings.IndexFunc(w, isWordRune) < 0 {
				continue
			}
			words = append(words, strings.ToLower(w))
		}
	}
	return strings.Join(words, " ")
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
