package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/pricecalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const defaultName = "built-in catalog"

//go:embed default_catalog.yaml
var defaultCatalog []byte

// YAMLLoader implements domain.CatalogLoader by reading a catalog YAML file.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads the catalog at path. An empty path loads the built-in catalog.
func (l *YAMLLoader) Load(path string) (*domain.Catalog, error) {
	if path == "" {
		return parse(defaultCatalog, defaultName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	cat, err := parse(data, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	return cat.WithSource(path), nil
}

type catalogFile struct {
	Reference *domain.Currency `yaml:"reference"`
	Countries []countryEntry   `yaml:"countries"`
	Products  []productEntry   `yaml:"products"`
}

type countryEntry struct {
	Name           string           `yaml:"name"`
	TaxRate        decimal.Decimal  `yaml:"tax_rate"`
	CurrencySymbol string           `yaml:"currency_symbol"`
	ExchangeRate   *decimal.Decimal `yaml:"exchange_rate"`
}

type productEntry struct {
	Name  string          `yaml:"name"`
	Price decimal.Decimal `yaml:"price"`
}

func parse(data []byte, name string) (*domain.Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	cat, err := file.toCatalog()
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return cat, nil
}

func (f catalogFile) toCatalog() (*domain.Catalog, error) {
	ref := domain.DefaultReference()
	if f.Reference != nil {
		ref = *f.Reference
	}

	countries := make([]domain.Country, 0, len(f.Countries))
	for i, e := range f.Countries {
		// Without an explicit rate the country uses the reference currency.
		rate := decimal.NewFromInt(1)
		if e.ExchangeRate != nil {
			rate = *e.ExchangeRate
		}
		c, err := domain.NewCountry(e.Name, e.TaxRate, e.CurrencySymbol, rate)
		if err != nil {
			return nil, fmt.Errorf("countries[%d]: %w", i, err)
		}
		countries = append(countries, c)
	}

	products := make([]domain.Product, 0, len(f.Products))
	for i, e := range f.Products {
		p, err := domain.NewProduct(e.Name, e.Price)
		if err != nil {
			return nil, fmt.Errorf("products[%d]: %w", i, err)
		}
		products = append(products, p)
	}

	return domain.NewCatalog(ref, countries, products)
}
