package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/abdidvp/pricecalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	cat, err := domain.NewCatalog(domain.DefaultReference(), sampleCountries(t), []domain.Product{
		mustProduct(t, "Apples", "1.55"),
		mustProduct(t, "Gouda cheese", "2.79"),
		mustProduct(t, "Weihenstephan long-life milk", "0.90"),
	})
	require.NoError(t, err)
	return cat
}

func TestNewCatalog_KeepsRegistrationOrder(t *testing.T) {
	cat := sampleCatalog(t)
	names := make([]string, 0)
	for _, c := range cat.Countries() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"Austria", "Albania", "Ireland", "Hungary", "United Kingdom", "Slovenia"}, names)
	assert.Equal(t, "EUR", cat.Reference().Code)
	assert.Empty(t, cat.Source())
}

func TestNewCatalog_ReturnsCopies(t *testing.T) {
	cat := sampleCatalog(t)
	countries := cat.Countries()
	countries[0] = domain.Country{}
	assert.Equal(t, "Austria", cat.Countries()[0].Name())
}

func TestNewCatalog_RejectsInvalidEntries(t *testing.T) {
	_, err := domain.NewCatalog(domain.Currency{}, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "reference currency")

	_, err = domain.NewCatalog(domain.DefaultReference(), []domain.Country{{}}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "countries[0]")

	_, err = domain.NewCatalog(domain.DefaultReference(), nil, []domain.Product{{}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "products[0]")
}

func TestCatalog_EmptyIsValid(t *testing.T) {
	cat, err := domain.NewCatalog(domain.DefaultReference(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, cat.Countries())
	assert.Empty(t, cat.Products())
}

func TestCatalog_WithSource(t *testing.T) {
	cat := sampleCatalog(t)
	sourced := cat.WithSource("/tmp/catalog.yaml")
	assert.Equal(t, "/tmp/catalog.yaml", sourced.Source())
	assert.Empty(t, cat.Source())
}

func TestCatalog_SelectProduct(t *testing.T) {
	cat := sampleCatalog(t)
	tests := []struct {
		selector string
		want     string
	}{
		{"1", "Apples"},
		{" 2 ", "Gouda cheese"},
		{"3", "Weihenstephan long-life milk"},
		{"apples", "Apples"},
		{"goudaCheese", "Gouda cheese"},
		{"GOUDA CHEESE", "Gouda cheese"},
		{"weihenstephan long life milk", "Weihenstephan long-life milk"},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			p, err := cat.SelectProduct(tt.selector)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Name())
		})
	}
}

func TestCatalog_SelectProduct_Invalid(t *testing.T) {
	cat := sampleCatalog(t)
	tests := []struct {
		selector string
		message  string
	}{
		{"0", "selection 0 out of range (1-3)"},
		{"4", "selection 4 out of range (1-3)"},
		{"-1", "selection -1 out of range (1-3)"},
		{"", "no product selected"},
		{"bananas", `no product named "bananas"`},
		{"---", `no product named "---"`},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			_, err := cat.SelectProduct(tt.selector)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestCatalog_SelectProduct_EmptyCatalog(t *testing.T) {
	cat, err := domain.NewCatalog(domain.DefaultReference(), nil, nil)
	require.NoError(t, err)
	_, err = cat.SelectProduct("1")
	assert.ErrorContains(t, err, "catalog has no products")
}

func TestCatalog_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(sampleCatalog(t))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"reference":{"code":"EUR","symbol":"€"}`)
	assert.Contains(t, string(data), `{"name":"Albania","tax_rate":"20","currency_symbol":"L","exchange_rate":"99.4"}`)
	assert.Contains(t, string(data), `{"name":"Apples","price":"1.55"}`)
}
