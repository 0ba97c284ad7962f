package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsCommand(t *testing.T) {
	cmd, out, _ := newTestCmd(t, "products")
	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Contains(t, text, "Available Products:")
	assert.Contains(t, text, "1. Apples")
	assert.Contains(t, text, "(€1.55)")
	assert.Contains(t, text, "10. ")
}

func TestProductsCommand_JSON(t *testing.T) {
	path := writeCatalog(t, smallCatalog)
	cmd, out, _ := newTestCmd(t, "products", "--json", "--catalog", path)
	require.NoError(t, cmd.Execute())

	var products []map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &products))
	require.Len(t, products, 2)
	assert.Equal(t, "Flour", products[0]["name"])
	assert.Equal(t, "1.2", products[0]["price"])
}

func TestProductsCommand_EmptyCatalog(t *testing.T) {
	path := writeCatalog(t, "countries: []\n")
	cmd, out, _ := newTestCmd(t, "products", "--catalog", path)
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "No products in catalog.")
}

func TestCountriesCommand(t *testing.T) {
	cmd, out, _ := newTestCmd(t, "countries")
	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Contains(t, text, "Rate per 1 EUR")
	assert.Contains(t, text, "Bosnia and Herzegovina")
	assert.Contains(t, text, "99.4")
}

func TestCountriesCommand_JSON(t *testing.T) {
	path := writeCatalog(t, smallCatalog)
	cmd, out, _ := newTestCmd(t, "countries", "--json", "--catalog", path)
	require.NoError(t, cmd.Execute())

	var countries []map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &countries))
	require.Len(t, countries, 2)
	assert.Equal(t, "Ireland", countries[0]["name"])
	assert.Equal(t, "1", countries[0]["exchange_rate"])
	assert.Equal(t, "61.69", countries[1]["exchange_rate"])
}

func TestVersionCommand(t *testing.T) {
	cmd, out, _ := newTestCmd(t, "version")
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "pricecalc dev (none)")
}
