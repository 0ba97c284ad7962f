package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "PRICECALC"

// Settings holds process-level configuration read from PRICECALC_* variables.
type Settings struct {
	Catalog   string `envconfig:"CATALOG"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"logfmt"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := envconfig.Process(envPrefix, &s); err != nil {
		return Settings{}, fmt.Errorf("reading environment: %w", err)
	}
	return s, nil
}

// CatalogPath returns flagValue when set, falling back to PRICECALC_CATALOG.
func (s Settings) CatalogPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return s.Catalog
}
