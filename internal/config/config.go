package config

import (
	"errors"
	"fmt"
)

// Format names for extraction output.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config is the top-level configuration struct for dart2figma.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Workers int           `mapstructure:"workers"`
}

// OutputConfig holds presentation settings for the CLI.
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
	Verbose bool   `mapstructure:"verbose"`
}

// CatalogConfig points at optional widget-catalog extension files.
type CatalogConfig struct {
	Extensions []string `mapstructure:"extensions"`
}

// ErrInvalidFormat indicates an unsupported output format name.
var ErrInvalidFormat = errors.New("invalid output format")

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatJSON, FormatText:
	default:
		return fmt.Errorf("%w: %q (expected %q or %q)", ErrInvalidFormat, c.Output.Format, FormatJSON, FormatText)
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}

	return nil
}
