package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestLoadConfigDefaults tests that an empty config file leaves defaults
func TestLoadConfigDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.yaml", "")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.False(t, cfg.Output.NoColor)
	assert.False(t, cfg.Output.Verbose)
	assert.Empty(t, cfg.Catalog.Extensions)
	assert.Zero(t, cfg.Workers)
}

// TestLoadConfigFromFile tests reading explicit settings
func TestLoadConfigFromFile(t *testing.T) {
	content := `
output:
  format: json
  verbose: true
workers: 4
catalog:
  extensions:
    - widgets.yaml
`
	path := writeFile(t, t.TempDir(), "conf.yaml", content)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.True(t, cfg.Output.Verbose)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, []string{"widgets.yaml"}, cfg.Catalog.Extensions)
}

// TestLoadConfigInvalidFormat tests validation of the output format
func TestLoadConfigInvalidFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "conf.yaml", "output:\n  format: xml\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

// TestValidate tests the config invariants directly
func TestValidate(t *testing.T) {
	cfg := &Config{Output: OutputConfig{Format: FormatText}}
	assert.NoError(t, cfg.Validate())

	cfg.Workers = -1
	assert.Error(t, cfg.Validate())

	cfg.Workers = 0
	cfg.Output.Format = "csv"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidFormat)
}

// TestLoadCatalogExtension tests parsing and applying an extension file
func TestLoadCatalogExtension(t *testing.T) {
	content := `
widgets:
  - name: Badge
    positional: [label]
    child_prop: child
  - name: Carousel
    child_prop: children
style_properties: [glow]
`
	path := writeFile(t, t.TempDir(), "ext.yaml", content)

	ext, err := LoadCatalogExtension(path)
	require.NoError(t, err)
	require.Len(t, ext.Widgets, 2)

	cat, err := BuildCatalog(&Config{Catalog: CatalogConfig{Extensions: []string{path}}})
	require.NoError(t, err)

	badge, ok := cat.Lookup("Badge")
	require.True(t, ok)
	assert.Equal(t, []string{"label"}, badge.Positional)
	assert.Equal(t, "child", badge.ChildProp)

	carousel, ok := cat.Lookup("Carousel")
	require.True(t, ok)
	assert.Equal(t, "children", carousel.ChildProp)

	assert.True(t, cat.IsStyleProperty("glow"))

	// built-ins survive extension
	_, ok = cat.Lookup("Container")
	assert.True(t, ok)
}

// TestLoadCatalogExtensionEmptyName tests rejection of a nameless entry
func TestLoadCatalogExtensionEmptyName(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ext.yaml", "widgets:\n  - positional: [x]\n")

	_, err := LoadCatalogExtension(path)
	assert.Error(t, err)
}

// TestLoadCatalogExtensionMissingFile tests the I/O error path
func TestLoadCatalogExtensionMissingFile(t *testing.T) {
	_, err := LoadCatalogExtension("/nonexistent/ext.yaml")
	assert.Error(t, err)

	_, err = BuildCatalog(&Config{Catalog: CatalogConfig{Extensions: []string{"/nonexistent/ext.yaml"}}})
	assert.Error(t, err)
}
