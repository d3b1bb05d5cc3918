package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dart2figma/internal/widgets"
)

// CatalogExtension is the YAML document shape for catalog extension files:
//
//	widgets:
//	  - name: Badge
//	    positional: [label]
//	    child_prop: child
//	style_properties: [glow]
type CatalogExtension struct {
	Widgets         []WidgetKindSpec `yaml:"widgets"`
	StyleProperties []string         `yaml:"style_properties"`
}

// WidgetKindSpec describes one widget kind added by an extension file.
type WidgetKindSpec struct {
	Name       string   `yaml:"name"`
	Positional []string `yaml:"positional"`
	ChildProp  string   `yaml:"child_prop"`
}

// LoadCatalogExtension parses a YAML extension file.
func LoadCatalogExtension(path string) (*CatalogExtension, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog extension: %w", err)
	}

	var ext CatalogExtension
	if err := yaml.Unmarshal(data, &ext); err != nil {
		return nil, fmt.Errorf("parse catalog extension %s: %w", path, err)
	}

	for _, spec := range ext.Widgets {
		if spec.Name == "" {
			return nil, fmt.Errorf("catalog extension %s: widget entry with empty name", path)
		}
	}

	return &ext, nil
}

// Apply merges the extension into a catalog. Extensions add or replace
// kinds and add style properties; they never remove built-ins.
func (ext *CatalogExtension) Apply(cat *widgets.Catalog) {
	for _, spec := range ext.Widgets {
		cat.AddKind(widgets.Kind{
			Name:       spec.Name,
			Positional: spec.Positional,
			ChildProp:  spec.ChildProp,
		})
	}
	for _, name := range ext.StyleProperties {
		cat.AddStyleProperty(name)
	}
}

// BuildCatalog returns the built-in catalog with every configured
// extension file applied.
func BuildCatalog(cfg *Config) (*widgets.Catalog, error) {
	cat := widgets.DefaultCatalog()
	for _, path := range cfg.Catalog.Extensions {
		ext, err := LoadCatalogExtension(path)
		if err != nil {
			return nil, err
		}
		ext.Apply(cat)
	}
	return cat, nil
}
