package cmd

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"dart2figma/internal/config"
)

// NewCatalogCommand creates the catalog command, which prints the widget
// kinds and style properties the extractor recognizes, including any
// configured extensions.
func NewCatalogCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the known widget-type table",
		RunE: func(_ *cobra.Command, _ []string) error {
			return printCatalog(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file path")

	return cmd
}

func printCatalog(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	cat, err := config.BuildCatalog(cfg)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Widget", "Positional slots", "Child property"})

	for _, name := range cat.KindNames() {
		kind, _ := cat.Lookup(name)
		t.AppendRow(table.Row{
			kind.Name,
			strings.Join(kind.Positional, ", "),
			kind.ChildProp,
		})
	}
	t.Render()

	style := table.NewWriter()
	style.SetOutputMirror(os.Stdout)
	style.AppendHeader(table.Row{"Style properties"})
	style.AppendRow(table.Row{strings.Join(cat.StylePropertyNames(), ", ")})
	style.Render()

	return nil
}
