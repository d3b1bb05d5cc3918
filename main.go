// Package main provides the entry point for the dart2figma CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dart2figma/internal/cmd"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "dart2figma",
		Short: "dart2figma - widget tree extraction for design tools",
		Long: `dart2figma converts declarative widget source into typed widget trees
that a design-tool renderer can turn into frames and groups.

Commands:
  extract   Parse files and print their widget trees
  tokens    Dump the token stream of one file
  catalog   Show the known widget-type table`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(cmd.NewExtractCommand())
	rootCmd.AddCommand(cmd.NewTokensCommand())
	rootCmd.AddCommand(cmd.NewCatalogCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "dart2figma %s\n", version)
		},
	}
}
