package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dart2figma/internal/config"
	"dart2figma/internal/context"
)

// ErrNoInput is returned when the extract command receives no files.
var ErrNoInput = errors.New("no input files. Pass one or more .dart files")

// ErrNothingExtracted indicates that no run produced a usable widget tree.
var ErrNothingExtracted = errors.New("no widget tree could be extracted")

// ExtractCommand holds configuration and dependencies for the extract command.
type ExtractCommand struct {
	configPath string
	format     string
	verbose    bool
	noColor    bool
	out        io.Writer
	errOut     io.Writer
}

// NewExtractCommand creates the extract command.
func NewExtractCommand() *cobra.Command {
	ec := &ExtractCommand{out: os.Stdout, errOut: os.Stderr}

	cmd := &cobra.Command{
		Use:   "extract [files...]",
		Short: "Extract widget trees from Dart widget source",
		Long: `Extract tokenizes, parses and extracts the widget tree of each input
file, then prints the trees and reports any diagnostics. Malformed input
degrades to partial trees instead of aborting.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return ec.Run(args)
		},
	}

	cmd.Flags().StringVarP(&ec.configPath, "config", "c", "", "config file path")
	cmd.Flags().StringVarP(&ec.format, "format", "f", "", "output format: text or json")
	cmd.Flags().BoolVarP(&ec.verbose, "verbose", "v", false, "verbose phase output")
	cmd.Flags().BoolVar(&ec.noColor, "no-color", false, "disable colored output")

	return cmd
}

// Run executes the extract command against the given file paths.
func (ec *ExtractCommand) Run(args []string) error {
	if len(args) == 0 {
		return ErrNoInput
	}

	cfg, err := config.LoadConfig(ec.configPath)
	if err != nil {
		return err
	}
	if ec.format != "" {
		cfg.Output.Format = ec.format
	}
	if ec.verbose {
		cfg.Output.Verbose = true
	}
	if ec.noColor || cfg.Output.NoColor {
		color.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	catalog, err := config.BuildCatalog(cfg)
	if err != nil {
		return err
	}

	ctx := context.New(context.Options{
		Debug:   cfg.Output.Verbose,
		Catalog: catalog,
	})

	for _, path := range args {
		if _, err := ctx.LoadFile(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = len(args)
	}
	RunExtractPhase(ctx, workers)

	usable := false
	for _, file := range ctx.GetAllFiles() {
		if err := ec.report(file, cfg.Output.Format); err != nil {
			return err
		}
		if file.Result.Usable() {
			usable = true
		}
	}

	if !usable {
		return ErrNothingExtracted
	}
	return nil
}

func (ec *ExtractCommand) report(file *context.SourceFile, format string) error {
	result := file.Result

	// diagnostics first, so trees stay last on screen
	if len(result.Errors) > 0 || len(result.Warnings) > 0 {
		result.Bag.EmitAllToWriter(ec.errOut)
	}

	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(ec.out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"file":    file.Path,
			"widgets": result.Widgets,
			"success": result.Success,
		})
	default:
		fmt.Fprintf(ec.out, "%s (%d widget(s))\n", file.Path, result.WidgetCount())
		for _, root := range result.Widgets {
			renderTree(ec.out, root, 0)
		}
		return nil
	}
}
