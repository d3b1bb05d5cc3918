package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"dart2figma/internal/frontend/lexer"
)

// NewTokensCommand creates the tokens debug command, which dumps the token
// stream of an input file together with any lexer diagnostics.
func NewTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return dumpTokens(os.Stdout, os.Stderr, args[0])
		},
	}
}

func dumpTokens(out, errOut io.Writer, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	tokens, bag := lexer.Tokenize(path, string(content))
	for _, tok := range tokens {
		fmt.Fprintf(out, "%4d:%-3d %-14s %q\n", tok.Start.Line, tok.Start.Column, tok.Kind, tok.Value)
	}

	if bag.ErrorCount() > 0 || bag.WarningCount() > 0 {
		bag.EmitAllToWriter(errOut)
	}
	return nil
}
