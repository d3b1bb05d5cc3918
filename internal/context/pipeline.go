// Package context - extraction pipeline
//
// PIPELINE ARCHITECTURE:
// The pipeline runs the extraction phases as a series of transformations
// over immutable input. Each phase is a stateless worker that:
//  1. Receives the per-run state
//  2. Reads the previous phase's output
//  3. Writes the next phase's input
//  4. Reports issues to the run's diagnostic bag
//
// Phase progression:
//
//	Entry -> Tokenize -> Parse -> Extract -> Exit
//
// Every run allocates its own token, AST and diagnostic buffers, so
// independent inputs may be processed concurrently with no locking.
package context

import (
	"fmt"
	"os"

	"dart2figma/internal/diagnostics"
	"dart2figma/internal/frontend/lexer"
	"dart2figma/internal/frontend/parser"
	"dart2figma/internal/widgets"
)

// Phase represents a phase in the extraction pipeline
type Phase int

const (
	PhaseTokenize Phase = iota
	PhaseParse
	PhaseExtract
)

// Options configures a pipeline.
type Options struct {
	Debug   bool
	Catalog *widgets.Catalog // nil means the built-in catalog
}

// Pipeline runs the extraction phases. A pipeline is immutable after
// construction and safe for concurrent Run calls.
type Pipeline struct {
	options Options
	catalog *widgets.Catalog
}

// NewPipeline creates an extraction pipeline with the given options.
func NewPipeline(options Options) *Pipeline {
	catalog := options.Catalog
	if catalog == nil {
		catalog = widgets.DefaultCatalog()
	}
	return &Pipeline{
		options: options,
		catalog: catalog,
	}
}

// Run executes Tokenize -> Parse -> Extract on one in-memory source text.
// It never returns an error: failures are data in the Result.
func (p *Pipeline) Run(filepath, src string) Result {
	bag := diagnostics.NewBag(filepath)
	result := Result{FilePath: filepath, Bag: bag}

	// Phase 1: Tokenize
	if p.options.Debug {
		fmt.Fprintf(os.Stderr, "[Phase 1] Tokenize %s (%d bytes)\n", filepath, len(src))
	}
	tokens := lexer.New(filepath, src, bag).Tokenize()
	if p.options.Debug {
		fmt.Fprintf(os.Stderr, "  Generated %d tokens\n", len(tokens))
	}

	// Phase 2: Parse
	if p.options.Debug {
		fmt.Fprintf(os.Stderr, "[Phase 2] Parse (%d tokens)\n", len(tokens))
	}
	result.Program = parser.Parse(tokens, filepath, bag)
	if p.options.Debug {
		fmt.Fprintf(os.Stderr, "  Generated %d top-level expressions\n", len(result.Program.Nodes))
	}

	// Phase 3: Extract
	if p.options.Debug {
		fmt.Fprintf(os.Stderr, "[Phase 3] Extract widgets\n")
	}
	result.Widgets = widgets.ExtractProgram(result.Program, p.catalog, bag)
	if p.options.Debug {
		fmt.Fprintf(os.Stderr, "  Extracted %d widget root(s)\n", len(result.Widgets))
	}

	result.finalize()
	return result
}

// RunFile reads a file and runs the pipeline on its contents. The returned
// error covers I/O only; extraction failures are data in the Result.
func (p *Pipeline) RunFile(path string) (Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return p.Run(path, string(content)), nil
}
