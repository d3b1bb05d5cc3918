// Package cmd implements the CLI command handlers.
package cmd

import (
	"fmt"
	"os"
	"sync"

	"dart2figma/internal/context"
)

// RunExtractPhase runs the full pipeline for all registered files, fanning
// out across workers. Files are independent, so each worker operates on
// its own SourceFile with its own diagnostic bag.
func RunExtractPhase(ctx *context.Context, workers int) {
	files := ctx.GetAllFiles()

	if workers <= 1 || len(files) <= 1 {
		ctx.RunAll()
		return
	}

	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "\n[Extract] %d file(s) across %d workers\n", len(files), workers)
	}

	jobs := make(chan *context.SourceFile)
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range jobs {
				ctx.RunOne(file)
			}
		}()
	}

	for _, file := range files {
		jobs <- file
	}
	close(jobs)

	wg.Wait()

	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "  ✓ Processed %d file(s)\n", len(files))
	}
}
