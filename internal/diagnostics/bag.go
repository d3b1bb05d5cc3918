package diagnostics

import (
	"fmt"
	"io"
	"sync"
)

// Bag collects diagnostics during a single pipeline run. A bag is created
// per run; concurrent runs on independent inputs each get their own.
type Bag struct {
	diagnostics []*Diagnostic
	filepath    string
	mu          sync.Mutex
	errorCount  int
	warnCount   int
}

// NewBag creates a new diagnostic bag for a file
func NewBag(filepath string) *Bag {
	return &Bag{
		diagnostics: make([]*Diagnostic, 0),
		filepath:    filepath,
	}
}

// Add adds a diagnostic to the bag
func (b *Bag) Add(diag *Diagnostic) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.diagnostics = append(b.diagnostics, diag)

	if diag.FilePath == "" {
		diag.FilePath = b.filepath
	}

	switch diag.Severity {
	case Error:
		b.errorCount++
	case Warning:
		b.warnCount++
	}
}

// HasErrors returns true if there are any error-severity diagnostics
func (b *Bag) HasErrors() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errorCount > 0
}

// ErrorCount returns the number of errors
func (b *Bag) ErrorCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errorCount
}

// WarningCount returns the number of warnings
func (b *Bag) WarningCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.warnCount
}

// Diagnostics returns all diagnostics in the order they were recorded
func (b *Bag) Diagnostics() []*Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*Diagnostic, len(b.diagnostics))
	copy(out, b.diagnostics)
	return out
}

// Errors returns the error-severity diagnostics in recorded order
func (b *Bag) Errors() []*Diagnostic {
	return b.bySeverity(Error)
}

// Warnings returns the warning messages in recorded order. Warnings are
// strings in the result protocol; the full records stay in the bag.
func (b *Bag) Warnings() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]string, 0, b.warnCount)
	for _, diag := range b.diagnostics {
		if diag.Severity == Warning {
			out = append(out, fmt.Sprintf("[%s:%s] %s", diag.Category, diag.Code, diag.Message))
		}
	}
	return out
}

// ByCategory returns all diagnostics of the given category in recorded order
func (b *Bag) ByCategory(category Category) []*Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]*Diagnostic, 0)
	for _, diag := range b.diagnostics {
		if diag.Category == category {
			out = append(out, diag)
		}
	}
	return out
}

func (b *Bag) bySeverity(severity Severity) []*Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]*Diagnostic, 0)
	for _, diag := range b.diagnostics {
		if diag.Severity == severity {
			out = append(out, diag)
		}
	}
	return out
}

// EmitAllToWriter renders all diagnostics to a writer
func (b *Bag) EmitAllToWriter(w io.Writer) {
	emitter := NewEmitterWithWriter(w)

	b.mu.Lock()
	diagnostics := make([]*Diagnostic, len(b.diagnostics))
	copy(diagnostics, b.diagnostics)
	filepath := b.filepath
	errorCount := b.errorCount
	warnCount := b.warnCount
	b.mu.Unlock()

	for _, diag := range diagnostics {
		emitter.Emit(filepath, diag)
	}

	if errorCount > 0 || warnCount > 0 {
		printSummary(w, errorCount, warnCount)
	}
}

// FilePath returns the file this bag was created for
func (b *Bag) FilePath() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filepath
}

// Clear removes all diagnostics
func (b *Bag) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.diagnostics = make([]*Diagnostic, 0)
	b.errorCount = 0
	b.warnCount = 0
}

func printSummary(w io.Writer, errorCount, warnCount int) {
	if errorCount > 0 {
		fmt.Fprintf(w, "\nExtraction finished with %d error(s)", errorCount)
		if warnCount > 0 {
			fmt.Fprintf(w, " and %d warning(s)", warnCount)
		}
		fmt.Fprintln(w)
	} else if warnCount > 0 {
		fmt.Fprintf(w, "\nExtraction finished with %d warning(s)\n", warnCount)
	}
}
