package context

import (
	"dart2figma/internal/diagnostics"
	"dart2figma/internal/frontend/ast"
	"dart2figma/internal/widgets"
)

// Result bundles one run's product with its diagnostics. Stages never
// throw across boundaries; everything a caller needs to present the run
// is carried here as data.
type Result struct {
	FilePath string
	Program  *ast.Program
	Widgets  []*widgets.Widget

	// Errors holds error-severity diagnostics, Warnings the warning
	// messages, both in recorded order. Bag retains every record for
	// full rendering.
	Errors   []*diagnostics.Diagnostic
	Warnings []string
	Bag      *diagnostics.Bag

	// Success is true iff no error-severity diagnostic was recorded for
	// a required construct. Unknown-widget fallbacks and opaque
	// references are warnings and do not clear it.
	Success bool
}

// Usable reports whether the run produced any widget tree at all, even one
// consisting solely of Unknown placeholders. A run is unusable only when
// parsing yielded an empty, diagnostic-only result.
func (r Result) Usable() bool {
	return len(r.Widgets) > 0
}

// WidgetCount returns the total widget node count across all roots.
func (r Result) WidgetCount() int {
	n := 0
	for _, root := range r.Widgets {
		n += root.Count()
	}
	return n
}

// finalize folds the bag into the result's error/warning views.
func (r *Result) finalize() {
	r.Errors = r.Bag.Errors()
	r.Warnings = r.Bag.Warnings()
	r.Success = !r.Bag.HasErrors()
}
