// Package source defines position metadata carried by tokens, AST nodes
// and diagnostics.
package source

import "fmt"

// Position is a single point in a source file.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based byte offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Location is a half-open span between two positions.
type Location struct {
	Start Position
	End   Position
}

// NewLocation creates a location from start and end positions.
func NewLocation(start, end *Position) *Location {
	loc := &Location{}
	if start != nil {
		loc.Start = *start
	}
	if end != nil {
		loc.End = *end
	}
	return loc
}

func (l *Location) String() string {
	if l == nil {
		return "<unknown>"
	}
	return l.Start.String()
}

// Spans reports whether the location covers a non-empty range.
func (l *Location) Spans() bool {
	if l == nil {
		return false
	}
	return l.End.Offset > l.Start.Offset
}
