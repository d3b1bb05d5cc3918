// Package widgets turns parsed constructor-call trees into the semantic
// widget model consumed by the downstream node-creation layer.
package widgets

import (
	"encoding/json"

	"dart2figma/internal/source"
)

// UnknownType is the fallback classification for constructors the catalog
// cannot match. An Unknown widget preserves structure; it never aborts a walk.
const UnknownType = "Unknown"

// Value is a resolved property value: string, float64, int64, bool, nil,
// []Value, *Widget, or ExprRef.
type Value any

// ExprRef preserves a constant expression that could not be resolved to a
// literal (enum members, color constants, helper constructors). Downstream
// layers interpret the text on a best-effort basis.
type ExprRef struct {
	Text string
	Span *source.Location
}

// MarshalJSON renders an opaque reference as {"$expr": "..."} so consumers
// can tell references apart from plain strings.
func (r ExprRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"$expr": r.Text})
}

// Widget is one extracted UI element: its declared type, resolved
// properties, the style projection, and its children in source order.
type Widget struct {
	Type       string           `json:"type"`
	Properties map[string]Value `json:"properties,omitempty"`
	Style      map[string]Value `json:"style,omitempty"`
	Children   []*Widget        `json:"children,omitempty"`
	Slot       string           `json:"slot,omitempty"` // property that linked this child (child, children, appBar, ...)
	Span       *source.Location `json:"-"`
}

// NewWidget creates an empty widget of the given type.
func NewWidget(typ string, span *source.Location) *Widget {
	return &Widget{
		Type:       typ,
		Properties: make(map[string]Value),
		Style:      make(map[string]Value),
		Children:   make([]*Widget, 0),
		Span:       span,
	}
}

// IsUnknown reports whether this widget is a fallback placeholder.
func (w *Widget) IsUnknown() bool {
	return w.Type == UnknownType
}

// Count returns the number of widget nodes in the tree rooted here.
func (w *Widget) Count() int {
	n := 1
	for _, child := range w.Children {
		n += child.Count()
	}
	for _, v := range w.Properties {
		if nested, ok := v.(*Widget); ok {
			n += nested.Count()
		}
	}
	return n
}
