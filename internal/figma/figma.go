// Package figma declares the boundary to the downstream node-creation
// collaborator. The core produces widget trees and diagnostics; turning
// them into design-tool primitives (frames, groups, variable bindings) is
// entirely the collaborator's concern, so this package holds types only.
package figma

import "dart2figma/internal/widgets"

// NodeType identifies a design-tool primitive.
type NodeType string

const (
	NodeFrame     NodeType = "FRAME"
	NodeGroup     NodeType = "GROUP"
	NodeText      NodeType = "TEXT"
	NodeRectangle NodeType = "RECTANGLE"
)

// NodeSpec is one design-tool node the collaborator should create.
type NodeSpec struct {
	Type     NodeType       `json:"type"`
	Name     string         `json:"name"`
	Props    map[string]any `json:"props,omitempty"`
	Children []NodeSpec     `json:"children,omitempty"`
}

// ThemeLookup resolves style values (colors, spacing tokens) against a
// loaded theme. Resolution failures are the collaborator's to report,
// using the shared diagnostic taxonomy (THEME / VARIABLE categories).
type ThemeLookup interface {
	Resolve(property, value string) (string, bool)
}

// Builder converts an extracted widget tree into node specifications. The
// core makes no assumption about the translation beyond the Widget shape.
type Builder interface {
	Build(root *widgets.Widget, theme ThemeLookup) ([]NodeSpec, error)
}
