package widgets

import "sort"

// Kind describes one known widget constructor: how its positional
// arguments map to property names and which property carries its children.
type Kind struct {
	Name string

	// Positional is the ordered positional-slot-to-property mapping.
	// Positional arguments beyond the list are retained under synthetic
	// argN keys with a VALIDATION diagnostic.
	Positional []string

	// ChildProp names the child-bearing property: "child" for single-child
	// wrappers, "children" for multi-child layouts, empty for leaves.
	ChildProp string
}

// Catalog is the known-widget-type table. It is pure data: classification
// looks the callee up here, and extensions add kinds or style properties
// without changing extractor code.
type Catalog struct {
	kinds      map[string]Kind
	styleProps map[string]bool
}

// styleProperties is the fixed subset of property names projected into a
// widget's style view.
var styleProperties = []string{
	"color",
	"backgroundColor",
	"foregroundColor",
	"width",
	"height",
	"padding",
	"margin",
	"alignment",
	"mainAxisAlignment",
	"crossAxisAlignment",
	"mainAxisSize",
	"fontSize",
	"fontWeight",
	"fontStyle",
	"fontFamily",
	"textAlign",
	"borderRadius",
	"border",
	"elevation",
	"decoration",
	"fit",
	"gap",
	"spacing",
	"opacity",
	"style",
}

// builtinKinds covers the common widget constructor set. Order here is
// cosmetic; lookup is by name.
var builtinKinds = []Kind{
	{Name: "Container", ChildProp: "child"},
	{Name: "Padding", ChildProp: "child"},
	{Name: "Center", ChildProp: "child"},
	{Name: "Align", ChildProp: "child"},
	{Name: "SizedBox", ChildProp: "child"},
	{Name: "Expanded", ChildProp: "child"},
	{Name: "Flexible", ChildProp: "child"},
	{Name: "Card", ChildProp: "child"},
	{Name: "ClipRRect", ChildProp: "child"},
	{Name: "DecoratedBox", ChildProp: "child"},
	{Name: "GestureDetector", ChildProp: "child"},
	{Name: "SafeArea", ChildProp: "child"},
	{Name: "Scaffold"},
	{Name: "AppBar"},
	{Name: "Row", ChildProp: "children"},
	{Name: "Column", ChildProp: "children"},
	{Name: "Stack", ChildProp: "children"},
	{Name: "Wrap", ChildProp: "children"},
	{Name: "ListView", ChildProp: "children"},
	{Name: "GridView", ChildProp: "children"},
	{Name: "Text", Positional: []string{"text"}},
	{Name: "Icon", Positional: []string{"icon"}},
	{Name: "Image", Positional: []string{"src"}},
	{Name: "Image.asset", Positional: []string{"src"}},
	{Name: "Image.network", Positional: []string{"src"}},
	{Name: "ElevatedButton", ChildProp: "child"},
	{Name: "TextButton", ChildProp: "child"},
	{Name: "OutlinedButton", ChildProp: "child"},
	{Name: "IconButton"},
	{Name: "FloatingActionButton", ChildProp: "child"},
	{Name: "TextField"},
	{Name: "Divider"},
	{Name: "Spacer"},
	{Name: "CircleAvatar", ChildProp: "child"},
	{Name: "ListTile"},
	{Name: "Positioned", ChildProp: "child"},
	{Name: "MaterialApp", ChildProp: "home"},
	{Name: "App", ChildProp: "child"},
}

// DefaultCatalog returns the built-in widget-type table.
func DefaultCatalog() *Catalog {
	cat := &Catalog{
		kinds:      make(map[string]Kind, len(builtinKinds)),
		styleProps: make(map[string]bool, len(styleProperties)),
	}
	for _, kind := range builtinKinds {
		cat.kinds[kind.Name] = kind
	}
	for _, name := range styleProperties {
		cat.styleProps[name] = true
	}
	return cat
}

// Lookup classifies a callee name. The second result reports a match;
// callers fall back to UnknownType when it is false.
func (c *Catalog) Lookup(callee string) (Kind, bool) {
	kind, ok := c.kinds[callee]
	return kind, ok
}

// IsStyleProperty reports whether a property name belongs to the style
// projection subset.
func (c *Catalog) IsStyleProperty(name string) bool {
	return c.styleProps[name]
}

// AddKind registers or replaces a widget kind.
func (c *Catalog) AddKind(kind Kind) {
	c.kinds[kind.Name] = kind
}

// AddStyleProperty adds a property name to the style projection subset.
func (c *Catalog) AddStyleProperty(name string) {
	c.styleProps[name] = true
}

// KindNames returns all known constructor names, sorted.
func (c *Catalog) KindNames() []string {
	names := make([]string, 0, len(c.kinds))
	for name := range c.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StylePropertyNames returns the style projection subset, sorted.
func (c *Catalog) StylePropertyNames() []string {
	names := make([]string, 0, len(c.styleProps))
	for name := range c.styleProps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
