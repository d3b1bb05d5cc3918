package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dart2figma/internal/diagnostics"
	"dart2figma/internal/frontend/ast"
	"dart2figma/internal/frontend/parser"
)

const testFile = "test.dart"

// extract runs the full tokenize-parse-extract pipeline with the built-in
// catalog and returns the widget roots with the run's bag.
func extract(t *testing.T, src string) ([]*Widget, *diagnostics.Bag) {
	t.Helper()
	program, bag := parser.ParseSource(testFile, src)
	roots := ExtractProgram(program, DefaultCatalog(), bag)
	return roots, bag
}

// extractOne expects exactly one widget root.
func extractOne(t *testing.T, src string) (*Widget, *diagnostics.Bag) {
	t.Helper()
	roots, bag := extract(t, src)
	require.Len(t, roots, 1)
	return roots[0], bag
}

// codesOf collects the diagnostic codes recorded in a bag.
func codesOf(bag *diagnostics.Bag) []string {
	diags := bag.Diagnostics()
	codes := make([]string, len(diags))
	for i, diag := range diags {
		codes[i] = diag.Code
	}
	return codes
}

// TestExtractContainerWithChild tests classification, property resolution
// and the child slot for the canonical wrapper shape
func TestExtractContainerWithChild(t *testing.T) {
	root, bag := extractOne(t, `Container(color: "red", child: Text("hi"))`)

	assert.False(t, bag.HasErrors())
	assert.Equal(t, "Container", root.Type)
	assert.Equal(t, "red", root.Properties["color"])
	assert.NotContains(t, root.Properties, "child", "child argument must become a child widget, not a property")

	require.Len(t, root.Children, 1)
	child := root.Children[0]
	assert.Equal(t, "Text", child.Type)
	assert.Equal(t, "child", child.Slot)
	assert.Equal(t, "hi", child.Properties["text"], "positional argument maps to its named slot")
}

// TestExtractStyleProjection tests that style-relevant properties are
// copied into the style view without leaving the property map
func TestExtractStyleProjection(t *testing.T) {
	root, _ := extractOne(t, `Container(color: "red", width: 100, tag: "x")`)

	assert.Equal(t, "red", root.Properties["color"])
	assert.Equal(t, "red", root.Style["color"])
	assert.Equal(t, int64(100), root.Properties["width"])
	assert.Equal(t, int64(100), root.Style["width"])

	assert.Equal(t, "x", root.Properties["tag"])
	assert.NotContains(t, root.Style, "tag")
}

// TestExtractUnknownWidget tests graceful degradation for an
// unclassifiable constructor
func TestExtractUnknownWidget(t *testing.T) {
	root, bag := extractOne(t, "Foo(bar: 1,)")

	assert.True(t, root.IsUnknown())
	assert.Equal(t, UnknownType, root.Type)
	assert.Equal(t, int64(1), root.Properties["bar"])

	assert.False(t, bag.HasErrors(), "an unknown widget degrades, it does not fail the run")
	widgetDiags := bag.ByCategory(diagnostics.Widget)
	require.Len(t, widgetDiags, 1)
	assert.Equal(t, diagnostics.CodeUnknownWidget, widgetDiags[0].Code)
}

// TestExtractChildrenOrder tests that array children keep source order
func TestExtractChildrenOrder(t *testing.T) {
	root, bag := extractOne(t, `Column(children: [Text("a"), Text("b"), Text("c")])`)

	assert.False(t, bag.HasErrors())
	require.Len(t, root.Children, 3)
	texts := make([]string, 3)
	for i, child := range root.Children {
		assert.Equal(t, "Text", child.Type)
		assert.Equal(t, "children", child.Slot)
		texts[i] = child.Properties["text"].(string)
	}
	assert.Equal(t, []string{"a", "b", "c"}, texts)
}

// TestExtractScalarValues tests literal value resolution into Go types
func TestExtractScalarValues(t *testing.T) {
	root, _ := extractOne(t, `Foo(s: "str", i: 42, f: 2.5, n: -3, b: true, z: null)`)

	assert.Equal(t, "str", root.Properties["s"])
	assert.Equal(t, int64(42), root.Properties["i"])
	assert.Equal(t, 2.5, root.Properties["f"])
	assert.Equal(t, int64(-3), root.Properties["n"])
	assert.Equal(t, true, root.Properties["b"])
	assert.Contains(t, root.Properties, "z")
	assert.Nil(t, root.Properties["z"])
}

// TestExtractPositionalOverflow tests synthetic argN keys for positional
// arguments beyond the kind's mapping
func TestExtractPositionalOverflow(t *testing.T) {
	root, bag := extractOne(t, `Text("hi", "extra")`)

	assert.Equal(t, "hi", root.Properties["text"])
	assert.Equal(t, "extra", root.Properties["arg1"])
	assert.Contains(t, codesOf(bag), diagnostics.CodeUnmappedPositionalArg)
	assert.False(t, bag.HasErrors())
}

// TestExtractOpaqueReference tests that unresolvable constant expressions
// are preserved as references instead of dropped
func TestExtractOpaqueReference(t *testing.T) {
	root, bag := extractOne(t, "Container(color: Colors.red)")

	ref, ok := root.Properties["color"].(ExprRef)
	require.True(t, ok, "expected an opaque reference, got %T", root.Properties["color"])
	assert.Equal(t, "Colors.red", ref.Text)
	require.NotNil(t, ref.Span)

	styleRef, ok := root.Style["color"].(ExprRef)
	require.True(t, ok)
	assert.Equal(t, ref.Text, styleRef.Text)

	assert.Contains(t, codesOf(bag), diagnostics.CodeOpaqueExpression)
	assert.False(t, bag.HasErrors())
}

// TestExtractHelperConstructorValue tests that a non-widget constructor in
// value position stays a property, not a child
func TestExtractHelperConstructorValue(t *testing.T) {
	root, bag := extractOne(t, `Padding(padding: EdgeInsets.all(8), child: Text("x"))`)

	assert.Equal(t, "Padding", root.Type)
	ref, ok := root.Properties["padding"].(ExprRef)
	require.True(t, ok)
	assert.Equal(t, "EdgeInsets.all(8)", ref.Text)

	require.Len(t, root.Children, 1)
	assert.Equal(t, "Text", root.Children[0].Type)
	assert.False(t, bag.HasErrors())
}

// TestExtractKnownWidgetInsideOpaqueValue tests the rescue walk: widgets
// buried inside an opaque value still surface as children
func TestExtractKnownWidgetInsideOpaqueValue(t *testing.T) {
	root, bag := extractOne(t, `Container(decoration: Fancy(inner: Text("x")))`)

	_, ok := root.Properties["decoration"].(ExprRef)
	assert.True(t, ok, "the opaque wrapper is kept as a reference")

	require.Len(t, root.Children, 1)
	rescued := root.Children[0]
	assert.Equal(t, "Text", rescued.Type)
	assert.Equal(t, "decoration", rescued.Slot)
	assert.False(t, bag.HasErrors())
}

// TestExtractMixedChildArray tests non-widget elements in a child-bearing
// array: widgets become children, leftovers stay a property with a warning
func TestExtractMixedChildArray(t *testing.T) {
	root, bag := extractOne(t, `Column(children: [Text("a"), 42])`)

	require.Len(t, root.Children, 1)
	assert.Equal(t, "Text", root.Children[0].Type)

	leftovers, ok := root.Properties["children"].([]Value)
	require.True(t, ok)
	require.Len(t, leftovers, 1)
	assert.Equal(t, int64(42), leftovers[0])

	assert.Contains(t, codesOf(bag), diagnostics.CodeMalformedArgument)
	assert.False(t, bag.HasErrors())
}

// TestExtractCustomChildProp tests a kind whose child slot is not named
// child or children
func TestExtractCustomChildProp(t *testing.T) {
	root, bag := extractOne(t, "MaterialApp(home: Scaffold())")

	assert.False(t, bag.HasErrors())
	assert.Equal(t, "MaterialApp", root.Type)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "Scaffold", root.Children[0].Type)
	assert.Equal(t, "home", root.Children[0].Slot)
}

// TestExtractMethodCallChainAtTopLevel tests that widgets reachable only
// through a top-level method call still surface as roots, with the chain
// itself reported as opaque
func TestExtractMethodCallChainAtTopLevel(t *testing.T) {
	roots, bag := extract(t, `Text("hi").copyWith(size: 12)`)

	require.Len(t, roots, 1)
	assert.Equal(t, "Text", roots[0].Type)
	assert.Equal(t, "hi", roots[0].Properties["text"])

	assert.Contains(t, codesOf(bag), diagnostics.CodeOpaqueExpression)
	assert.False(t, bag.HasErrors())
}

// TestExtractWidgetInMethodCallArguments tests the rescue walk through a
// method call's target and arguments
func TestExtractWidgetInMethodCallArguments(t *testing.T) {
	roots, bag := extract(t, `Helper().wrap(child: Text("x"))`)

	require.Len(t, roots, 1)
	assert.Equal(t, "Text", roots[0].Type)
	assert.Contains(t, codesOf(bag), diagnostics.CodeOpaqueExpression)
}

// TestExtractNonWidgetTopLevel tests that a top-level expression with no
// reachable widget is never dropped silently
func TestExtractNonWidgetTopLevel(t *testing.T) {
	roots, bag := extract(t, "Colors.red")

	assert.Empty(t, roots)
	require.NotEmpty(t, bag.Diagnostics(), "a skipped expression must leave a trace")
	assert.Contains(t, codesOf(bag), diagnostics.CodeOpaqueExpression)
	assert.False(t, bag.HasErrors())
}

// TestExtractUnknownValueConstructor pins the policy for a non-widget
// constructor in value position: an opaque reference with a CONVERSION
// diagnostic, not an Unknown child with a WIDGET diagnostic
func TestExtractUnknownValueConstructor(t *testing.T) {
	root, bag := extractOne(t, "Container(padding: MyPad(8))")

	ref, ok := root.Properties["padding"].(ExprRef)
	require.True(t, ok)
	assert.Equal(t, "MyPad(8)", ref.Text)
	assert.Empty(t, root.Children)

	assert.Empty(t, bag.ByCategory(diagnostics.Widget))
	conversion := bag.ByCategory(diagnostics.Conversion)
	require.Len(t, conversion, 1)
	assert.Equal(t, diagnostics.CodeOpaqueExpression, conversion[0].Code)
	assert.False(t, bag.HasErrors())
}

// TestExtractMultipleRoots tests one widget root per top-level call
func TestExtractMultipleRoots(t *testing.T) {
	roots, bag := extract(t, `Text("a"); Text("b")`)

	assert.False(t, bag.HasErrors())
	require.Len(t, roots, 2)
	assert.Equal(t, "a", roots[0].Properties["text"])
	assert.Equal(t, "b", roots[1].Properties["text"])
}

// TestExtractDepthBound tests that a programmatically deep tree degrades
// at the recursion limit instead of recursing without bound
func TestExtractDepthBound(t *testing.T) {
	call := &ast.ConstructorCall{Callee: "Text"}
	for range 80 {
		call = &ast.ConstructorCall{
			Callee: "Container",
			Args: []ast.Argument{
				&ast.NamedArg{Name: &ast.Identifier{Name: "child"}, Value: call},
			},
		}
	}

	bag := diagnostics.NewBag(testFile)
	root := ExtractCall(call, DefaultCatalog(), bag)

	require.NotNil(t, root)
	assert.Equal(t, "Container", root.Type)
	assert.Contains(t, codesOf(bag), diagnostics.CodeNestingTooDeep)

	// the subtree at the bound is preserved as an opaque reference
	node := root
	for len(node.Children) > 0 {
		node = node.Children[0]
	}
	assert.Contains(t, node.Properties, "$expr")
}

// TestWidgetCount tests node counting across children
func TestWidgetCount(t *testing.T) {
	root, _ := extractOne(t, `Column(children: [Text("a"), Container(child: Text("b"))])`)

	assert.Equal(t, 4, root.Count())
}
