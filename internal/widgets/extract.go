package widgets

import (
	"fmt"
	"strconv"

	"dart2figma/internal/diagnostics"
	"dart2figma/internal/frontend/ast"
)

// maxExtractDepth bounds the extraction walk the same way the parser
// bounds its own recursion.
const maxExtractDepth = 64

// ExtractProgram walks every top-level expression of a program and returns
// one widget per top-level constructor call, in source order. Recognized
// constructors buried in other top-level expressions (method-call chains,
// property accesses) become roots too. Extraction never fails: unresolvable
// situations degrade to Unknown widgets, opaque references, or diagnostics
// in the bag.
func ExtractProgram(program *ast.Program, cat *Catalog, bag *diagnostics.Bag) []*Widget {
	ex := &extractor{cat: cat, bag: bag, filepath: program.FullPath}

	roots := make([]*Widget, 0, len(program.Nodes))
	for _, node := range program.Nodes {
		call, ok := node.(*ast.ConstructorCall)
		if !ok {
			// a non-constructor top level expression is reported as opaque,
			// and any recognized widgets reachable through it still surface
			ex.bag.Add(diagnostics.OpaqueExpression(ex.filepath, node.Loc(), ast.ExprString(node)))
			for _, nested := range knownCallsIn(node, ex.cat) {
				roots = append(roots, ex.extractCall(nested, 0))
			}
			continue
		}
		roots = append(roots, ex.extractCall(call, 0))
	}
	return roots
}

// ExtractCall extracts the widget tree rooted at a single constructor call.
func ExtractCall(call *ast.ConstructorCall, cat *Catalog, bag *diagnostics.Bag) *Widget {
	ex := &extractor{cat: cat, bag: bag, filepath: bag.FilePath()}
	return ex.extractCall(call, 0)
}

type extractor struct {
	cat      *Catalog
	bag      *diagnostics.Bag
	filepath string
}

func (ex *extractor) extractCall(call *ast.ConstructorCall, depth int) *Widget {
	widget := NewWidget(UnknownType, call.Loc())

	if depth >= maxExtractDepth {
		ex.bag.Add(diagnostics.NestingTooDeep(ex.filepath, call.Loc(), maxExtractDepth))
		widget.Properties["$expr"] = ExprRef{Text: ast.ExprString(call), Span: call.Loc()}
		return widget
	}

	kind, known := ex.cat.Lookup(call.Callee)
	if known {
		widget.Type = kind.Name
	} else {
		ex.bag.Add(diagnostics.UnknownWidget(ex.filepath, call.Loc(), call.Callee))
	}

	positional := 0
	for _, arg := range call.Args {
		switch a := arg.(type) {
		case *ast.NamedArg:
			ex.resolveProperty(widget, kind, a.Name.Name, a.Value, depth)

		case *ast.PositionalArg:
			name := ""
			if positional < len(kind.Positional) {
				name = kind.Positional[positional]
			} else {
				name = fmt.Sprintf("arg%d", positional)
				ex.bag.Add(diagnostics.UnmappedPositionalArgument(ex.filepath, a.Loc(), widget.Type, positional))
			}
			positional++
			ex.resolveProperty(widget, kind, name, a.Value, depth)
		}
	}

	// style projection: a copy, never a move
	for name, value := range widget.Properties {
		if ex.cat.IsStyleProperty(name) {
			widget.Style[name] = value
		}
	}

	return widget
}

// resolveProperty resolves one argument value into either child widgets or
// a property value, keyed by name.
func (ex *extractor) resolveProperty(parent *Widget, kind Kind, name string, value ast.Expression, depth int) {
	childBearing := name == kind.ChildProp || name == "child" || name == "children"

	switch v := value.(type) {
	case *ast.ConstructorCall:
		_, known := ex.cat.Lookup(v.Callee)
		if childBearing || known {
			child := ex.extractCall(v, depth+1)
			child.Slot = name
			parent.Children = append(parent.Children, child)
			return
		}
		// value-position constructor that is not a widget: keep it opaque
		// but still surface any recognized widgets buried in its arguments
		ex.opaqueValue(parent, name, v)
		for _, nested := range nestedKnownCalls(v, ex.cat) {
			child := ex.extractCall(nested, depth+1)
			child.Slot = name
			parent.Children = append(parent.Children, child)
		}

	case *ast.ArrayLiteral:
		leftovers := make([]Value, 0)
		for _, elem := range v.Elements {
			call, isCall := elem.(*ast.ConstructorCall)
			if isCall && childBearing {
				child := ex.extractCall(call, depth+1)
				child.Slot = name
				parent.Children = append(parent.Children, child)
				continue
			}
			if isCall {
				if _, known := ex.cat.Lookup(call.Callee); known {
					child := ex.extractCall(call, depth+1)
					child.Slot = name
					parent.Children = append(parent.Children, child)
					continue
				}
			}
			leftovers = append(leftovers, ex.resolveScalar(elem))
		}
		if len(leftovers) > 0 {
			if childBearing {
				ex.bag.Add(diagnostics.MalformedArgument(ex.filepath, v.Loc(), parent.Type))
			}
			parent.Properties[name] = leftovers
		}

	default:
		parent.Properties[name] = ex.resolveScalar(value)
	}
}

// resolveScalar resolves a non-widget expression to a literal value or an
// opaque expression reference.
func (ex *extractor) resolveScalar(expr ast.Expression) Value {
	lit, ok := expr.(*ast.BasicLit)
	if !ok {
		ref := ExprRef{Text: ast.ExprString(expr), Span: expr.Loc()}
		ex.bag.Add(diagnostics.OpaqueExpression(ex.filepath, expr.Loc(), ref.Text))
		return ref
	}

	switch lit.Kind {
	case ast.STRING:
		return lit.Value
	case ast.BOOL:
		return lit.Value == "true"
	case ast.NULL:
		return nil
	case ast.INT:
		n, err := strconv.ParseInt(lit.Value, 10, 64)
		if err != nil {
			return lit.Value
		}
		return n
	case ast.FLOAT:
		f, err := strconv.ParseFloat(lit.Value, 64)
		if err != nil {
			return lit.Value
		}
		return f
	default:
		return lit.Value
	}
}

func (ex *extractor) opaqueValue(parent *Widget, name string, expr ast.Expression) {
	ref := ExprRef{Text: ast.ExprString(expr), Span: expr.Loc()}
	ex.bag.Add(diagnostics.OpaqueExpression(ex.filepath, expr.Loc(), ref.Text))
	parent.Properties[name] = ref
}

// nestedKnownCalls returns recognized constructor calls buried inside the
// arguments of an opaque value call, in source order.
func nestedKnownCalls(call *ast.ConstructorCall, cat *Catalog) []*ast.ConstructorCall {
	var found []*ast.ConstructorCall
	for _, arg := range call.Args {
		found = append(found, knownCallsIn(arg.ValueExpr(), cat)...)
	}
	return found
}

func knownCallsIn(expr ast.Expression, cat *Catalog) []*ast.ConstructorCall {
	switch e := expr.(type) {
	case *ast.ConstructorCall:
		if _, known := cat.Lookup(e.Callee); known {
			return []*ast.ConstructorCall{e}
		}
		return nestedKnownCalls(e, cat)
	case *ast.ArrayLiteral:
		var found []*ast.ConstructorCall
		for _, elem := range e.Elements {
			found = append(found, knownCallsIn(elem, cat)...)
		}
		return found
	case *ast.MethodCall:
		found := knownCallsIn(e.Target, cat)
		for _, arg := range e.Args {
			found = append(found, knownCallsIn(arg.ValueExpr(), cat)...)
		}
		return found
	case *ast.PropertyAccess:
		return knownCallsIn(e.Target, cat)
	default:
		return nil
	}
}
