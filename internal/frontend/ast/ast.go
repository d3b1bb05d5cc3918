// Package ast defines the node variants for the widget-expression subset.
// Trees are built once by the parser and never mutated afterwards; every
// node carries its source location for diagnostics.
package ast

import "dart2figma/internal/source"

// Node is implemented by every AST node
type Node interface {
	INode()
	Loc() *source.Location
}

// Expression is a marker interface for all expressions
type Expression interface {
	Node
	Expr()
}

// Argument is a marker interface for constructor/method arguments
type Argument interface {
	Node
	Arg()

	// Value returns the argument's value expression.
	ValueExpr() Expression
}

// Program is the root node: an ordered sequence of top-level expressions.
type Program struct {
	FullPath string
	Nodes    []Expression
	source.Location
}

func (p *Program) INode()                {}
func (p *Program) Loc() *source.Location { return &p.Location }

// ConstructorCalls returns every constructor call reachable from the
// program root in depth-first source order.
func (p *Program) ConstructorCalls() []*ConstructorCall {
	calls := make([]*ConstructorCall, 0)
	for _, node := range p.Nodes {
		calls = append(calls, collectCalls(node)...)
	}
	return calls
}

func collectCalls(node Node) []*ConstructorCall {
	if node == nil {
		return nil
	}

	var calls []*ConstructorCall
	switch n := node.(type) {
	case *ConstructorCall:
		calls = append(calls, n)
		for _, arg := range n.Args {
			calls = append(calls, collectCalls(arg.ValueExpr())...)
		}
	case *MethodCall:
		calls = append(calls, collectCalls(n.Target)...)
		for _, arg := range n.Args {
			calls = append(calls, collectCalls(arg.ValueExpr())...)
		}
	case *PropertyAccess:
		calls = append(calls, collectCalls(n.Target)...)
	case *ArrayLiteral:
		for _, elem := range n.Elements {
			calls = append(calls, collectCalls(elem)...)
		}
	}
	return calls
}
