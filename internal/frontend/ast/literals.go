package ast

import "dart2figma/internal/source"

type LiteralKind int

const (
	INT LiteralKind = iota
	FLOAT
	STRING
	BOOL
	NULL // represents the 'null' keyword
)

// BasicLit represents a literal of basic type (int, float, string, bool, null)
type BasicLit struct {
	Kind  LiteralKind
	Value string // the literal value as a string
	source.Location
}

func (b *BasicLit) INode()                {} // Implements Node interface
func (b *BasicLit) Expr()                 {} // Expr is a marker interface for all expressions
func (b *BasicLit) Loc() *source.Location { return &b.Location }

// ArrayLiteral represents a list literal: [elem, elem, ...]
// Element order is source order and is preserved through extraction.
type ArrayLiteral struct {
	Elements []Expression
	source.Location
}

func (a *ArrayLiteral) INode()                {}
func (a *ArrayLiteral) Expr()                 {}
func (a *ArrayLiteral) Loc() *source.Location { return &a.Location }
