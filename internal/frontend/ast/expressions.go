package ast

import "dart2figma/internal/source"

// Identifier represents a bare name
type Identifier struct {
	Name string
	source.Location
}

func (i *Identifier) INode()                {}
func (i *Identifier) Expr()                 {}
func (i *Identifier) Loc() *source.Location { return &i.Location }

// ConstructorCall represents Name(args) or Qualified.Name(args), the
// expression form a widget is declared with. Callee keeps the dotted
// spelling exactly as written.
type ConstructorCall struct {
	Callee string
	Args   []Argument
	Const  bool // preceded by 'const' or 'new'
	source.Location
}

func (c *ConstructorCall) INode()                {}
func (c *ConstructorCall) Expr()                 {}
func (c *ConstructorCall) Loc() *source.Location { return &c.Location }

// PropertyAccess represents target.property where the chain is not a call
// (enum members, constant references such as Colors.red).
type PropertyAccess struct {
	Target   Expression
	Property *Identifier
	source.Location
}

func (p *PropertyAccess) INode()                {}
func (p *PropertyAccess) Expr()                 {}
func (p *PropertyAccess) Loc() *source.Location { return &p.Location }

// MethodCall represents target.method(args) where target is itself an
// expression rather than a bare constructor name.
type MethodCall struct {
	Target Expression
	Method *Identifier
	Args   []Argument
	source.Location
}

func (m *MethodCall) INode()                {}
func (m *MethodCall) Expr()                 {}
func (m *MethodCall) Loc() *source.Location { return &m.Location }

// NamedArg represents name: value inside an argument list
type NamedArg struct {
	Name  *Identifier
	Value Expression
	source.Location
}

func (n *NamedArg) INode()                {}
func (n *NamedArg) Arg()                  {}
func (n *NamedArg) ValueExpr() Expression { return n.Value }
func (n *NamedArg) Loc() *source.Location { return &n.Location }

// PositionalArg represents a plain value inside an argument list
type PositionalArg struct {
	Value Expression
	source.Location
}

func (p *PositionalArg) INode()                {}
func (p *PositionalArg) Arg()                  {}
func (p *PositionalArg) ValueExpr() Expression { return p.Value }
func (p *PositionalArg) Loc() *source.Location { return &p.Location }
