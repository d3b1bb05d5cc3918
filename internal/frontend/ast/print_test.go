package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ident(name string) *Identifier {
	return &Identifier{Name: name}
}

// TestExprString tests the canonical rendering of each expression shape
func TestExprString(t *testing.T) {
	tests := []struct {
		name string
		expr Expression
		want string
	}{
		{
			"identifier",
			ident("Colors"),
			"Colors",
		},
		{
			"string literal escaped",
			&BasicLit{Kind: STRING, Value: `say "hi"`},
			`"say \"hi\""`,
		},
		{
			"number literal",
			&BasicLit{Kind: FLOAT, Value: "2.5"},
			"2.5",
		},
		{
			"property access",
			&PropertyAccess{Target: ident("Colors"), Property: ident("red")},
			"Colors.red",
		},
		{
			"constructor call with named args",
			&ConstructorCall{
				Callee: "Container",
				Args: []Argument{
					&NamedArg{Name: ident("color"), Value: &PropertyAccess{Target: ident("Colors"), Property: ident("red")}},
					&NamedArg{Name: ident("child"), Value: &ConstructorCall{
						Callee: "Text",
						Args:   []Argument{&PositionalArg{Value: &BasicLit{Kind: STRING, Value: "hi"}}},
					}},
				},
			},
			`Container(color: Colors.red, child: Text("hi"))`,
		},
		{
			"method call",
			&MethodCall{
				Target: &ConstructorCall{Callee: "Text", Args: []Argument{&PositionalArg{Value: &BasicLit{Kind: STRING, Value: "a"}}}},
				Method: ident("copyWith"),
				Args:   []Argument{&NamedArg{Name: ident("size"), Value: &BasicLit{Kind: INT, Value: "12"}}},
			},
			`Text("a").copyWith(size: 12)`,
		},
		{
			"array literal",
			&ArrayLiteral{Elements: []Expression{
				&BasicLit{Kind: INT, Value: "1"},
				ident("x"),
			}},
			"[1, x]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExprString(tt.expr))
		})
	}
}

// TestProgramConstructorCalls tests depth-first call collection across
// arguments, arrays and access chains
func TestProgramConstructorCalls(t *testing.T) {
	program := &Program{
		Nodes: []Expression{
			&ConstructorCall{
				Callee: "Column",
				Args: []Argument{
					&NamedArg{Name: ident("children"), Value: &ArrayLiteral{Elements: []Expression{
						&ConstructorCall{Callee: "Text"},
						&ConstructorCall{Callee: "Container", Args: []Argument{
							&NamedArg{Name: ident("child"), Value: &ConstructorCall{Callee: "Icon"}},
						}},
					}}},
				},
			},
			&PropertyAccess{Target: &ConstructorCall{Callee: "Theme"}, Property: ident("primary")},
		},
	}

	names := []string{}
	for _, call := range program.ConstructorCalls() {
		names = append(names, call.Callee)
	}
	assert.Equal(t, []string{"Column", "Text", "Container", "Icon", "Theme"}, names)
}
