package ast

import "strings"

// ExprString renders an expression back to source-like text. The rendering
// is canonical, not byte-faithful: it is used for opaque expression
// references and debug output, and re-parses to an equivalent tree.
func ExprString(expr Expression) string {
	var sb strings.Builder
	writeExpr(&sb, expr)
	return sb.String()
}

func writeExpr(sb *strings.Builder, expr Expression) {
	switch e := expr.(type) {
	case *Identifier:
		sb.WriteString(e.Name)
	case *BasicLit:
		if e.Kind == STRING {
			sb.WriteByte('"')
			sb.WriteString(strings.NewReplacer("\\", "\\\\", "\"", "\\\"", "\n", "\\n").Replace(e.Value))
			sb.WriteByte('"')
		} else {
			sb.WriteString(e.Value)
		}
	case *PropertyAccess:
		writeExpr(sb, e.Target)
		sb.WriteByte('.')
		sb.WriteString(e.Property.Name)
	case *ConstructorCall:
		sb.WriteString(e.Callee)
		writeArgs(sb, e.Args)
	case *MethodCall:
		writeExpr(sb, e.Target)
		sb.WriteByte('.')
		sb.WriteString(e.Method.Name)
		writeArgs(sb, e.Args)
	case *ArrayLiteral:
		sb.WriteByte('[')
		for i, elem := range e.Elements {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeExpr(sb, elem)
		}
		sb.WriteByte(']')
	default:
		sb.WriteString("<expr>")
	}
}

func writeArgs(sb *strings.Builder, args []Argument) {
	sb.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		if named, ok := arg.(*NamedArg); ok {
			sb.WriteString(named.Name.Name)
			sb.WriteString(": ")
			writeExpr(sb, named.Value)
		} else {
			writeExpr(sb, arg.ValueExpr())
		}
	}
	sb.WriteByte(')')
}
