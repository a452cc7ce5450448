package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Printer renders an expression tree in fully parenthesized prefix form,
// making the structure the parser chose visible at a glance:
// -123 * (45.67) renders as (* (- 123) (group 45.67)).
type Printer struct{}

// Print renders the tree rooted at expr
func (p Printer) Print(expr Expr) string {
	switch e := expr.(type) {
	case *Binary:
		return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Grouping:
		return p.parenthesize("group", e.Expression)
	case *Literal:
		return formatLiteral(e.Value)
	case *Unary:
		return p.parenthesize(e.Operator.Lexeme, e.Right)
	default:
		return fmt.Sprintf("<unknown %T>", expr)
	}
}

func (p Printer) parenthesize(name string, exprs ...Expr) string {
	var out strings.Builder

	out.WriteString("(")
	out.WriteString(name)
	for _, expr := range exprs {
		out.WriteString(" ")
		out.WriteString(p.Print(expr))
	}
	out.WriteString(")")

	return out.String()
}

// formatLiteral writes a literal value the way source code would.
// Numbers use the shortest decimal form, so 123.0 prints as 123.
func formatLiteral(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
