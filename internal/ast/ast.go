// Package ast defines the syntax tree produced by the parser.
package ast

import "github.com/tjarratt/golox/internal/token"

// Expr represents an expression node in the syntax tree.
// Nodes keep the operator tokens they were built from, so later stages
// can point diagnostics back at a source line.
type Expr interface {
	exprNode()
}

// Binary represents an infix operation like a + b
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (b *Binary) exprNode() { /* marker method for Expr interface */ }

// Grouping represents a parenthesized expression
type Grouping struct {
	Expression Expr
}

func (g *Grouping) exprNode() { /* marker method for Expr interface */ }

// Literal represents a constant value in the source.
// Value holds float64 for numbers, string for strings, bool for the
// boolean keywords, and nil for nil, matching token literal values.
type Literal struct {
	Value interface{}
}

func (l *Literal) exprNode() { /* marker method for Expr interface */ }

// Unary represents a prefix operation like -x or !ok
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (u *Unary) exprNode() { /* marker method for Expr interface */ }
