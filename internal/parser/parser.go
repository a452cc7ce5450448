// Package parser builds expression trees from scanned token sequences.
package parser

import (
	"fmt"

	"github.com/tjarratt/golox/internal/ast"
	"github.com/tjarratt/golox/internal/errors"
	"github.com/tjarratt/golox/internal/token"
)

// Parser implements recursive descent over a token sequence, one method
// per precedence level. Syntax errors are reported against the offending
// token and unwind to Parse.
type Parser struct {
	tokens   []token.Token
	current  int
	reporter *errors.Reporter
}

// New creates a parser over a scanned token sequence.
// The sequence must end with an EOF token.
func New(tokens []token.Token, reporter *errors.Reporter) *Parser {
	return &Parser{
		tokens:   tokens,
		reporter: reporter,
	}
}

// Parse parses a single expression spanning the whole token sequence.
// On a syntax error the diagnostic has already been recorded on the
// reporter and Parse returns nil.
func (p *Parser) Parse() ast.Expr {
	expr, err := p.expression()
	if err != nil {
		return nil
	}

	return expr
}

// expression -> equality
func (p *Parser) expression() (ast.Expr, error) {
	return p.equality()
}

// equality -> comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}

	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		operator := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

// comparison -> term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		operator := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

// term -> factor ( ( "-" | "+" ) factor )*
func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.match(token.MINUS, token.PLUS) {
		operator := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

// factor -> unary ( ( "/" | "*" ) unary )*
func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}

	for p.match(token.SLASH, token.STAR) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

// unary -> ( "!" | "-" ) unary | primary
func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.BANG, token.MINUS) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: operator, Right: right}, nil
	}

	return p.primary()
}

// primary -> NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: false}, nil
	case p.match(token.TRUE):
		return &ast.Literal{Value: true}, nil
	case p.match(token.NIL):
		return &ast.Literal{Value: nil}, nil
	case p.match(token.NUMBER, token.STRING):
		return &ast.Literal{Value: p.previous().Literal}, nil
	case p.match(token.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.consume(token.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Expression: expr}, nil
	}

	return nil, p.errorAt(p.peek(), "Expect expression.")
}

// match consumes the next token when it has one of the given types
func (p *Parser) match(types ...token.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}

	return false
}

// consume advances past an expected token, or reports message against
// the token actually found
func (p *Parser) consume(expected token.TokenType, message string) error {
	if p.check(expected) {
		p.advance()
		return nil
	}

	return p.errorAt(p.peek(), message)
}

// check reports whether the next token has the given type
func (p *Parser) check(t token.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

// advance consumes the next token. The EOF token is never consumed, so
// peek stays valid after any number of calls.
func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// errorAt records a diagnostic against tok and returns the error that
// unwinds the descent
func (p *Parser) errorAt(tok token.Token, message string) error {
	p.reporter.ReportToken(tok, message)
	return fmt.Errorf("parse error at line %d: %s", tok.Line, message)
}
