// Package scanner converts raw source text into a flat token sequence.
// Scanning never aborts: lexical errors go to a diagnostic reporter and the
// scan continues with the next byte, so one pass surfaces every error.
package scanner

import (
	"strconv"

	"github.com/tjarratt/golox/internal/errors"
	"github.com/tjarratt/golox/internal/token"
)

// charClass is the category a byte falls into for dispatch purposes
type charClass int

const (
	classSingle charClass = iota // unambiguous single-byte punctuation
	classPaired                  // ! = < > which may pair with a following =
	classSlash                   // division or the start of a comment
	classBlank                   // space, carriage return, tab
	classNewline
	classQuote
	classDigit
	classAlpha // letter or underscore
	classOther // nothing the language recognizes
)

// singleTokens maps unambiguous punctuation bytes to their token type
var singleTokens = map[byte]token.TokenType{
	'(': token.LEFT_PAREN,
	')': token.RIGHT_PAREN,
	'{': token.LEFT_BRACE,
	'}': token.RIGHT_BRACE,
	',': token.COMMA,
	'.': token.DOT,
	'-': token.MINUS,
	'+': token.PLUS,
	';': token.SEMICOLON,
	'*': token.STAR,
}

// pairedTokens maps the four operator bytes that form a longer token when
// an equals sign follows to both of their readings
var pairedTokens = map[byte]struct {
	alone     token.TokenType
	withEqual token.TokenType
}{
	'!': {token.BANG, token.BANG_EQUAL},
	'=': {token.EQUAL, token.EQUAL_EQUAL},
	'<': {token.LESS, token.LESS_EQUAL},
	'>': {token.GREATER, token.GREATER_EQUAL},
}

// classify assigns a byte to the category that drives scanToken.
// Punctuation stays data-driven through the two tables above, so a new
// token type is a table entry rather than another branch.
func classify(ch byte) charClass {
	switch {
	case ch == '/':
		return classSlash
	case ch == ' ' || ch == '\r' || ch == '\t':
		return classBlank
	case ch == '\n':
		return classNewline
	case ch == '"':
		return classQuote
	case isDigit(ch):
		return classDigit
	case isAlpha(ch):
		return classAlpha
	}
	if _, ok := singleTokens[ch]; ok {
		return classSingle
	}
	if _, ok := pairedTokens[ch]; ok {
		return classPaired
	}
	return classOther
}

// Scanner turns one source buffer into the full token sequence.
// A Scanner is scoped to a single buffer and is not reusable.
type Scanner struct {
	cur       *cursor
	startLine int
	tokens    []token.Token
	reporter  *errors.Reporter
}

// New creates a scanner for the given source.
// Lexical errors are recorded on reporter; they never stop the scan.
func New(source string, reporter *errors.Reporter) *Scanner {
	return &Scanner{
		cur:      newCursor(source),
		reporter: reporter,
	}
}

// ScanTokens consumes the whole buffer and returns the token sequence.
// The sequence always ends with exactly one EOF token, even when the
// source produced errors or nothing at all.
func (s *Scanner) ScanTokens() []token.Token {
	for !s.cur.isAtEnd() {
		s.cur.start = s.cur.current
		s.startLine = s.cur.line
		s.scanToken()
	}

	s.tokens = append(s.tokens, token.Token{Type: token.EOF, Line: s.cur.line})
	return s.tokens
}

// scanToken consumes one lexeme and appends at most one token for it
func (s *Scanner) scanToken() {
	ch := s.cur.advance()

	switch classify(ch) {
	case classSingle:
		s.addToken(singleTokens[ch], nil)
	case classPaired:
		pair := pairedTokens[ch]
		if s.cur.match('=') {
			s.addToken(pair.withEqual, nil)
		} else {
			s.addToken(pair.alone, nil)
		}
	case classSlash:
		s.slash()
	case classBlank:
		// consumed, nothing to emit
	case classNewline:
		s.cur.line++
	case classQuote:
		s.scanString()
	case classDigit:
		s.scanNumber()
	case classAlpha:
		s.scanIdentifier()
	default:
		s.reporter.Report(s.cur.line, "", "Unexpected character.")
	}
}

// slash emits a SLASH token or swallows a line or block comment
func (s *Scanner) slash() {
	switch {
	case s.cur.match('/'):
		s.lineComment()
	case s.cur.match('*'):
		s.blockComment()
	default:
		s.addToken(token.SLASH, nil)
	}
}

// lineComment consumes up to, but not including, the next newline.
// The newline itself is left for the main loop so the line count stays right.
func (s *Scanner) lineComment() {
	for s.cur.peek() != '\n' && !s.cur.isAtEnd() {
		s.cur.advance()
	}
}

// blockComment consumes through the first */ terminator. Block comments do
// not nest: an inner /* is plain comment text. Hitting end of input first is
// an unterminated comment, reported at the line where the scan stopped.
func (s *Scanner) blockComment() {
	for !s.cur.isAtEnd() {
		if s.cur.peek() == '*' && s.cur.peekNext() == '/' {
			s.cur.advance()
			s.cur.advance()
			return
		}
		if s.cur.peek() == '\n' {
			s.cur.line++
		}
		s.cur.advance()
	}

	s.reporter.Report(s.cur.line, "", "Unterminated block comment.")
}

// scanString consumes a string literal. Strings may span lines and have no
// escape sequences; the literal value is the raw text between the quotes.
func (s *Scanner) scanString() {
	for s.cur.peek() != '"' && !s.cur.isAtEnd() {
		if s.cur.peek() == '\n' {
			s.cur.line++
		}
		s.cur.advance()
	}

	if s.cur.isAtEnd() {
		s.reporter.Report(s.cur.line, "", "Unterminated string.")
		return
	}

	s.cur.advance() // the closing quote

	value := s.cur.source[s.cur.start+1 : s.cur.current-1]
	s.addToken(token.STRING, value)
}

// scanNumber consumes a digit run with an optional fractional part.
// A trailing dot is not consumed: a dot joins the number only when another
// digit follows it, so "123." scans as a number then a DOT.
func (s *Scanner) scanNumber() {
	for isDigit(s.cur.peek()) {
		s.cur.advance()
	}

	if s.cur.peek() == '.' && isDigit(s.cur.peekNext()) {
		s.cur.advance()
		for isDigit(s.cur.peek()) {
			s.cur.advance()
		}
	}

	// The lexeme shape guarantees ParseFloat succeeds
	value, _ := strconv.ParseFloat(s.cur.lexeme(), 64)
	s.addToken(token.NUMBER, value)
}

// scanIdentifier consumes an identifier and resolves reserved words
func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.cur.peek()) {
		s.cur.advance()
	}

	s.addToken(token.LookupIdent(s.cur.lexeme()), nil)
}

// addToken appends a token for the current lexeme, attributed to the line
// the lexeme started on
func (s *Scanner) addToken(tokenType token.TokenType, literal interface{}) {
	s.tokens = append(s.tokens, token.Token{
		Type:    tokenType,
		Lexeme:  s.cur.lexeme(),
		Literal: literal,
		Line:    s.startLine,
	})
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isAlphaNumeric(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}
