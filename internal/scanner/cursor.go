package scanner

// cursor tracks a read position over an immutable source buffer.
// start marks the beginning of the lexeme currently being scanned, current
// the offset of the next unconsumed byte, and line the 1-based line number,
// which the scanner bumps whenever it consumes a newline.
type cursor struct {
	source  string
	start   int
	current int
	line    int
}

func newCursor(source string) *cursor {
	return &cursor{source: source, line: 1}
}

// advance consumes and returns the next byte.
// Callers must check isAtEnd first.
func (c *cursor) advance() byte {
	ch := c.source[c.current]
	c.current++
	return ch
}

// peek returns the next unconsumed byte without consuming it, or 0 at end of input
func (c *cursor) peek() byte {
	if c.isAtEnd() {
		return 0
	}
	return c.source[c.current]
}

// peekNext looks one byte past peek, returning 0 past end of input
func (c *cursor) peekNext() byte {
	if c.current+1 >= len(c.source) {
		return 0
	}
	return c.source[c.current+1]
}

// match consumes the next byte only if it equals expected
func (c *cursor) match(expected byte) bool {
	if c.isAtEnd() || c.source[c.current] != expected {
		return false
	}
	c.current++
	return true
}

// isAtEnd reports whether the whole buffer has been consumed
func (c *cursor) isAtEnd() bool {
	return c.current >= len(c.source)
}

// lexeme returns the source text between start and current
func (c *cursor) lexeme() string {
	return c.source[c.start:c.current]
}
