// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mason

// SkipTrivia consumes whitespace (space, tab, CR, LF) and line comments until
// the next rune that is neither. A line comment runs from "//" through the
// end of the line or the end of input.
func (c *Cursor) SkipTrivia() {
	for {
		if c.Matches(isSpace) {
			c.Advance()
		} else if !c.skipComment() {
			return
		}
	}
}

// SkipInlineSpace consumes spaces and tabs, but not line breaks.
func (c *Cursor) SkipInlineSpace() {
	for c.Matches(isInlineSpace) {
		c.Advance()
	}
}

// SkipSeparator consumes a separator between elements of a container, along
// with any trivia that follows it, and reports whether a separator was found.
//
// A separator is a comma, or one or more line breaks (LF or CRLF) optionally
// followed by a single comma. A line comment ends its line, so a comment
// following an element on the same line counts as a line break.
func (c *Cursor) SkipSeparator() bool {
	c.SkipInlineSpace()
	if c.Peek() == ',' {
		c.Advance()
		c.SkipTrivia()
		return true
	}

	var found bool
	switch c.Peek() {
	case '\n':
		c.Advance()
		found = true
	case '\r':
		if c.PeekNext() == '\n' {
			c.Advance()
			c.Advance()
			found = true
		}
	case '/':
		if c.skipComment() {
			// The comment is a line break unless it ran to the end of input.
			found = c.src.At(c.pos-1) == '\n'
		}
	}
	if !found {
		return false
	}
	c.SkipTrivia()
	if c.Peek() == ',' {
		c.Advance()
		c.SkipTrivia()
	}
	return true
}

// Identifier consumes and returns an identifier matching [A-Za-z_][A-Za-z0-9_]*.
// It reports an error if the current rune cannot begin an identifier.
func (c *Cursor) Identifier() (string, error) {
	start := c.pos
	if _, err := c.RequireClass(IsIdentStart, "identifier"); err != nil {
		return "", err
	}
	for c.Matches(IsIdentRune) {
		c.Advance()
	}
	return c.Text(start, c.pos), nil
}

// skipComment consumes a line comment at the current position, if there is
// one, including its terminating newline. It reports whether a comment was
// consumed.
func (c *Cursor) skipComment() bool {
	if c.Peek() != '/' || c.PeekNext() != '/' {
		return false
	}
	for {
		if r := c.Next(); r == '\n' || r == EOF {
			return true
		}
	}
}

// IsIdentStart reports whether ch may begin an identifier.
func IsIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// IsIdentRune reports whether ch may continue an identifier.
func IsIdentRune(ch rune) bool { return IsIdentStart(ch) || isDigit(ch) }

// IsNumberStart reports whether ch may begin a number.
func IsNumberStart(ch rune) bool { return ch == '-' || ch == '+' || isDigit(ch) }

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isInlineSpace(ch rune) bool { return ch == ' ' || ch == '\t' }
func isDigit(ch rune) bool       { return '0' <= ch && ch <= '9' }

// digitValue reports the value of ch as a digit in the given radix, using
// letters for digits above 9.
func digitValue(ch rune, radix int) (int, bool) {
	var v int
	switch {
	case isDigit(ch):
		v = int(ch - '0')
	case ch >= 'a' && ch <= 'z':
		v = int(ch-'a') + 10
	case ch >= 'A' && ch <= 'Z':
		v = int(ch-'A') + 10
	default:
		return 0, false
	}
	return v, v < radix
}
