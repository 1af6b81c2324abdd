// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mason

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"go4.org/mem"
)

// EOF is the value reported by Peek and PeekNext at the end of the input.
const EOF rune = -1

var (
	// ErrTooDeep is the cause reported when containers nest beyond the
	// permitted depth.
	ErrTooDeep = errors.New("nesting too deep")

	// ErrInvalidText is the cause reported when the input is not valid UTF-8.
	ErrInvalidText = errors.New("input is not valid UTF-8")
)

// A Cursor holds a complete input text and a scan position within it.
// The position only moves forward. All failures in the parser are reported
// by the Cursor as a *SyntaxError carrying the position where they occurred.
//
// A Cursor is not safe for concurrent use, but distinct cursors share no
// state.
type Cursor struct {
	src mem.RO
	pos int // byte offset of the current rune
}

// NewCursor constructs a Cursor positioned at the start of text.
func NewCursor(text string) *Cursor { return &Cursor{src: mem.S(text)} }

// NewCursorBytes constructs a Cursor positioned at the start of data. The
// caller must not modify data while the cursor is in use.
func NewCursorBytes(data []byte) *Cursor { return &Cursor{src: mem.B(data)} }

// Pos returns the current byte offset of c.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total length of the input in bytes.
func (c *Cursor) Len() int { return c.src.Len() }

// AtEOF reports whether c has consumed all its input.
func (c *Cursor) AtEOF() bool { return c.pos >= c.src.Len() }

// Validate reports an error at the first offset where the input is not valid
// UTF-8, or nil if the whole input is valid text.
func (c *Cursor) Validate() error {
	for i := 0; i < c.src.Len(); {
		r, n := mem.DecodeRune(c.src.SliceFrom(i))
		if r == utf8.RuneError && n <= 1 {
			return c.errorAt(i, ErrInvalidText, "invalid UTF-8 byte %#02x", c.src.At(i))
		}
		i += n
	}
	return nil
}

// Peek returns the rune at the current position without consuming it, or EOF.
func (c *Cursor) Peek() rune {
	r, _ := c.runeAt(c.pos)
	return r
}

// PeekNext returns the rune following the current one, or EOF.
func (c *Cursor) PeekNext() rune {
	_, n := c.runeAt(c.pos)
	r, _ := c.runeAt(c.pos + n)
	return r
}

// Advance consumes the current rune. It has no effect at the end of input.
func (c *Cursor) Advance() {
	_, n := c.runeAt(c.pos)
	c.pos += n
}

// Next consumes and returns the current rune, or returns EOF.
func (c *Cursor) Next() rune {
	r, n := c.runeAt(c.pos)
	c.pos += n
	return r
}

// Matches reports whether the current rune satisfies f.
// It reports false at the end of input.
func (c *Cursor) Matches(f func(rune) bool) bool {
	r := c.Peek()
	return r != EOF && f(r)
}

// Require consumes the current rune if it equals want, or reports an error.
func (c *Cursor) Require(want rune) error {
	_, err := c.RequireClass(func(r rune) bool { return r == want }, fmt.Sprintf("%q", want))
	return err
}

// RequireClass consumes and returns the current rune if it satisfies f,
// otherwise it reports an error mentioning label.
func (c *Cursor) RequireClass(f func(rune) bool, label string) (rune, error) {
	switch r := c.Peek(); {
	case r == EOF:
		return 0, c.EOFError(label)
	case !f(r):
		return 0, c.Errorf("got %q, want %s", r, label)
	default:
		c.Advance()
		return r, nil
	}
}

// Text returns a copy of the input text between offsets pos and end.
func (c *Cursor) Text(pos, end int) string {
	return c.src.SliceFrom(pos).SliceTo(end - pos).StringCopy()
}

// Location returns the complete location of the span from pos to end.
func (c *Cursor) Location(pos, end int) Location {
	return Location{
		Span:  Span{Pos: pos, End: end},
		First: c.lineCol(pos),
		Last:  c.lineCol(end),
	}
}

// Errorf reports a syntax error at the current position.
func (c *Cursor) Errorf(msg string, args ...any) error {
	return c.errorAt(c.pos, nil, msg, args...)
}

// ErrorAt reports a syntax error at offset pos, wrapping cause if non-nil.
func (c *Cursor) ErrorAt(pos int, cause error, msg string, args ...any) error {
	return c.errorAt(pos, cause, msg, args...)
}

// EOFError reports an unexpected end of input at the current position while
// waiting for the item described by want.
func (c *Cursor) EOFError(want string) error {
	return c.errorAt(c.pos, io.ErrUnexpectedEOF, "unexpected end of input, want %s", want)
}

func (c *Cursor) errorAt(pos int, cause error, msg string, args ...any) error {
	return &SyntaxError{
		Offset:     runeCount(c.src.SliceTo(min(pos, c.src.Len()))),
		ByteOffset: pos,
		Location:   c.lineCol(pos),
		Message:    fmt.Sprintf(msg, args...),
		err:        cause,
	}
}

func (c *Cursor) runeAt(pos int) (rune, int) {
	if pos >= c.src.Len() {
		return EOF, 0
	}
	if b := c.src.At(pos); b < utf8.RuneSelf {
		return rune(b), 1
	}
	return mem.DecodeRune(c.src.SliceFrom(pos))
}

// lineCol computes the line and rune column of byte offset pos.
func (c *Cursor) lineCol(pos int) LineCol {
	lc := LineCol{Line: 1}
	if pos > c.src.Len() {
		pos = c.src.Len()
	}
	head := c.src.SliceTo(pos)
	for {
		i := mem.IndexByte(head, '\n')
		if i < 0 {
			break
		}
		lc.Line++
		head = head.SliceFrom(i + 1)
	}
	lc.Column = runeCount(head)
	return lc
}

// runeCount reports the number of runes in m. Each invalid byte counts as
// one rune, as in utf8.RuneCount.
func runeCount(m mem.RO) int {
	var n int
	for m.Len() != 0 {
		if m.At(0) < utf8.RuneSelf {
			m = m.SliceFrom(1)
		} else {
			_, size := mem.DecodeRune(m)
			m = m.SliceFrom(size)
		}
		n++
	}
	return n
}

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Offset     int     // character (rune) index of the error in the input
	ByteOffset int     // byte offset of the error in the input
	Location   LineCol // line and column of Offset
	Message    string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s (offset %d): %s", s.Location, s.Offset, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
