// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mason

import (
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/creachadair/mason/internal/escape"
)

// QuotedString consumes a double-quoted string and returns its decoded text.
//
// Within the quotes, a backslash introduces an escape: one of \" \\ \b \f \n
// \r \t, \xHH for a 7-bit ASCII character, \uHHHH for a code point in the
// basic plane (a surrogate pair of \u escapes is combined), or \UHHHHHH for
// any code point.
func (c *Cursor) QuotedString() (string, error) {
	if err := c.Require('"'); err != nil {
		return "", err
	}
	var sb strings.Builder
	for {
		switch ch := c.Peek(); ch {
		case EOF:
			return "", c.EOFError(`closing '"'`)
		case '"':
			c.Advance()
			return sb.String(), nil
		case '\\':
			c.Advance()
			r, err := c.textEscape()
			if err != nil {
				return "", err
			}
			sb.WriteRune(r)
		default:
			c.Advance()
			sb.WriteRune(ch)
		}
	}
}

// BinaryString consumes a binary string literal b"..." and returns its bytes.
//
// Literal characters must be 7-bit ASCII. The simple escapes are the same as
// for quoted strings, and \xHH denotes an arbitrary byte.
func (c *Cursor) BinaryString() ([]byte, error) {
	if err := c.Require('b'); err != nil {
		return nil, err
	} else if err := c.Require('"'); err != nil {
		return nil, err
	}
	buf := []byte{}
	for {
		switch ch := c.Peek(); {
		case ch == EOF:
			return nil, c.EOFError(`closing '"'`)
		case ch == '"':
			c.Advance()
			return buf, nil
		case ch == '\\':
			c.Advance()
			esc := c.Peek()
			if esc == EOF {
				return nil, c.EOFError("escape character")
			} else if b, ok := escape.Simple(esc); ok {
				c.Advance()
				buf = append(buf, b)
			} else if esc == 'x' {
				c.Advance()
				v, err := c.hexDigits(2)
				if err != nil {
					return nil, err
				}
				buf = append(buf, byte(v))
			} else {
				return nil, c.Errorf("unknown escape character %q", esc)
			}
		case ch >= utf8.RuneSelf:
			return nil, c.Errorf("binary strings can only contain ASCII literals, got %q", ch)
		default:
			c.Advance()
			buf = append(buf, byte(ch))
		}
	}
}

// RawString consumes a raw string literal and returns its body verbatim.
//
// A raw string is "r", then zero or more "#", then a double quote. The body
// extends to the first double quote followed by the same number of "#" as
// opened the string. No escapes are processed in the body.
func (c *Cursor) RawString() (string, error) {
	if err := c.Require('r'); err != nil {
		return "", err
	}
	var hashes int
	for c.Peek() == '#' {
		hashes++
		c.Advance()
	}
	if err := c.Require('"'); err != nil {
		return "", err
	}

	// Track the number of consecutive "#" following the most recent quote, or
	// -1 if the last rune was not part of a candidate terminator.
	start, state := c.pos, -1
	for {
		switch c.Next() {
		case EOF:
			return "", c.EOFError("end of raw string")
		case '"':
			state = 0
		case '#':
			if state >= 0 {
				state++
			}
		default:
			state = -1
		}
		if state == hashes {
			return c.Text(start, c.pos-hashes-1), nil
		}
	}
}

// textEscape decodes an escape sequence in a quoted string after the
// backslash has been consumed.
func (c *Cursor) textEscape() (rune, error) {
	ch := c.Peek()
	if ch == EOF {
		return 0, c.EOFError("escape character")
	} else if b, ok := escape.Simple(ch); ok {
		c.Advance()
		return rune(b), nil
	}

	pos := c.pos - 1 // the backslash
	switch ch {
	case 'x':
		c.Advance()
		v, err := c.hexDigits(2)
		if err != nil {
			return 0, err
		} else if v > 127 {
			return 0, c.ErrorAt(pos, nil, `'\x' escapes can only be used for 7-bit ASCII characters, got %#02x`, v)
		}
		return v, nil

	case 'u':
		c.Advance()
		v, err := c.hexDigits(4)
		if err != nil {
			return 0, err
		}
		if utf16.IsSurrogate(v) && c.Peek() == '\\' && c.PeekNext() == 'u' {
			// Look ahead for the second half of a surrogate pair. If the next
			// escape does not complete a pair, leave it for the caller.
			save := c.pos
			c.Advance()
			c.Advance()
			lo, err := c.hexDigits(4)
			if err != nil {
				return 0, err
			}
			if r := utf16.DecodeRune(v, lo); r != unicode.ReplacementChar {
				return r, nil
			}
			c.pos = save
		}
		if utf16.IsSurrogate(v) {
			return unicode.ReplacementChar, nil
		}
		return v, nil

	case 'U':
		c.Advance()
		v, err := c.hexDigits(6)
		if err != nil {
			return 0, err
		} else if v > unicode.MaxRune {
			return 0, c.ErrorAt(pos, nil, "invalid code point U+%X", v)
		} else if utf16.IsSurrogate(v) {
			return unicode.ReplacementChar, nil
		}
		return v, nil
	}
	return 0, c.Errorf("unknown escape character %q", ch)
}

// hexDigits consumes exactly n hexadecimal digits and returns their value.
func (c *Cursor) hexDigits(n int) (rune, error) {
	avail := min(n, c.src.Len()-c.pos)
	v, nd := escape.ParseHex(c.src.SliceFrom(c.pos).SliceTo(avail))
	c.pos += nd
	if nd < avail {
		return 0, c.Errorf("invalid hex digit %q", c.Peek())
	} else if nd < n {
		return 0, c.EOFError("hex digit")
	}
	return rune(v), nil
}
