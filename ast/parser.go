// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"io"

	"github.com/creachadair/mason"
)

// DefaultMaxDepth is the maximum nesting depth of arrays and objects used
// when Options.MaxDepth is zero.
const DefaultMaxDepth = 1000

// Options control the behavior of the parser.
// A zero value is ready for use with default settings.
type Options struct {
	// The maximum nesting depth of arrays and objects. A document nested more
	// deeply fails with an error wrapping mason.ErrTooDeep. If zero, use
	// DefaultMaxDepth; if negative, depth is unlimited.
	MaxDepth int
}

// Parse parses a MASON document from text. The outermost braces of the
// document object may be omitted, so the result is always an Object.
// In case of a syntax error, the error has concrete type *mason.SyntaxError.
func Parse(text string) (Object, error) { return Options{}.Parse(text) }

// ParseValue parses a single MASON value of any type from text. Unlike Parse,
// the braces of an object may not be omitted.
// In case of a syntax error, the error has concrete type *mason.SyntaxError.
func ParseValue(text string) (Value, error) { return Options{}.ParseValue(text) }

// ParseReader reads all of r and parses it as a MASON document.
func ParseReader(r io.Reader) (Object, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return Options{}.ParseBytes(data)
}

// Parse parses a MASON document from text using the settings from o.
func (o Options) Parse(text string) (Object, error) {
	return o.newParser(mason.NewCursor(text)).document()
}

// ParseBytes parses a MASON document from data using the settings from o.
func (o Options) ParseBytes(data []byte) (Object, error) {
	return o.newParser(mason.NewCursorBytes(data)).document()
}

// ParseValue parses a single MASON value from text using the settings from o.
func (o Options) ParseValue(text string) (Value, error) {
	return o.newParser(mason.NewCursor(text)).single()
}

// ParseValueBytes parses a single MASON value from data using the settings
// from o.
func (o Options) ParseValueBytes(data []byte) (Value, error) {
	return o.newParser(mason.NewCursorBytes(data)).single()
}

func (o Options) newParser(c *mason.Cursor) *parser {
	p := &parser{c: c, maxDepth: o.MaxDepth}
	if p.maxDepth == 0 {
		p.maxDepth = DefaultMaxDepth
	}
	return p
}

// A parser constructs syntax trees from the input of a cursor.
type parser struct {
	c        *mason.Cursor
	depth    int
	maxDepth int // < 0 means unlimited
}

// document parses a complete document: a braced object, or the members of
// an object without its braces.
func (p *parser) document() (Object, error) {
	if err := p.c.Validate(); err != nil {
		return nil, err
	}
	p.c.SkipTrivia()
	var obj Object
	var err error
	if p.c.Peek() == '{' {
		obj, err = p.object()
	} else {
		obj, err = p.members()
	}
	if err != nil {
		return nil, err
	}
	return obj, p.end("document")
}

// single parses a complete input consisting of one value.
func (p *parser) single() (Value, error) {
	if err := p.c.Validate(); err != nil {
		return nil, err
	}
	p.c.SkipTrivia()
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	return v, p.end("value")
}

// end verifies that nothing but trivia remains in the input.
func (p *parser) end(what string) error {
	p.c.SkipTrivia()
	if !p.c.AtEOF() {
		return p.c.Errorf("trailing garbage after %s: %q", what, p.c.Peek())
	}
	return nil
}

// value parses a single value of any type, choosing the production from the
// current rune.
func (p *parser) value() (Value, error) {
	switch ch := p.c.Peek(); {
	case ch == mason.EOF:
		return nil, p.c.EOFError("value")
	case ch == '[':
		return p.array()
	case ch == '{':
		return p.object()
	case ch == '"':
		s, err := p.c.QuotedString()
		return Text(s), err
	case ch == 'r':
		// N.B. This captures every value beginning with "r", so no keyword
		// may begin with "r".
		s, err := p.c.RawString()
		return Text(s), err
	case mason.IsNumberStart(ch):
		f, err := p.c.Number()
		return Number(f), err
	case ch == 'b' && p.c.PeekNext() == '"':
		b, err := p.c.BinaryString()
		return Bytes(b), err
	case !mason.IsIdentStart(ch):
		return nil, p.c.Errorf("unexpected character %q", ch)
	}

	pos := p.c.Pos()
	id, err := p.c.Identifier()
	if err != nil {
		return nil, err
	}
	switch id {
	case "null":
		return Null{}, nil
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	}
	return nil, p.c.ErrorAt(pos, nil, "unexpected keyword %q", id)
}

// key parses an object key, a quoted string or a bare identifier.
func (p *parser) key() (string, error) {
	if p.c.Peek() == '"' {
		return p.c.QuotedString()
	}
	return p.c.Identifier()
}

// members parses zero or more key-value pairs, ending before a "}" or at the
// end of input. Members are separated by commas or line breaks.
func (p *parser) members() (Object, error) {
	obj := Object{}
	seen := make(map[string]bool)
	for {
		if ch := p.c.Peek(); ch == '}' || ch == mason.EOF {
			return obj, nil
		}

		pos := p.c.Pos()
		key, err := p.key()
		if err != nil {
			return nil, err
		} else if seen[key] {
			return nil, p.c.ErrorAt(pos, nil, "duplicate key %q", key)
		}
		seen[key] = true

		p.c.SkipTrivia()
		if err := p.c.Require(':'); err != nil {
			return nil, err
		}
		p.c.SkipTrivia()
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		obj = append(obj, &Member{Key: key, Value: v})

		sep := p.c.SkipSeparator()
		if ch := p.c.Peek(); ch == '}' || ch == mason.EOF {
			return obj, nil
		} else if !sep {
			return nil, p.c.Errorf("expected separator, '}' or end of input, got %q", ch)
		}
	}
}

// object parses a braced object.
func (p *parser) object() (Object, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()

	if err := p.c.Require('{'); err != nil {
		return nil, err
	}
	p.c.SkipTrivia()
	obj, err := p.members()
	if err != nil {
		return nil, err
	}
	p.c.SkipTrivia()
	if err := p.c.Require('}'); err != nil {
		return nil, err
	}
	return obj, nil
}

// array parses a bracketed array.
func (p *parser) array() (Array, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()

	if err := p.c.Require('['); err != nil {
		return nil, err
	}
	p.c.SkipTrivia()
	arr := Array{}
	for p.c.Peek() != ']' {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		sep := p.c.SkipSeparator()
		if ch := p.c.Peek(); ch == ']' {
			break
		} else if ch == mason.EOF {
			return nil, p.c.EOFError("']'")
		} else if !sep {
			return nil, p.c.Errorf("expected separator or ']', got %q", ch)
		}
	}
	p.c.Advance() // the closing bracket
	return arr, nil
}

// push enters a nested container, or reports an error if that would exceed
// the maximum depth.
func (p *parser) push() error {
	if p.maxDepth >= 0 && p.depth >= p.maxDepth {
		return p.c.ErrorAt(p.c.Pos(), mason.ErrTooDeep, "nesting too deep (limit %d)", p.maxDepth)
	}
	p.depth++
	return nil
}

func (p *parser) pop() { p.depth-- }
