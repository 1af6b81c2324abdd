// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mason

import (
	"github.com/creachadair/mason/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a double-quoted string. The result is valid both as a
// MASON string and as a JSON string.
func Quote(src string) string { return escape.Quote(mem.S(src)) }

// Unquote decodes src, which must consist of exactly one double-quoted MASON
// string literal, and returns its text with escapes replaced.
func Unquote(src string) (string, error) {
	c := NewCursor(src)
	if err := c.Validate(); err != nil {
		return "", err
	}
	s, err := c.QuotedString()
	if err != nil {
		return "", err
	} else if !c.AtEOF() {
		return "", c.Errorf("unexpected %q after string", c.Peek())
	}
	return s, nil
}
