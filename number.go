// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mason

import (
	"errors"
	"strconv"
	"strings"
)

// Number consumes a numeric literal and returns its value.
//
// A number has an optional sign, an optional radix prefix (0x, 0o, or 0b), an
// integer part, an optional fraction, and (in base 10 only) an optional
// exponent. Digits may be grouped with "'", which is ignored. The integer
// part may be omitted if a fraction is present, as in "-.5". In base 10 the
// fraction digits may be omitted before an exponent, as in "1.e5", but a
// trailing "." alone is an error.
func (c *Cursor) Number() (float64, error) {
	start := c.pos
	var neg bool
	switch c.Peek() {
	case '-':
		neg = true
		c.Advance()
	case '+':
		c.Advance()
	}

	radix := 10
	if c.Peek() == '0' {
		switch c.PeekNext() {
		case 'x':
			radix = 16
		case 'o':
			radix = 8
		case 'b':
			radix = 2
		}
		if radix != 10 {
			c.Advance()
			c.Advance()
		}
	}

	var num numParts
	var err error
	if c.Peek() != '.' {
		if num.integral, err = c.digitRun(radix, "digit"); err != nil {
			return 0, err
		}
	}
	if c.Peek() == '.' {
		c.Advance()
		ch := c.Peek()
		emptyOK := radix == 10 && num.integral != "" && (ch == 'e' || ch == 'E') // "1.e5"
		if !emptyOK {
			if num.fraction, err = c.digitRun(radix, "fractional digit"); err != nil {
				return 0, err
			}
		}
	}
	if ch := c.Peek(); radix == 10 && (ch == 'e' || ch == 'E') {
		c.Advance()
		switch c.Peek() {
		case '-':
			num.expNeg = true
			c.Advance()
		case '+':
			c.Advance()
		}
		if num.exponent, err = c.digitRun(radix, "exponent digit"); err != nil {
			return 0, err
		}
	}

	v, err := strconv.ParseFloat(num.canonical(neg, radix), 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, c.ErrorAt(start, err, "number %q out of range", c.Text(start, c.pos))
	} else if err != nil {
		return 0, c.ErrorAt(start, err, "invalid number %q", c.Text(start, c.pos))
	}
	return v, nil
}

// digitRun consumes a run of one or more digits valid in radix, ignoring "'"
// group separators, and returns the digits. The run ends at the first rune
// that is neither a separator nor a valid digit.
func (c *Cursor) digitRun(radix int, label string) (string, error) {
	first, err := c.RequireClass(func(r rune) bool {
		_, ok := digitValue(r, radix)
		return ok
	}, label)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteRune(first)
	for {
		ch := c.Peek()
		if ch == '\'' {
			c.Advance()
			continue
		} else if _, ok := digitValue(ch, radix); !ok {
			return sb.String(), nil
		}
		sb.WriteRune(ch)
		c.Advance()
	}
}

// numParts holds the digit strings of a numeric literal.
type numParts struct {
	integral, fraction, exponent string
	expNeg                       bool
}

// canonical renders the number as text that strconv.ParseFloat converts
// exactly. Decimal numbers render as "±I.FeX"; other radixes are rewritten
// as hexadecimal floating point "±0xI.Fp0", which represents them exactly.
func (n numParts) canonical(neg bool, radix int) string {
	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	if radix == 10 {
		sb.WriteString(or0(n.integral))
		sb.WriteByte('.')
		sb.WriteString(or0(n.fraction))
		sb.WriteByte('e')
		if n.expNeg {
			sb.WriteByte('-')
		}
		sb.WriteString(or0(n.exponent))
		return sb.String()
	}

	sb.WriteString("0x")
	sb.WriteString(or0(toHex(n.integral, radix, true)))
	sb.WriteByte('.')
	sb.WriteString(or0(toHex(n.fraction, radix, false)))
	sb.WriteString("p0")
	return sb.String()
}

// bitsPerDigit gives the width in bits of a digit in each power-of-two radix.
var bitsPerDigit = map[int]int{2: 1, 8: 3, 16: 4}

// toHex rewrites digits in the given power-of-two radix as hexadecimal
// digits with the same value. An integer part is padded with zero bits on
// the left; a fraction is padded on the right.
func toHex(digits string, radix int, integer bool) string {
	if radix == 16 || digits == "" {
		return digits
	}
	width := bitsPerDigit[radix]
	bits := make([]byte, 0, len(digits)*width+3)
	for _, d := range digits {
		v, _ := digitValue(d, radix)
		for i := width - 1; i >= 0; i-- {
			bits = append(bits, byte(v>>i)&1)
		}
	}
	if pad := (4 - len(bits)%4) % 4; pad != 0 {
		zeros := make([]byte, pad)
		if integer {
			bits = append(zeros, bits...)
		} else {
			bits = append(bits, zeros...)
		}
	}

	const hexDigits = "0123456789abcdef"
	out := make([]byte, len(bits)/4)
	for i := range out {
		q := bits[4*i : 4*i+4]
		out[i] = hexDigits[q[0]<<3|q[1]<<2|q[2]<<1|q[3]]
	}
	return string(out)
}

func or0(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
