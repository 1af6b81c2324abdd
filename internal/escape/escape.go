// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles escape sequences in MASON strings and the quoting of
// decoded text as JSON strings.
package escape

import "go4.org/mem"

// Simple reports the byte denoted by the single-character escape "\ch", and
// whether ch is a single-character escape at all. The escapes \x, \u, and \U
// take hexadecimal arguments and are not simple.
func Simple(ch rune) (byte, bool) {
	switch ch {
	case '"', '\\':
		return byte(ch), true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

// ParseHex decodes the longest prefix of data consisting of hexadecimal
// digits as a big-endian integer. It returns the value and the number of
// digits consumed. The caller must bound the length of data so the value
// does not overflow.
func ParseHex(data mem.RO) (int64, int) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		d, ok := HexDigit(data.At(i))
		if !ok {
			return v, i
		}
		v = v<<4 | int64(d)
	}
	return v, data.Len()
}

// HexDigit reports the value of b as a hexadecimal digit.
func HexDigit(b byte) (byte, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
