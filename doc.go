// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package mason implements the lexical layer of a parser for MASON, a
// human-writable superset of JSON.
//
// # Syntax
//
// MASON extends JSON with the following:
//
//   - Line comments, from "//" to the end of the line.
//   - Newlines as element separators, in addition to (or instead of) commas,
//     and trailing separators before a closing bracket.
//   - Object keys written as bare identifiers, [A-Za-z_][A-Za-z0-9_]*.
//   - Top-level objects with the outermost braces omitted:
//
//     name: "example"
//     size: 0x1F
//
//   - Numbers with a leading "+", a radix prefix (0x, 0o, 0b), omitted integer
//     parts ("-.5"), and "'" digit group separators (1'000'000).
//   - Extra string escapes \xHH (7-bit ASCII) and \UHHHHHH (any code point).
//   - Raw strings, whose body is taken verbatim: r"C:\dir", r#"say "hi""#.
//   - Binary strings, which denote bytes rather than text: b"\x00\xffOK".
//
// # Cursors
//
// The Cursor type holds the complete input text and a scan position. Its
// methods consume trivia (whitespace and comments), separators, identifiers,
// and scalar literals, and report failures as errors of concrete type
// *SyntaxError carrying the offset where the failure occurred:
//
//	c := mason.NewCursor(`r#"raw "text""# // comment`)
//	s, err := c.RawString()
//	if err != nil {
//	   log.Fatalf("Scanning failed: %v", err)
//	}
//	c.SkipTrivia() // c.AtEOF() == true
//
// Values and documents are parsed by the ast package, which is built on the
// Cursor.
package mason
