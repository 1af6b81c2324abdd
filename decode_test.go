// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mason_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/mason"
	"github.com/google/go-cmp/cmp"
)

// errorOffset returns the offset of a *mason.SyntaxError, or -1.
func errorOffset(err error) int {
	var serr *mason.SyntaxError
	if errors.As(err, &serr) {
		return serr.Offset
	}
	return -1
}

func TestQuotedString(t *testing.T) {
	tests := []struct {
		input string
		want  string
		rest  string
	}{
		{`""`, "", ""},
		{`"a b c" x`, "a b c", " x"},
		{`"\"\\\b\f\n\r\t"`, "\"\\\b\f\n\r\t", ""},
		{`"\x41\x7f"`, "A\x7f", ""},
		{`"\u0026 \u00e9 \u2028"`, "& é \u2028", ""},
		{`"\U01F600"`, "😀", ""},
		{`"\U10FFFF"`, "\U0010ffff", ""},
		{`"\uD83D\uDE00"`, "😀", ""},
		{`"\uD83D"`, "\ufffd", ""},
		{`"\uD83Dx"`, "\ufffdx", ""},
		{`"\uD83D\u0041"`, "\ufffdA", ""},
		{`"\uDE00\uD83D"`, "\ufffd\ufffd", ""},
		{`"\U00D800"`, "\ufffd", ""},
		{"\"raw\nnewline\ttab\"", "raw\nnewline\ttab", ""},
		{`"unicode ∂ text"`, "unicode ∂ text", ""},
	}
	for _, tc := range tests {
		c := mason.NewCursor(tc.input)
		got, err := c.QuotedString()
		if err != nil {
			t.Errorf("QuotedString(%#q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("QuotedString(%#q): got %q, want %q", tc.input, got, tc.want)
		}
		if rest := tc.input[c.Pos():]; rest != tc.rest {
			t.Errorf("QuotedString(%#q): rest is %q, want %q", tc.input, rest, tc.rest)
		}
	}
}

func TestQuotedStringErrors(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		msg   string
	}{
		{`x`, 0, "want '\"'"},
		{`"abc`, 4, "unexpected end of input"},
		{`"abc\`, 5, "unexpected end of input"},
		{`"\q"`, 2, `unknown escape character 'q'`},
		{`"\/"`, 2, `unknown escape character '/'`},
		{`"\x80"`, 1, "7-bit ASCII"},
		{`"\xff"`, 1, "7-bit ASCII"},
		{`"\x4"`, 4, `invalid hex digit '"'`},
		{`"\x4`, 4, "unexpected end of input"},
		{`"\u12g4"`, 5, `invalid hex digit 'g'`},
		{`"\U110000"`, 1, "invalid code point"},
		{`"\U12345"`, 8, `invalid hex digit '"'`},
	}
	for _, tc := range tests {
		_, err := mason.NewCursor(tc.input).QuotedString()
		if err == nil {
			t.Errorf("QuotedString(%#q): got nil, want error", tc.input)
			continue
		}
		if pos := errorOffset(err); pos != tc.pos {
			t.Errorf("QuotedString(%#q): error at %d, want %d: %v", tc.input, pos, tc.pos, err)
		}
		if !strings.Contains(err.Error(), tc.msg) {
			t.Errorf("QuotedString(%#q): got %v, want %q", tc.input, err, tc.msg)
		}
	}
}

func TestBinaryString(t *testing.T) {
	tests := []struct {
		input string
		want  []byte
	}{
		{`b""`, []byte{}},
		{`b"AB"`, []byte("AB")},
		{`b"\x41\x42"`, []byte{65, 66}},
		{`b"\x00\x7f\x80\xff"`, []byte{0, 0x7f, 0x80, 0xff}},
		{`b"\"\\\b\f\n\r\t"`, []byte("\"\\\b\f\n\r\t")},
		{"b\"tab\tok\"", []byte("tab\tok")},
	}
	for _, tc := range tests {
		got, err := mason.NewCursor(tc.input).BinaryString()
		if err != nil {
			t.Errorf("BinaryString(%#q): unexpected error: %v", tc.input, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("BinaryString(%#q) (-want, +got):\n%s", tc.input, diff)
		}
	}
}

func TestBinaryStringErrors(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		msg   string
	}{
		{`"abc"`, 0, "want 'b'"},
		{`b'x'`, 1, `want '"'`},
		{`b"abc`, 5, "unexpected end of input"},
		{`b"\`, 3, "unexpected end of input"},
		{`b"é"`, 2, "ASCII literals"},
		{`b"ok ∂"`, 5, "ASCII literals"},
		{`b"\u0041"`, 3, "unknown escape character 'u'"},
		{`b"\x4z"`, 5, "invalid hex digit 'z'"},
	}
	for _, tc := range tests {
		_, err := mason.NewCursor(tc.input).BinaryString()
		if err == nil {
			t.Errorf("BinaryString(%#q): got nil, want error", tc.input)
			continue
		}
		if pos := errorOffset(err); pos != tc.pos {
			t.Errorf("BinaryString(%#q): error at %d, want %d: %v", tc.input, pos, tc.pos, err)
		}
		if !strings.Contains(err.Error(), tc.msg) {
			t.Errorf("BinaryString(%#q): got %v, want %q", tc.input, err, tc.msg)
		}
	}
}

func TestBinaryStringRange(t *testing.T) {
	// Every byte value is reachable through an escape.
	var sb strings.Builder
	sb.WriteString(`b"`)
	for i := 0; i < 256; i++ {
		fmt.Fprintf(&sb, `\x%02X`, i)
	}
	sb.WriteString(`"`)
	got, err := mason.NewCursor(sb.String()).BinaryString()
	if err != nil {
		t.Fatalf("BinaryString: unexpected error: %v", err)
	}
	if len(got) != 256 {
		t.Fatalf("BinaryString: got %d bytes, want 256", len(got))
	}
	for i, b := range got {
		if int(b) != i {
			t.Errorf("Byte %d: got %d", i, b)
		}
	}

	// Every literal above 127 is rejected.
	for _, r := range []rune{0x80, 0xff, 0x100, 0x2028, 0x1f600} {
		input := `b"` + string(r) + `"`
		if _, err := mason.NewCursor(input).BinaryString(); err == nil {
			t.Errorf("BinaryString(%q): got nil, want error", input)
		}
	}
}

func TestRawString(t *testing.T) {
	tests := []struct {
		input string
		want  string
		rest  string
	}{
		{`r""`, "", ""},
		{`r"C:\dir\n"`, `C:\dir\n`, ""},
		{`r#"He said "hi""#`, `He said "hi"`, ""},
		{`r#"a"b"# tail`, `a"b`, " tail"},
		{`r##"one "# two"##`, `one "# two`, ""},
		{`r###"#"##"###`, `#"##`, ""},
		{`r#""#`, "", ""},
		{"r\"multi\nline\"", "multi\nline", ""},
		{`r"a"#`, "a", "#"},
	}
	for _, tc := range tests {
		c := mason.NewCursor(tc.input)
		got, err := c.RawString()
		if err != nil {
			t.Errorf("RawString(%#q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("RawString(%#q): got %q, want %q", tc.input, got, tc.want)
		}
		if rest := tc.input[c.Pos():]; rest != tc.rest {
			t.Errorf("RawString(%#q): rest is %q, want %q", tc.input, rest, tc.rest)
		}
	}
}

func TestRawStringHashes(t *testing.T) {
	bodies := []string{"", "plain", `"`, `"quoted"`, `#`, `a"b#c`, "multi\nline"}
	for n := 0; n < 5; n++ {
		hashes := strings.Repeat("#", n)
		for _, body := range bodies {
			// Skip bodies that contain their own terminator.
			if strings.Index(body+`"`+hashes, `"`+hashes) < len(body) {
				continue
			}
			input := "r" + hashes + `"` + body + `"` + hashes
			got, err := mason.NewCursor(input).RawString()
			if err != nil {
				t.Errorf("RawString(%#q): unexpected error: %v", input, err)
			} else if got != body {
				t.Errorf("RawString(%#q): got %q, want %q", input, got, body)
			}
		}
	}
}

func TestRawStringErrors(t *testing.T) {
	tests := []struct {
		input string
		pos   int
	}{
		{`x""`, 0},
		{`r`, 1},
		{`r#x"`, 2},
		{`r"abc`, 5},
		{`r#"abc"`, 7},
		{`r##"abc"#`, 9},
	}
	for _, tc := range tests {
		_, err := mason.NewCursor(tc.input).RawString()
		if err == nil {
			t.Errorf("RawString(%#q): got nil, want error", tc.input)
			continue
		}
		if pos := errorOffset(err); pos != tc.pos {
			t.Errorf("RawString(%#q): error at %d, want %d: %v", tc.input, pos, tc.pos, err)
		}
		if tc.pos == len(tc.input) && !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("RawString(%#q): got %v, want %v", tc.input, err, io.ErrUnexpectedEOF)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, true},                        // missing quotes
		{`"missing quote`, ``, true},          // missing quotes
		{`missing quote"`, ``, true},          // missing quotes
		{`""`, ``, false},                     // ok
		{`"ok go"`, "ok go", false},           // ok
		{`"abc\ndef"`, "abc\ndef", false},     // C escapes
		{`"\b\f\n\r\t"`, "\b\f\n\r\t", false}, // C escapes
		{`"a \u0026 b"`, "a & b", false},      // short Unicode escape
		{`"\x7e\U01F642"`, "~🙂", false},       // hex and long Unicode escapes
		{`"\u"`, ``, true},                    // incomplete Unicode escape
		{`"\u00x9"`, ``, true},                // invalid Unicode escape
		{`"a\"b"`, `a"b`, false},              // ok
		{`"a\\b\\cd"`, `a\b\cd`, false},       // ok
		{`"a" "b"`, ``, true},                 // extra input
	}

	for _, test := range tests {
		got, err := mason.Unquote(test.input)
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			} else {
				t.Logf("Unquote(%#q): got expected error: %v", test.input, err)
			}
		} else if test.fail {
			t.Errorf("Unquote(%#q): got %q, want error", test.input, got)
		}
		if got != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{"\u2028 \u2029 \ufffd", `"\u2028 \u2029 ` + "\ufffd" + `"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
	}
	for _, test := range tests {
		got := mason.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
		if back, err := mason.Unquote(got); err == nil && back != test.input {
			t.Errorf("Unquote(Quote(%#q)): got %#q", test.input, back)
		}
	}
}
