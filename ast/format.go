// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bufio"
	"bytes"
	"io"
)

// A Formatter carries the settings for rendering values as indented JSON.
// A zero value is ready for use with default settings.
type Formatter struct {
	// The indentation added for each nesting level.
	// If empty, four spaces are used; use Compact to disable indentation.
	Indent string

	// If true, render compact JSON with no added whitespace.
	Compact bool
}

func (f Formatter) indent() string {
	if f.Indent == "" {
		return "    "
	}
	return f.Indent
}

// Format renders v to w as indented JSON with default settings.
func Format(w io.Writer, v Value) error {
	var f Formatter
	return f.Format(w, v)
}

// FormatToString formats v to a string with default settings.
// In case of error in formatting, it returns an empty string.
func FormatToString(v Value) string {
	var buf bytes.Buffer
	if Format(&buf, v) != nil {
		return ""
	}
	return buf.String()
}

// Format renders v to w as JSON using the settings from f.
// The output ends with a newline.
func (f Formatter) Format(w io.Writer, v Value) error {
	bw := bufio.NewWriter(w)
	if f.Compact {
		bw.WriteString(v.JSON())
	} else {
		f.formatValue(bw, v, "")
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// formatValue writes v to w, with nested lines indented by indent.
func (f Formatter) formatValue(w *bufio.Writer, v Value, indent string) {
	switch t := v.(type) {
	case Array:
		if len(t) == 0 {
			w.WriteString("[]")
			return
		}
		adent := indent + f.indent()
		w.WriteString("[\n")
		for i, elt := range t {
			w.WriteString(adent)
			f.formatValue(w, elt, adent)
			writeListEnd(w, i, len(t))
		}
		w.WriteString(indent)
		w.WriteByte(']')

	case Object:
		if len(t) == 0 {
			w.WriteString("{}")
			return
		}
		mdent := indent + f.indent()
		w.WriteString("{\n")
		for i, m := range t {
			w.WriteString(mdent)
			w.WriteString(Text(m.Key).JSON())
			w.WriteString(": ")
			f.formatValue(w, m.Value, mdent)
			writeListEnd(w, i, len(t))
		}
		w.WriteString(indent)
		w.WriteByte('}')

	default:
		w.WriteString(v.JSON())
	}
}

// writeListEnd writes the punctuation after element i of n.
func writeListEnd(w io.StringWriter, i, n int) {
	if i+1 < n {
		w.WriteString(",\n")
	} else {
		w.WriteString("\n")
	}
}
