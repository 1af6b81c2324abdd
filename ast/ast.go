// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a syntax tree for MASON values, and a parser that
// constructs syntax trees from MASON source.
package ast

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/mason/internal/escape"

	"go4.org/mem"
)

// A Value is an arbitrary MASON value. The concrete type is one of Null,
// Bool, Number, Text, Bytes, Array, or Object.
type Value interface {
	// JSON renders the value as compact JSON text. Object members keep their
	// order, and Bytes are encoded as base64 strings.
	JSON() string

	isValue()
}

// Null represents the null constant.
type Null struct{}

func (Null) isValue()       {}
func (Null) JSON() string   { return "null" }
func (Null) String() string { return "null" }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) isValue() {}

func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

// A Number is a numeric value. All MASON numbers, integer or not, are
// represented as float64.
type Number float64

func (Number) isValue() {}

func (n Number) JSON() string { return string(appendNumber(nil, float64(n))) }

// IsInt reports whether n has an integer value.
func (n Number) IsInt() bool {
	f := float64(n)
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}

// Int64 returns n truncated to an int64.
func (n Number) Int64() int64 { return int64(n) }

// A Text is a string value decoded from a quoted or raw string.
type Text string

func (Text) isValue() {}

func (t Text) JSON() string { return escape.Quote(mem.S(string(t))) }

// Bytes is a byte string value decoded from a binary string literal.
type Bytes []byte

func (Bytes) isValue() {}

// JSON renders b as a JSON string containing the base64 encoding of b.
func (b Bytes) JSON() string { return `"` + base64.StdEncoding.EncodeToString(b) + `"` }

// Len reports the number of bytes in b.
func (b Bytes) Len() int { return len(b) }

func (b Bytes) String() string { return fmt.Sprintf("Bytes(len=%d)", len(b)) }

// An Array is a sequence of values.
type Array []Value

func (Array) isValue() {}

func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, elt := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(elt.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// An Object is a collection of key-value members, in order of appearance.
// The keys of an object produced by the parser are unique.
type Object []*Member

func (Object) isValue() {}

func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Keys returns the keys of o in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// JSON renders m as a JSON object member, "key":value.
func (m Member) JSON() string {
	buf := escape.AppendQuote(nil, mem.S(m.Key))
	buf = append(buf, ':')
	return string(buf) + m.Value.JSON()
}

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// Field constructs an object member with the given key and value.
// The value is converted as by ToValue.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// ToValue converts a Go value into an equivalent MASON value.
// It panics if v cannot be converted.
//
// A nil converts to Null; Go strings to Text; []byte to Bytes; booleans to
// Bool; integers and floating-point values to Number; []Value and []any to
// Array; and *Member to an Object with that single member. A Value is
// returned unchanged.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return Text(t)
	case []byte:
		return Bytes(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case float64:
		return Number(t)
	case []Value:
		return Array(t)
	case []any:
		a := make(Array, len(t))
		for i, elt := range t {
			a[i] = ToValue(elt)
		}
		return a
	case *Member:
		return Object{t}
	default:
		panic(fmt.Sprintf("cannot convert %T to a value", v))
	}
}

// Equal reports whether a and b are structurally equal. Objects are equal if
// they have the same set of keys with equal values, regardless of order.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && (x == y || (math.IsNaN(float64(x)) && math.IsNaN(float64(y))))
	case Text:
		y, ok := b.(Text)
		return ok && x == y
	case Bytes:
		y, ok := b.(Bytes)
		return ok && string(x) == string(y)
	case Array:
		y, ok := b.(Array)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Object:
		y, ok := b.(Object)
		if !ok || len(x) != len(y) {
			return false
		}
		for _, m := range x {
			n := y.Find(m.Key)
			if n == nil || !Equal(m.Value, n.Value) {
				return false
			}
		}
		return true
	}
	return false
}

// appendNumber appends the JSON representation of f to buf.
func appendNumber(buf []byte, f float64) []byte {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		// Not representable in JSON; the parser never produces these.
		return append(buf, "null"...)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.AppendFloat(buf, f, 'f', -1, 64)
	}
	return strconv.AppendFloat(buf, f, 'g', -1, 64)
}
