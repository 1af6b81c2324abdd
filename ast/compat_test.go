// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/creachadair/mason/ast"
	"github.com/tailscale/hujson"
)

// fromJSON converts the output of encoding/json into a Value.
// Object keys come from a map, so their order is not preserved.
func fromJSON(v any) ast.Value {
	switch t := v.(type) {
	case map[string]any:
		obj := ast.Object{}
		for key, val := range t {
			obj = append(obj, &ast.Member{Key: key, Value: fromJSON(val)})
		}
		return obj
	case []any:
		arr := ast.Array{}
		for _, elt := range t {
			arr = append(arr, fromJSON(elt))
		}
		return arr
	default:
		return ast.ToValue(t)
	}
}

// Documents in JSON with line comments and trailing commas (JWCC) are also
// MASON, and must have the same value both ways.
var jwccInputs = []string{
	`{}`,
	`[]`,
	`"text with \"quotes\" and \\ and \n"`,
	`[1, -2.5, 3e2, 0.001, 1E+3, -0]`,
	`{"a": null, "b": true, "c": false}`,
	`{
  // A line comment.
  "name": "value", // trailing comment
  "list": [
    1,
    2,
  ],
}`,
	`[
  {"x": [[], {}]},
  {"y": "é 😀"},
]`,
	`{"nested": {"deeper": {"deepest": [true, null,],},},}`,
}

func TestJWCC(t *testing.T) {
	for i, input := range jwccInputs {
		t.Run(fmt.Sprintf("Input%d", i+1), func(t *testing.T) {
			got, err := ast.ParseValue(input)
			if err != nil {
				t.Fatalf("ParseValue: unexpected error: %v", err)
			}

			std, err := hujson.Standardize([]byte(input))
			if err != nil {
				t.Fatalf("Standardize: unexpected error: %v", err)
			}
			var decoded any
			if err := json.Unmarshal(std, &decoded); err != nil {
				t.Fatalf("Unmarshal: unexpected error: %v", err)
			}
			if want := fromJSON(decoded); !ast.Equal(got, want) {
				t.Errorf("Values differ:\n got:  %s\n want: %s", got.JSON(), want.JSON())
			}

			// The compact rendering is standard JSON with the same value.
			var back any
			if err := json.Unmarshal([]byte(got.JSON()), &back); err != nil {
				t.Fatalf("Unmarshal JSON(): unexpected error: %v", err)
			}
			if !ast.Equal(fromJSON(back), got) {
				t.Errorf("JSON() changed the value: %s", got.JSON())
			}
		})
	}
}
