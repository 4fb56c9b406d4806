// Copyright © 2026 The pest-typed Authors under an MIT-style license.

package json

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/szabgab/pest-typed/peg"
)

func TestDecode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  interface{}
	}{
		{"null", `null`, nil},
		{"true", `true`, true},
		{"false", `false`, false},
		{"integer", `42`, 42.0},
		{"negative", `-7`, -7.0},
		{"fraction", `3.25`, 3.25},
		{"string", `"hello"`, "hello"},
		{"empty string", `""`, ""},
		{"escapes", `"a\n\t\"b\\"`, "a\n\t\"b\\"},
		{"raw unicode", `"☃"`, "☃"},
		{"unicode escape", "\"\\u2603\"", "☃"},
		{"surrogate pair", "\"\\ud83d\\ude00\"", "😀"},
		{"empty object", `{}`, map[string]interface{}{}},
		{"empty array", `[]`, []interface{}(nil)},
		{
			"object",
			`{"a": 1, "b": "two"}`,
			map[string]interface{}{"a": 1.0, "b": "two"},
		},
		{
			"array",
			`[1, "two", false, null]`,
			[]interface{}{1.0, "two", false, nil},
		},
		{
			"nested",
			`{"xs": [{"n": 1}, {"n": 2}], "ok": true}`,
			map[string]interface{}{
				"xs": []interface{}{
					map[string]interface{}{"n": 1.0},
					map[string]interface{}{"n": 2.0},
				},
				"ok": true,
			},
		},
		{
			"whitespace and newlines",
			"{ \"a\" :\n[ 1 ,\n2 ] }\n",
			map[string]interface{}{"a": []interface{}{1.0, 2.0}},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := Decode(test.input)
			if err != nil {
				t.Fatalf("Decode(%q) failed: %v", test.input, err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Decode(%q) differs: %s", test.input, diff)
			}
		})
	}
}

func TestDecodeLeadingTrivia(t *testing.T) {
	t.Parallel()

	// A top-level parse starts matching at offset 0;
	// trivia is only skipped inside and after the value.
	for _, input := range []string{" 1", "\t{ \"a\": 1 }"} {
		if _, err := Decode(input); err == nil {
			t.Errorf("Decode(%q) succeeded, expected an error", input)
		}
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		input  string
		offset int
	}{
		{"empty", ``, 0},
		{"missing value", `{"a": }`, 6},
		{"missing colon", `{"a" 1}`, 5},
		{"trailing comma", `[1, 2,]`, 6},
		{"unterminated string", `"abc`, 0},
		{"unterminated object", `{"a": 1`, 7},
		{"bare word", `nope`, 0},
		{"trailing junk", `1 2`, 2},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseValue(test.input)
			if err == nil {
				t.Fatalf("ParseValue(%q) succeeded, expected an error", test.input)
			}
			perr, ok := err.(*peg.Error)
			if !ok {
				t.Fatalf("got %T, want *peg.Error", err)
			}
			if perr.Offset != test.offset {
				t.Errorf("failed at offset %d, want %d", perr.Offset, test.offset)
			}
		})
	}
}

func TestParsePartial(t *testing.T) {
	t.Parallel()
	n, consumed, err := ParseValuePartial(`[1, 2] tail`)
	if err != nil {
		t.Fatalf("ParseValuePartial failed: %v", err)
	}
	if consumed != 6 {
		t.Errorf("consumed %d bytes, want 6", consumed)
	}
	if n.Text() != "[1, 2]" {
		t.Errorf("value text is %q, want %q", n.Text(), "[1, 2]")
	}
}

func TestTreeShape(t *testing.T) {
	t.Parallel()
	v, err := ParseValue(`{"a": [1]}`)
	if err != nil {
		t.Fatalf("ParseValue failed: %v", err)
	}
	obj, ok := v.E0.(*Object)
	if !ok {
		t.Fatalf("variant is %T, want *Object", v.E0)
	}
	ms := obj.Members()
	if ms == nil {
		t.Fatal("object has no members")
	}
	mem := ms.Member1()
	if mem.String().Text() != `"a"` {
		t.Errorf("key text is %q, want %q", mem.String().Text(), `"a"`)
	}
	arr, ok := mem.Value().E0.(*Array)
	if !ok {
		t.Fatalf("member value is %T, want *Array", mem.Value().E0)
	}
	if arr.Elements() == nil || arr.Elements().Value1().Text() != "1" {
		t.Errorf("array is %q", arr.Text())
	}
}

func TestAtomicString(t *testing.T) {
	t.Parallel()

	// string is atomic: no trivia between the quotes and the chars.
	s, err := ParseString(`"a b"`)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if s.Text() != `"a b"` {
		t.Errorf("got %q, want %q", s.Text(), `"a b"`)
	}
	if _, err := ParseValue(`" \" "`); err != nil {
		t.Errorf("escaped quote failed to parse: %v", err)
	}
}
