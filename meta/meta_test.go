// Copyright © 2026 The pest-typed Authors under an MIT-style license.

package meta

import (
	"regexp"
	"testing"

	"github.com/eaburns/peggy/peg"
	"github.com/google/go-cmp/cmp"
)

// A parseTest parses src and compares the canonical rendering
// of each parsed rule.
type parseTest struct {
	name string
	src  string
	want []string
}

func (test parseTest) run(t *testing.T) {
	g, err := Parse("test.pest", test.src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	var got []string
	for _, r := range g.Rules {
		got = append(got, r.String())
	}
	if diff := cmp.Diff(test.want, got); diff != "" {
		t.Errorf("rules differ: %s", diff)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []parseTest{
		{
			name: "literal rule",
			src:  `a = { "x" }`,
			want: []string{`a = { "x" }`},
		},
		{
			name: "rule kinds",
			src: `
				a = { "x" }
				b = _{ "x" }
				c = @{ "x" }
				d = ${ "x" }
				e = !{ "x" }
			`,
			want: []string{
				`a = { "x" }`,
				`b = _{ "x" }`,
				`c = @{ "x" }`,
				`d = ${ "x" }`,
				`e = !{ "x" }`,
			},
		},
		{
			name: "choice of sequences",
			src:  `a = { "x" ~ "y" | "z" }`,
			want: []string{`a = { "x" ~ "y" | "z" }`},
		},
		{
			name: "postfix binds tighter than sequence",
			src:  `a = { "x"* ~ "y"+ ~ "z"? }`,
			want: []string{`a = { "x"* ~ "y"+ ~ "z"? }`},
		},
		{
			name: "grouping",
			src:  `a = { ("x" | "y") ~ "z" }`,
			want: []string{`a = { ("x" | "y") ~ "z" }`},
		},
		{
			name: "lookahead",
			src:  `a = { &"x" ~ !"y" ~ ANY }`,
			want: []string{`a = { &"x" ~ !"y" ~ ANY }`},
		},
		{
			name: "references",
			src: `
				a = { b ~ ASCII_DIGIT }
				b = { "x" }
			`,
			want: []string{
				`a = { b ~ ASCII_DIGIT }`,
				`b = { "x" }`,
			},
		},
		{
			name: "case insensitive literal",
			src:  `a = { ^"select" }`,
			want: []string{`a = { ^"select" }`},
		},
		{
			name: "character range",
			src:  `a = { 'a'..'z' ~ '0'..'9' }`,
			want: []string{`a = { 'a'..'z' ~ '0'..'9' }`},
		},
		{
			name: "escapes",
			src:  `a = { "\n\r\t\\\"" ~ "\u{2603}" ~ '\u{61}'..'\u{7a}' }`,
			want: []string{`a = { "\n\r\t\\\"" ~ "☃" ~ 'a'..'z' }`},
		},
		{
			name: "comments and whitespace",
			src: `
				// the whole grammar
				a = { // inner
					"x" }
			`,
			want: []string{`a = { "x" }`},
		},
		{
			name: "nested sequences flatten",
			src:  `a = { ("x" ~ "y") ~ "z" }`,
			want: []string{`a = { "x" ~ "y" ~ "z" }`},
		},
		{
			name: "infix",
			src:  `e = { t } f = infix(e) { left "+" "-"  left "*" "/"  right "^" } t = { ASCII_DIGIT }`,
			want: []string{
				`e = { t }`,
				`f = { infix(e) { left "+" "-" left "*" "/" right "^" } }`,
				`t = { ASCII_DIGIT }`,
			},
		},
		{
			name: "infix insensitive operator",
			src:  `f = infix(t) { left ^"and" } t = { "x" }`,
			want: []string{
				`f = { infix(t) { left ^"and" } }`,
				`t = { "x" }`,
			},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			test.run(t)
		})
	}
}

// An errorTest parses src expecting a syntax error matching err.
type errorTest struct {
	name string
	src  string
	err  string // regexp
}

func (test errorTest) run(t *testing.T) {
	_, err := Parse("test.pest", test.src)
	if err == nil {
		t.Fatalf("got nil, expected matching %s", test.err)
	}
	if !regexp.MustCompile(test.err).MatchString(err.Error()) {
		t.Errorf("got %v, expected matching %s", err, test.err)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []errorTest{
		{name: "missing equals", src: `a { "x" }`, err: `"="`},
		{name: "missing body", src: `a = "x"`, err: `\{`},
		{name: "missing close brace", src: `a = { "x"`, err: `\}`},
		{name: "empty body", src: `a = { }`, err: "expression"},
		{name: "unterminated string", src: `a = { "x }`, err: `"`},
		{name: "bad escape", src: `a = { "\q" }`, err: "escape"},
		{name: "bad unicode escape", src: `a = { "\u{}" }`, err: "hex escape"},
		{name: "bad range dots", src: `a = { 'a'.'z' }`, err: `\.\.`},
		{name: "trailing alternation", src: `a = { "x" | }`, err: "expression"},
		{name: "infix bad keyword", src: `a = infix(t) { up "+" }`, err: `"left"|"right"`},
		{name: "infix missing operator", src: `a = infix(t) { left }`, err: "operator"},
		{name: "not infix keyword", src: `a = inf(t) { left "+" }`, err: `"infix"`},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			test.run(t)
		})
	}
}

func TestParseErrorLocation(t *testing.T) {
	t.Parallel()
	_, err := Parse("g.pest", "a = { \"x\" }\nb = [ \"y\" }\n")
	if err == nil {
		t.Fatal("got nil, expected an error")
	}
	if !regexp.MustCompile(`g\.pest:2`).MatchString(err.Error()) {
		t.Errorf("got %v, expected the path and line 2", err)
	}
}

func TestParseErrorTree(t *testing.T) {
	t.Parallel()
	_, err := Parse("test.pest", `a = { "b" | "c"`)
	if err == nil {
		t.Fatal("got nil, expected an error")
	}
	pe, ok := err.(interface{ Tree() *peg.Fail })
	if !ok {
		t.Fatalf("error does not expose its failure tree")
	}
	if len(pe.Tree().Kids) == 0 {
		t.Errorf("failure tree has no expectations")
	}
}

func TestParseGrammarFields(t *testing.T) {
	t.Parallel()
	g, err := Parse("g.pest", `a = { "x" }`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if g.Path != "g.pest" || g.Text != `a = { "x" }` {
		t.Errorf("got Path %q Text %q", g.Path, g.Text)
	}
}
