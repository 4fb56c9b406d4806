package check

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/eaburns/pretty"
	"github.com/google/go-cmp/cmp"
	"github.com/szabgab/pest-typed/grammar"
)

func str(s string) grammar.Expr { return &grammar.Str{Text: s} }

func ref(n string) *grammar.Ref { return &grammar.Ref{Name: n} }

func seq(es ...grammar.Expr) grammar.Expr { return &grammar.Seq{Exprs: es} }

func alt(es ...grammar.Expr) grammar.Expr { return &grammar.Choice{Exprs: es} }

func opt(e grammar.Expr) grammar.Expr { return &grammar.Opt{Expr: e} }

func star(e grammar.Expr) grammar.Expr { return &grammar.Rep{Expr: e} }

func plus(e grammar.Expr) grammar.Expr { return &grammar.Rep{Expr: e, Min: 1} }

func rule(name string, kind grammar.Kind, e grammar.Expr) *grammar.Rule {
	return &grammar.Rule{Name: name, Kind: kind, Expr: e}
}

func gram(rules ...*grammar.Rule) *grammar.Grammar {
	return &grammar.Grammar{Rules: rules}
}

type errorTest struct {
	name string
	g    *grammar.Grammar
	err  string // regexp, "" means no error
}

func (test errorTest) run(t *testing.T) {
	switch _, errs := Check(test.g); {
	case test.err == "" && len(errs) == 0:
		return
	case test.err == "" && len(errs) > 0:
		t.Errorf("got %v, expected nil", errs)
	case test.err != "" && len(errs) == 0:
		t.Errorf("got nil, expected matching %s", test.err)
	default:
		err := fmt.Sprintf("%v", errs)
		if !regexp.MustCompile(test.err).MatchString(err) {
			t.Errorf("got %v, expected matching %s", errs, test.err)
		}
	}
}

func TestCheckErrors(t *testing.T) {
	t.Parallel()
	tests := []errorTest{
		{
			name: "ok",
			g: gram(
				rule("a", grammar.Normal, seq(str("x"), ref("b"))),
				rule("b", grammar.Silent, str("y")),
			),
			err: "",
		},
		{
			name: "ok builtins",
			g: gram(
				rule("a", grammar.Normal, seq(ref("SOI"), ref("ASCII_DIGIT"), ref("EOI"))),
			),
			err: "",
		},
		{
			name: "empty grammar",
			g:    gram(),
			err:  "defines no rules",
		},
		{
			name: "undefined rule",
			g:    gram(rule("a", grammar.Normal, ref("nope"))),
			err:  "rule a: undefined rule nope",
		},
		{
			name: "undefined rules all reported",
			g:    gram(rule("a", grammar.Normal, seq(ref("x"), ref("y")))),
			err:  `undefined rule x.*undefined rule y`,
		},
		{
			name: "reserved name",
			g:    gram(rule("ASCII_DIGIT", grammar.Normal, str("0"))),
			err:  "cannot define reserved rule ASCII_DIGIT",
		},
		{
			name: "duplicate rule",
			g: gram(
				rule("a", grammar.Normal, str("x")),
				rule("a", grammar.Normal, str("y")),
			),
			err: "rule a is already defined",
		},
		{
			name: "invalid name",
			g:    gram(rule("no-dash", grammar.Normal, str("x"))),
			err:  `invalid rule name "no-dash"`,
		},
		{
			name: "go name collision",
			g: gram(
				rule("my_rule", grammar.Normal, str("x")),
				rule("myRule", grammar.Normal, str("y")),
			),
			err: "collide as Go identifier MyRule",
		},
		{
			name: "plus over optional",
			g:    gram(rule("a", grammar.Normal, plus(opt(str("x"))))),
			err:  "repetition over an expression that can match the empty string",
		},
		{
			name: "star over nullable rule",
			g: gram(
				rule("a", grammar.Normal, star(ref("b"))),
				rule("b", grammar.Normal, opt(str("x"))),
			),
			err: "repetition over an expression",
		},
		{
			name: "star over lookahead",
			g:    gram(rule("a", grammar.Normal, star(&grammar.Look{Expr: str("x")}))),
			err:  "repetition over an expression",
		},
		{
			name: "plus over nonempty ok",
			g:    gram(rule("a", grammar.Normal, plus(alt(str("x"), str("yz"))))),
			err:  "",
		},
		{
			name: "direct left recursion",
			g:    gram(rule("a", grammar.Normal, seq(ref("a"), str("x")))),
			err:  "left-recursive cycle: a -> a",
		},
		{
			name: "left recursion through optional prefix",
			g: gram(
				rule("a", grammar.Normal, seq(opt(str("x")), ref("a"))),
			),
			err: "left-recursive cycle: a -> a",
		},
		{
			name: "left recursion through lookahead",
			g: gram(
				rule("a", grammar.Normal, seq(&grammar.Look{Expr: ref("a"), Neg: true}, str("x"))),
			),
			err: "left-recursive cycle: a -> a",
		},
		{
			name: "no left recursion after consuming prefix",
			g:    gram(rule("a", grammar.Normal, opt(seq(str("x"), ref("a"))))),
			err:  "",
		},
		{
			name: "whitespace nullable",
			g: gram(
				rule("a", grammar.Normal, str("x")),
				rule("WHITESPACE", grammar.Silent, star(str(" "))),
			),
			err: "WHITESPACE may not match the empty string",
		},
		{
			name: "infix not top level",
			g: gram(
				rule("t", grammar.Normal, str("1")),
				rule("a", grammar.Normal, opt(&grammar.Infix{
					Operand: ref("t"),
					Levels:  []grammar.Level{{Ops: []grammar.Expr{str("+")}}},
				})),
			),
			err: "infix must be the entire rule body",
		},
		{
			name: "infix wrong kind",
			g: gram(
				rule("t", grammar.Normal, str("1")),
				rule("a", grammar.Atomic, &grammar.Infix{
					Operand: ref("t"),
					Levels:  []grammar.Level{{Ops: []grammar.Expr{str("+")}}},
				}),
			),
			err: "infix rule a must be a normal rule",
		},
		{
			name: "infix silent operand",
			g: gram(
				rule("t", grammar.Silent, str("1")),
				rule("a", grammar.Normal, &grammar.Infix{
					Operand: ref("t"),
					Levels:  []grammar.Level{{Ops: []grammar.Expr{str("+")}}},
				}),
			),
			err: "infix operand t may not be silent",
		},
		{
			name: "infix undefined operand",
			g: gram(
				rule("a", grammar.Normal, &grammar.Infix{
					Operand: ref("t"),
					Levels:  []grammar.Level{{Ops: []grammar.Expr{str("+")}}},
				}),
			),
			err: "undefined rule t",
		},
		{
			name: "infix empty operator",
			g: gram(
				rule("t", grammar.Normal, str("1")),
				rule("a", grammar.Normal, &grammar.Infix{
					Operand: ref("t"),
					Levels:  []grammar.Level{{Ops: []grammar.Expr{str("")}}},
				}),
			),
			err: "infix operator may not be empty",
		},
		{
			name: "infix no levels",
			g: gram(
				rule("t", grammar.Normal, str("1")),
				rule("a", grammar.Normal, &grammar.Infix{Operand: ref("t")}),
			),
			err: "infix needs at least one precedence level",
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

// An indirect cycle names every rule on it and nothing else.
func TestLeftRecursionCycleOnly(t *testing.T) {
	t.Parallel()
	g := gram(
		rule("a", grammar.Normal, ref("b")),
		rule("b", grammar.Normal, ref("c")),
		rule("c", grammar.Normal, alt(ref("a"), str("x"))),
		rule("d", grammar.Normal, seq(str("y"), ref("a"))),
	)
	_, errs := Check(g)
	if len(errs) != 1 {
		t.Fatalf("got %d errors %v, want 1", len(errs), errs)
	}
	msg := errs[0].Error()
	if !strings.Contains(msg, "a -> b -> c -> a") {
		t.Errorf("got %q, want the full cycle a -> b -> c -> a", msg)
	}
	if strings.Contains(msg, "d") {
		t.Errorf("got %q, which names rule d off the cycle", msg)
	}
}

func TestTwoIndependentCycles(t *testing.T) {
	t.Parallel()
	g := gram(
		rule("a", grammar.Normal, ref("b")),
		rule("b", grammar.Normal, ref("a")),
		rule("c", grammar.Normal, seq(ref("c"), str("x"))),
	)
	_, errs := Check(g)
	if len(errs) != 2 {
		t.Fatalf("got %d errors %v, want 2", len(errs), errs)
	}
	joined := fmt.Sprintf("%v", errs)
	for _, want := range []string{"a -> b -> a", "c -> c"} {
		if !strings.Contains(joined, want) {
			t.Errorf("errors %s missing cycle %s", joined, want)
		}
	}
}

func TestShapes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		g    *grammar.Grammar
		rule string
		want Shape
	}{
		{
			name: "literal only",
			g:    gram(rule("a", grammar.Normal, str("x"))),
			rule: "a",
			want: None{},
		},
		{
			name: "single child",
			g: gram(
				rule("a", grammar.Normal, seq(str("("), ref("b"), str(")"))),
				rule("b", grammar.Normal, str("x")),
			),
			rule: "a",
			want: Child{Rule: "b"},
		},
		{
			name: "silent child drops",
			g: gram(
				rule("a", grammar.Normal, seq(ref("b"), ref("c"))),
				rule("b", grammar.Silent, str("x")),
				rule("c", grammar.Normal, str("y")),
			),
			rule: "a",
			want: Child{Rule: "c"},
		},
		{
			name: "group",
			g: gram(
				rule("a", grammar.Normal, seq(ref("b"), str("-"), ref("c"))),
				rule("b", grammar.Normal, str("x")),
				rule("c", grammar.Normal, str("y")),
			),
			rule: "a",
			want: Group{Items: []Shape{Child{Rule: "b"}, Child{Rule: "c"}}},
		},
		{
			name: "optional unit",
			g: gram(
				rule("a", grammar.Normal, seq(opt(str("-")), ref("b"))),
				rule("b", grammar.Normal, str("1")),
			),
			rule: "a",
			want: Group{Items: []Shape{Option{Item: Span{}}, Child{Rule: "b"}}},
		},
		{
			name: "optional child",
			g: gram(
				rule("a", grammar.Normal, opt(ref("b"))),
				rule("b", grammar.Normal, str("x")),
			),
			rule: "a",
			want: Option{Item: Child{Rule: "b"}},
		},
		{
			name: "repetition of units",
			g:    gram(rule("a", grammar.Normal, plus(ref("ASCII_DIGIT")))),
			rule: "a",
			want: List{Item: Span{}},
		},
		{
			name: "repetition of children",
			g: gram(
				rule("a", grammar.Normal, star(ref("b"))),
				rule("b", grammar.Normal, str("x")),
			),
			rule: "a",
			want: List{Item: Child{Rule: "b"}},
		},
		{
			name: "choice variants",
			g: gram(
				rule("a", grammar.Normal, alt(ref("b"), str("z"))),
				rule("b", grammar.Normal, str("x")),
			),
			rule: "a",
			want: Variants{Alts: []Shape{Child{Rule: "b"}, None{}}, Of: []int{0, 1}},
		},
		{
			name: "choice dedups identical alternatives",
			g: gram(
				rule("a", grammar.Normal, alt(str("x"), str("y"), str("x"))),
			),
			rule: "a",
			want: Variants{Alts: []Shape{None{}, None{}}, Of: []int{0, 1, 0}},
		},
		{
			name: "lookahead captures nothing",
			g: gram(
				rule("a", grammar.Normal, seq(&grammar.Look{Expr: ref("b")}, ref("b"))),
				rule("b", grammar.Normal, str("x")),
			),
			rule: "a",
			want: Child{Rule: "b"},
		},
		{
			name: "infix",
			g: gram(
				rule("t", grammar.Normal, str("1")),
				rule("a", grammar.Normal, &grammar.Infix{
					Operand: ref("t"),
					Levels:  []grammar.Level{{Ops: []grammar.Expr{str("+")}}},
				}),
			),
			rule: "a",
			want: InfixShape{Operand: "t"},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			info, errs := Check(test.g)
			if len(errs) > 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if diff := cmp.Diff(test.want, info.Shapes[test.rule]); diff != "" {
				t.Errorf("shape mismatch (-want +got):\n%s\n%s", diff, pretty.String(info.Shapes[test.rule]))
			}
		})
	}
}

func TestDuplicateAlternativeNote(t *testing.T) {
	t.Parallel()
	g := gram(rule("a", grammar.Normal, alt(str("x"), str("x"))))
	info, errs := Check(g)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []string{`rule a: duplicate alternative "x" in choice`}
	if diff := cmp.Diff(want, info.Notes); diff != "" {
		t.Errorf("notes mismatch (-want +got):\n%s", diff)
	}
}

func TestNullable(t *testing.T) {
	t.Parallel()
	g := gram(
		rule("a", grammar.Normal, opt(str("x"))),
		rule("b", grammar.Normal, ref("a")),
		rule("c", grammar.Normal, seq(ref("a"), ref("b"))),
		rule("d", grammar.Normal, seq(ref("a"), str("!"))),
	)
	info, errs := Check(g)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := map[string]bool{"a": true, "b": true, "c": true}
	if diff := cmp.Diff(want, info.Nullable); diff != "" {
		t.Errorf("nullable mismatch (-want +got):\n%s", diff)
	}
}

func TestTriviaFlags(t *testing.T) {
	t.Parallel()
	g := gram(
		rule("a", grammar.Normal, str("x")),
		rule("WHITESPACE", grammar.Silent, plus(str(" "))),
	)
	info, errs := Check(g)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !info.HasWhitespace || info.HasComment {
		t.Errorf("got whitespace=%v comment=%v", info.HasWhitespace, info.HasComment)
	}
}

func TestGoName(t *testing.T) {
	t.Parallel()
	tests := []struct{ name, want string }{
		{"json", "Json"},
		{"my_rule", "MyRule"},
		{"value2", "Value2"},
		{"_private", "Private"},
		{"a_b_c", "ABC"},
		{"alreadyCamel", "AlreadyCamel"},
	}
	for _, test := range tests {
		if got := GoName(test.name); got != test.want {
			t.Errorf("GoName(%q) = %q, want %q", test.name, got, test.want)
		}
	}
}

func TestErrorOrder(t *testing.T) {
	t.Parallel()
	g := gram(
		rule("b", grammar.Normal, ref("zz")),
		rule("a", grammar.Normal, ref("yy")),
	)
	g.Rules[0].Expr.(*grammar.Ref).Off = 20
	g.Rules[1].Expr.(*grammar.Ref).Off = 40
	_, errs := Check(g)
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2", len(errs))
	}
	if !strings.Contains(errs[0].Error(), "zz") || !strings.Contains(errs[1].Error(), "yy") {
		t.Errorf("errors not in offset order: %v", errs)
	}
}
