package grammar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExprString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{
			name: "str",
			expr: &Str{Text: "a\nb"},
			want: `"a\nb"`,
		},
		{
			name: "insens",
			expr: &Insens{Text: "select"},
			want: `^"select"`,
		},
		{
			name: "range",
			expr: &Range{Lo: 'a', Hi: 'z'},
			want: `'a'..'z'`,
		},
		{
			name: "ref",
			expr: &Ref{Name: "value"},
			want: "value",
		},
		{
			name: "seq",
			expr: &Seq{Exprs: []Expr{&Str{Text: "a"}, &Ref{Name: "b"}}},
			want: `"a" ~ b`,
		},
		{
			name: "choice in seq",
			expr: &Seq{Exprs: []Expr{
				&Str{Text: "a"},
				&Choice{Exprs: []Expr{&Str{Text: "b"}, &Str{Text: "c"}}},
			}},
			want: `"a" ~ ("b" | "c")`,
		},
		{
			name: "seq in choice",
			expr: &Choice{Exprs: []Expr{
				&Seq{Exprs: []Expr{&Str{Text: "a"}, &Str{Text: "b"}}},
				&Str{Text: "c"},
			}},
			want: `"a" ~ "b" | "c"`,
		},
		{
			name: "postfix on seq",
			expr: &Rep{Expr: &Seq{Exprs: []Expr{&Str{Text: "a"}, &Str{Text: "b"}}}, Min: 0},
			want: `("a" ~ "b")*`,
		},
		{
			name: "plus",
			expr: &Rep{Expr: &Ref{Name: "digit"}, Min: 1},
			want: "digit+",
		},
		{
			name: "opt",
			expr: &Opt{Expr: &Str{Text: "-"}},
			want: `"-"?`,
		},
		{
			name: "pos lookahead",
			expr: &Look{Expr: &Ref{Name: "x"}},
			want: "&x",
		},
		{
			name: "neg lookahead of choice",
			expr: &Look{Expr: &Choice{Exprs: []Expr{&Str{Text: "a"}, &Str{Text: "b"}}}, Neg: true},
			want: `!("a" | "b")`,
		},
		{
			name: "infix",
			expr: &Infix{
				Operand: &Ref{Name: "term"},
				Levels: []Level{
					{Ops: []Expr{&Str{Text: "+"}, &Str{Text: "-"}}},
					{Ops: []Expr{&Str{Text: "^"}}, Right: true},
				},
			},
			want: `infix(term) { left "+" "-" right "^" }`,
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := test.expr.String(); got != test.want {
				t.Errorf("got %s, want %s", got, test.want)
			}
		})
	}
}

func TestRuleString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		rule *Rule
		want string
	}{
		{&Rule{Name: "a", Kind: Normal, Expr: &Str{Text: "x"}}, `a = { "x" }`},
		{&Rule{Name: "ws", Kind: Silent, Expr: &Str{Text: " "}}, `ws = _{ " " }`},
		{&Rule{Name: "num", Kind: Atomic, Expr: &Ref{Name: "d"}}, `num = @{ d }`},
		{&Rule{Name: "str", Kind: CompoundAtomic, Expr: &Ref{Name: "c"}}, `str = ${ c }`},
		{&Rule{Name: "sp", Kind: NonAtomic, Expr: &Ref{Name: "c"}}, `sp = !{ c }`},
	}
	for _, test := range tests {
		if got := test.rule.String(); got != test.want {
			t.Errorf("got %s, want %s", got, test.want)
		}
	}
}

func TestNewSeqFlattens(t *testing.T) {
	t.Parallel()
	inner := NewSeq(0, &Str{Text: "a"}, &Str{Text: "b"})
	outer := NewSeq(0, inner, &Str{Text: "c"})
	seq, ok := outer.(*Seq)
	if !ok || len(seq.Exprs) != 3 {
		t.Fatalf("got %s, want a flat 3-element sequence", outer)
	}
	if one := NewSeq(0, &Str{Text: "a"}); one.String() != `"a"` {
		t.Errorf("one-element sequence did not collapse: %s", one)
	}
}

func TestNewChoiceFlattens(t *testing.T) {
	t.Parallel()
	inner := NewChoice(0, &Str{Text: "a"}, &Str{Text: "b"})
	outer := NewChoice(0, inner, &Str{Text: "c"})
	ch, ok := outer.(*Choice)
	if !ok || len(ch.Exprs) != 3 {
		t.Fatalf("got %s, want a flat 3-alternative choice", outer)
	}
}

func TestNewOptCollapses(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"opt opt", NewOpt(0, NewOpt(0, &Str{Text: "a"})), `"a"?`},
		{"opt star", NewOpt(0, &Rep{Expr: &Str{Text: "a"}, Min: 0}), `"a"*`},
		{"opt plus", NewOpt(0, &Rep{Expr: &Str{Text: "a"}, Min: 1}), `"a"*`},
	}
	for _, test := range tests {
		if got := test.expr.String(); got != test.want {
			t.Errorf("%s: got %s, want %s", test.name, got, test.want)
		}
	}
}

func TestGrammarLookup(t *testing.T) {
	t.Parallel()
	g := &Grammar{Rules: []*Rule{
		{Name: "a", Expr: &Str{Text: "x"}},
		{Name: "b", Expr: &Ref{Name: "a"}},
	}}
	if r := g.Rule("b"); r == nil || r.Name != "b" {
		t.Errorf("lookup b: got %v", r)
	}
	if r := g.Rule("missing"); r != nil {
		t.Errorf("lookup missing: got %v", r)
	}
	want := "a = { \"x\" }\nb = { a }"
	if diff := cmp.Diff(want, g.String()); diff != "" {
		t.Errorf("grammar string mismatch (-want +got):\n%s", diff)
	}
}
