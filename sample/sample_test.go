// Copyright © 2026 The pest-typed Authors under an MIT-style license.

package sample

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/szabgab/pest-typed/peg"
)

func TestOrderedChoiceFirstWins(t *testing.T) {
	t.Parallel()

	// "x" wins over "xy", so the full parse stops at offset 1.
	_, err := ParseA("xy")
	if err == nil {
		t.Fatal("ParseA(\"xy\") succeeded, expected an error")
	}
	perr, ok := err.(*peg.Error)
	if !ok {
		t.Fatalf("got %T, want *peg.Error", err)
	}
	if perr.Offset != 1 {
		t.Errorf("failed at offset %d, want 1", perr.Offset)
	}
	if diff := cmp.Diff([]string{"EOI"}, perr.Expected); diff != "" {
		t.Errorf("expected set differs: %s", diff)
	}

	n, consumed, err := ParseAPartial("xy")
	if err != nil {
		t.Fatalf("ParseAPartial failed: %v", err)
	}
	if consumed != 1 {
		t.Errorf("consumed %d bytes, want 1", consumed)
	}
	if _, ok := n.E0.(*AAltA); !ok {
		t.Errorf("variant is %T, want *AAltA", n.E0)
	}
}

func TestFurthestFailure(t *testing.T) {
	t.Parallel()
	_, err := ParseS("ad")
	if err == nil {
		t.Fatal("ParseS(\"ad\") succeeded, expected an error")
	}
	perr, ok := err.(*peg.Error)
	if !ok {
		t.Fatalf("got %T, want *peg.Error", err)
	}
	if perr.Offset != 1 {
		t.Errorf("failed at offset %d, want 1", perr.Offset)
	}
	if perr.Pos.Line != 1 || perr.Pos.Col != 2 {
		t.Errorf("failed at %v, want 1.2", perr.Pos)
	}
	if diff := cmp.Diff([]string{`"b"`, `"c"`}, perr.Expected); diff != "" {
		t.Errorf("expected set differs: %s", diff)
	}
}

func TestRepetitionSpans(t *testing.T) {
	t.Parallel()
	n, err := ParseNum("123")
	if err != nil {
		t.Fatalf("ParseNum failed: %v", err)
	}
	if len(n.E0) != 3 {
		t.Fatalf("got %d spans, want 3", len(n.E0))
	}
	var b strings.Builder
	for _, s := range n.E0 {
		b.WriteString(s.Text())
	}
	if b.String() != "123" {
		t.Errorf("spans concatenate to %q, want %q", b.String(), "123")
	}
}

func TestTriviaBetweenRepetitions(t *testing.T) {
	t.Parallel()

	// num is a normal rule, so trivia is skipped between digits
	// but excluded from the digit spans and the trailing position.
	n, err := ParseNum("1 2 3")
	if err != nil {
		t.Fatalf("ParseNum failed: %v", err)
	}
	if len(n.E0) != 3 {
		t.Fatalf("got %d spans, want 3", len(n.E0))
	}
	for i, want := range []string{"1", "2", "3"} {
		if got := n.E0[i].Text(); got != want {
			t.Errorf("span %d is %q, want %q", i, got, want)
		}
	}

	_, consumed, err := ParseNumPartial("12 x")
	if err != nil {
		t.Fatalf("ParseNumPartial failed: %v", err)
	}
	if consumed != 2 {
		t.Errorf("consumed %d bytes, want 2", consumed)
	}
}

func TestAtomicRules(t *testing.T) {
	t.Parallel()

	// word is atomic: no trivia inside, span-only result.
	if _, err := ParseWord("ab cd"); err == nil {
		t.Error("ParseWord(\"ab cd\") succeeded, expected an error")
	}

	// pair is normal: trivia separates the two words.
	p, err := ParsePair("ab cd")
	if err != nil {
		t.Fatalf("ParsePair failed: %v", err)
	}
	if p.Word1().Text() != "ab" || p.Word2().Text() != "cd" {
		t.Errorf("got words %q and %q", p.Word1().Text(), p.Word2().Text())
	}
}

func TestCompoundAtomicAndNonAtomic(t *testing.T) {
	t.Parallel()

	// list is compound-atomic: no trivia around the commas, but
	// item is non-atomic and re-enables skipping inside itself.
	l, err := ParseList("ab cd,ef gh")
	if err != nil {
		t.Fatalf("ParseList failed: %v", err)
	}
	if l.Item1().Word1().Text() != "ab" || l.Item1().Word2().Text() != "cd" {
		t.Errorf("first item is %q", l.Item1().Text())
	}
	if len(l.Item2()) != 1 || l.Item2()[0].Text() != "ef gh" {
		t.Errorf("rest of list is %v", l.Item2())
	}

	// Trivia after a comma is not skipped inside list.
	if _, err := ParseList("ab cd, ef gh"); err == nil {
		t.Error("ParseList with a space after the comma succeeded, expected an error")
	}
}

func TestChoiceRestoresPosition(t *testing.T) {
	t.Parallel()

	// The first alternative of nest fails after consuming "(",
	// and the second alternative still matches from the start.
	n, consumed, err := ParseNestPartial("x)")
	if err != nil {
		t.Fatalf("ParseNestPartial failed: %v", err)
	}
	if consumed != 1 {
		t.Errorf("consumed %d bytes, want 1", consumed)
	}
	if _, ok := n.E0.(*NestAltB); !ok {
		t.Errorf("variant is %T, want *NestAltB", n.E0)
	}

	m, err := ParseNest("((x))")
	if err != nil {
		t.Fatalf("ParseNest failed: %v", err)
	}
	inner, ok := m.E0.(*NestAltA)
	if !ok {
		t.Fatalf("variant is %T, want *NestAltA", m.E0)
	}
	if inner.Nest().Text() != "(x)" {
		t.Errorf("inner nest is %q, want %q", inner.Nest().Text(), "(x)")
	}
}

func TestDepthLimit(t *testing.T) {
	t.Parallel()
	deep := strings.Repeat("(", 5000) + "x" + strings.Repeat(")", 5000)
	_, err := ParseNest(deep)
	if err == nil {
		t.Fatal("deep ParseNest succeeded, expected a limit error")
	}
	if _, ok := err.(*peg.LimitError); !ok {
		t.Errorf("got %T, want *peg.LimitError", err)
	}

	shallow := strings.Repeat("(", 32) + "x" + strings.Repeat(")", 32)
	if _, err := ParseNest(shallow); err != nil {
		t.Errorf("shallow ParseNest failed: %v", err)
	}
	if _, err := ParseNest(shallow, peg.MaxDepth(16)); err == nil {
		t.Errorf("ParseNest with MaxDepth(16) succeeded, expected a limit error")
	}
}

func TestSilentRuleType(t *testing.T) {
	t.Parallel()

	// Silent rules still get their own result type.
	w, err := ParseWHITESPACE(" ")
	if err != nil {
		t.Fatalf("ParseWHITESPACE failed: %v", err)
	}
	if w.Text() != " " {
		t.Errorf("got %q, want a single space", w.Text())
	}
}
