// Copyright © 2026 The pest-typed Authors under an MIT-style license.

// Package grammar defines the rule and expression IR
// consumed by the analyzer and the code generator.
package grammar

import (
	"fmt"
	"strconv"
	"strings"
)

// A Grammar is an ordered set of named rules.
// Path and Text identify and hold the source when the grammar
// was parsed from a file; both are "" for in-memory grammars.
type Grammar struct {
	Path  string
	Text  string
	Rules []*Rule
}

// Rule returns the rule with the given name, or nil.
func (g *Grammar) Rule(name string) *Rule {
	for _, r := range g.Rules {
		if r.Name == name {
			return r
		}
	}
	return nil
}

func (g *Grammar) String() string {
	var s strings.Builder
	for i, r := range g.Rules {
		if i > 0 {
			s.WriteRune('\n')
		}
		s.WriteString(r.String())
	}
	return s.String()
}

// A Kind says how a rule treats trivia and what its result carries.
type Kind int

const (
	// Normal inherits the caller's atomicity and captures content.
	Normal Kind = iota
	// Silent matches like Normal but contributes no capture to its parent.
	Silent
	// Atomic suppresses trivia skipping and captures only its span.
	Atomic
	// CompoundAtomic suppresses trivia skipping but captures content.
	CompoundAtomic
	// NonAtomic re-enables trivia skipping and captures content.
	NonAtomic
)

func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Silent:
		return "silent"
	case Atomic:
		return "atomic"
	case CompoundAtomic:
		return "compound-atomic"
	case NonAtomic:
		return "non-atomic"
	}
	panic("impossible")
}

// Marker returns the rule-kind marker used in grammar syntax.
func (k Kind) Marker() string {
	switch k {
	case Normal:
		return ""
	case Silent:
		return "_"
	case Atomic:
		return "@"
	case CompoundAtomic:
		return "$"
	case NonAtomic:
		return "!"
	}
	panic("impossible")
}

// A Rule is a named parsing expression.
type Rule struct {
	Name string
	Kind Kind
	Expr Expr
	Off  int // byte offset of the definition in the source, 0 if none
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s = %s{ %s }", r.Name, r.Kind.Marker(), r.Expr)
}

// An Expr is a parsing expression.
// The String method renders the expression in grammar syntax;
// the rendering is used in diagnostics and generated comments.
type Expr interface {
	String() string
	off() int
}

// A Str matches a literal string.
type Str struct {
	Off  int
	Text string
}

func (e *Str) off() int       { return e.Off }
func (e *Str) String() string { return strconv.Quote(e.Text) }

// An Insens matches a literal string ignoring ASCII case.
type Insens struct {
	Off  int
	Text string
}

func (e *Insens) off() int       { return e.Off }
func (e *Insens) String() string { return "^" + strconv.Quote(e.Text) }

// A Range matches one rune in an inclusive range.
type Range struct {
	Off    int
	Lo, Hi rune
}

func (e *Range) off() int { return e.Off }
func (e *Range) String() string {
	return strconv.QuoteRune(e.Lo) + ".." + strconv.QuoteRune(e.Hi)
}

// A Ref references a rule or builtin by name.
type Ref struct {
	Off  int
	Name string
}

func (e *Ref) off() int       { return e.Off }
func (e *Ref) String() string { return e.Name }

// A Seq matches its expressions in order.
type Seq struct {
	Off   int
	Exprs []Expr
}

func (e *Seq) off() int { return e.Off }
func (e *Seq) String() string {
	parts := make([]string, len(e.Exprs))
	for i, sub := range e.Exprs {
		parts[i] = render(sub, precSeq)
	}
	return strings.Join(parts, " ~ ")
}

// A Choice matches the first of its expressions that succeeds.
type Choice struct {
	Off   int
	Exprs []Expr
}

func (e *Choice) off() int { return e.Off }
func (e *Choice) String() string {
	parts := make([]string, len(e.Exprs))
	for i, sub := range e.Exprs {
		parts[i] = render(sub, precChoice)
	}
	return strings.Join(parts, " | ")
}

// An Opt matches its expression or nothing; it never fails.
type Opt struct {
	Off  int
	Expr Expr
}

func (e *Opt) off() int       { return e.Off }
func (e *Opt) String() string { return render(e.Expr, precPost) + "?" }

// A Rep matches its expression Min or more times.
// Min is 0 or 1.
type Rep struct {
	Off  int
	Expr Expr
	Min  int
}

func (e *Rep) off() int { return e.Off }
func (e *Rep) String() string {
	if e.Min == 0 {
		return render(e.Expr, precPost) + "*"
	}
	return render(e.Expr, precPost) + "+"
}

// A Look is a lookahead. It consumes nothing and captures nothing.
type Look struct {
	Off  int
	Expr Expr
	Neg  bool
}

func (e *Look) off() int { return e.Off }
func (e *Look) String() string {
	if e.Neg {
		return "!" + render(e.Expr, precPost)
	}
	return "&" + render(e.Expr, precPost)
}

// An Infix is an operator-precedence ladder over an operand rule.
// Levels run from lowest to highest binding.
type Infix struct {
	Off     int
	Operand *Ref
	Levels  []Level
}

// A Level is one precedence level of an Infix.
type Level struct {
	Ops   []Expr // Str or Insens
	Right bool
}

func (e *Infix) off() int { return e.Off }
func (e *Infix) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "infix(%s) {", e.Operand)
	for _, l := range e.Levels {
		if l.Right {
			s.WriteString(" right")
		} else {
			s.WriteString(" left")
		}
		for _, op := range l.Ops {
			s.WriteRune(' ')
			s.WriteString(op.String())
		}
	}
	s.WriteString(" }")
	return s.String()
}

// Rendering precedence: choice binds loosest, then sequence,
// then the postfix and prefix operators, then primaries.
const (
	precChoice = iota
	precSeq
	precPost
)

func render(e Expr, prec int) string {
	var p int
	switch e.(type) {
	case *Choice:
		p = precChoice
	case *Seq:
		p = precSeq
	default:
		p = precPost
	}
	if p < prec {
		return "(" + e.String() + ")"
	}
	return e.String()
}

// Builtins is the set of reserved predefined rule names.
var Builtins = map[string]bool{
	"ANY":                 true,
	"SOI":                 true,
	"EOI":                 true,
	"NEWLINE":             true,
	"ASCII_DIGIT":         true,
	"ASCII_NONZERO_DIGIT": true,
	"ASCII_BIN_DIGIT":     true,
	"ASCII_OCT_DIGIT":     true,
	"ASCII_HEX_DIGIT":     true,
	"ASCII_ALPHA_LOWER":   true,
	"ASCII_ALPHA_UPPER":   true,
	"ASCII_ALPHA":         true,
	"ASCII_ALPHANUMERIC":  true,
	"ASCII":               true,
}

// NewSeq returns the sequence of exprs, flattening nested
// sequences and collapsing a one-element sequence to its element.
func NewSeq(off int, exprs ...Expr) Expr {
	var flat []Expr
	for _, e := range exprs {
		if s, ok := e.(*Seq); ok {
			flat = append(flat, s.Exprs...)
			continue
		}
		flat = append(flat, e)
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &Seq{Off: off, Exprs: flat}
}

// NewChoice returns the ordered choice of exprs, flattening nested
// choices and collapsing a one-element choice to its element.
func NewChoice(off int, exprs ...Expr) Expr {
	var flat []Expr
	for _, e := range exprs {
		if c, ok := e.(*Choice); ok {
			flat = append(flat, c.Exprs...)
			continue
		}
		flat = append(flat, e)
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &Choice{Off: off, Exprs: flat}
}

// NewOpt returns an optional of e.
// An optional of an optional is redundant, and an optional
// repetition is a star repetition; both collapse.
func NewOpt(off int, e Expr) Expr {
	switch e := e.(type) {
	case *Opt:
		return e
	case *Rep:
		if e.Min == 0 {
			return e
		}
		return &Rep{Off: e.Off, Expr: e.Expr, Min: 0}
	}
	return &Opt{Off: off, Expr: e}
}
