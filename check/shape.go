package check

import (
	"strings"

	"github.com/szabgab/pest-typed/grammar"
)

// A Shape describes what a parsing expression captures.
// Shapes drive type synthesis: every rule's result type is
// a pure function of its expression's shape.
type Shape interface {
	String() string
}

// None captures nothing: literals, ranges, builtins,
// lookaheads, and references to silent rules.
type None struct{}

func (None) String() string { return "none" }

// Child is a single captured rule reference.
type Child struct {
	Rule string
}

func (s Child) String() string { return "child(" + s.Rule + ")" }

// Span is a positionally captured matched region, produced when
// an optional or repetition wraps a non-capturing expression.
type Span struct{}

func (Span) String() string { return "span" }

// Group is an ordered tuple of two or more captured items.
type Group struct {
	Items []Shape
}

func (s Group) String() string {
	parts := make([]string, len(s.Items))
	for i, item := range s.Items {
		parts[i] = item.String()
	}
	return "group(" + strings.Join(parts, ", ") + ")"
}

// Option wraps a shape that may be absent.
type Option struct {
	Item Shape
}

func (s Option) String() string { return "opt(" + s.Item.String() + ")" }

// List is zero or more captures of the same shape.
type List struct {
	Item Shape
}

func (s List) String() string { return "list(" + s.Item.String() + ")" }

// Variants is an ordered choice's capture: one variant per
// distinct alternative. Of maps each source alternative index
// to its variant index; textually identical alternatives share
// a variant.
type Variants struct {
	Alts []Shape
	Of   []int
}

func (s Variants) String() string {
	parts := make([]string, len(s.Alts))
	for i, alt := range s.Alts {
		parts[i] = alt.String()
	}
	return "variants(" + strings.Join(parts, " | ") + ")"
}

// InfixShape is an operator ladder's capture: the promoted
// operand or a binary application.
type InfixShape struct {
	Operand string
}

func (s InfixShape) String() string { return "infix(" + s.Operand + ")" }

// ExprShape returns the capture shape of e among g's rules.
// It is the same computation Check records in Info.Shapes,
// available to the code generator for sub-expressions.
func ExprShape(g *grammar.Grammar, e grammar.Expr) Shape {
	c := &checker{g: g, rules: make(map[string]*grammar.Rule)}
	for _, r := range g.Rules {
		if c.rules[r.Name] == nil {
			c.rules[r.Name] = r
		}
	}
	return c.shapeOf(e)
}

func (c *checker) shapeOf(e grammar.Expr) Shape {
	switch e := e.(type) {
	case *grammar.Str, *grammar.Insens, *grammar.Range, *grammar.Look:
		return None{}
	case *grammar.Ref:
		r := c.rules[e.Name]
		if r == nil || r.Kind == grammar.Silent {
			return None{}
		}
		return Child{Rule: e.Name}
	case *grammar.Seq:
		var items []Shape
		for _, sub := range e.Exprs {
			s := c.shapeOf(sub)
			if _, none := s.(None); none {
				continue
			}
			items = append(items, s)
		}
		switch len(items) {
		case 0:
			return None{}
		case 1:
			return items[0]
		}
		return Group{Items: items}
	case *grammar.Choice:
		var alts []Shape
		var of []int
		seen := make(map[string]int)
		for _, sub := range e.Exprs {
			key := sub.String()
			if k, ok := seen[key]; ok {
				of = append(of, k)
				if c.cur != nil {
					c.notef("rule %s: duplicate alternative %s in choice", c.cur.Name, key)
				}
				continue
			}
			seen[key] = len(alts)
			of = append(of, len(alts))
			alts = append(alts, c.shapeOf(sub))
		}
		return Variants{Alts: alts, Of: of}
	case *grammar.Opt:
		inner := c.shapeOf(e.Expr)
		switch inner.(type) {
		case None:
			return Option{Item: Span{}}
		case List, Option:
			// Absent and empty are the same thing.
			return inner
		}
		return Option{Item: inner}
	case *grammar.Rep:
		inner := c.shapeOf(e.Expr)
		if _, none := inner.(None); none {
			return List{Item: Span{}}
		}
		return List{Item: inner}
	case *grammar.Infix:
		return InfixShape{Operand: e.Operand.Name}
	}
	panic("impossible")
}
