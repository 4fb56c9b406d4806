package gen

import (
	"fmt"

	"github.com/szabgab/pest-typed/check"
	"github.com/szabgab/pest-typed/grammar"
)

// A site annotates a parsing expression with its capture shape,
// the Go type of its captured value, and the names of any
// generated types the capture needs. The site tree mirrors the
// expression tree; kids align with sequence elements, choice
// alternatives, or the single inner expression of ?, *, +, &, and !.
type site struct {
	expr  grammar.Expr
	shape check.Shape
	typ   string // Go type of the captured value; "" when nothing is captured
	kids  []*site

	// Sequences captured as a group.
	group string  // named group struct; "" for a rule body or single capture
	slots []*site // capturing elements in order

	// Choices.
	iface string
	alts  []*variant
}

// A variant maps one choice alternative to the variant it produces.
// Textually identical alternatives share a variant: the duplicate
// can never succeed where the first occurrence failed, so it is
// neither typed nor emitted.
type variant struct {
	site     *site
	index    int
	wrapper  string // wrapper struct; "" when the alternative is promoted
	promoted string // promoted rule type; "" when wrapped
	dup      bool
}

// A rulePlan is everything the emitters need for one rule:
// the annotated body, the result struct's fields, and the
// named types allocated for nested captures.
type rulePlan struct {
	rule   *grammar.Rule
	goName string
	body   *site           // nil for infix rules
	infix  *grammar.Infix  // nil for all others
	fields []*site         // result struct fields, E0..
	named  []*site         // sites with named types, in declaration order
}

type planner struct {
	g      *grammar.Grammar
	rules  map[string]*grammar.Rule
	goName string
	ngroup int
	nalt   int
	named  []*site
}

func planRule(g *grammar.Grammar, r *grammar.Rule) *rulePlan {
	p := &planner{
		g:      g,
		rules:  make(map[string]*grammar.Rule),
		goName: check.GoName(r.Name),
	}
	for _, def := range g.Rules {
		if p.rules[def.Name] == nil {
			p.rules[def.Name] = def
		}
	}
	rp := &rulePlan{rule: r, goName: p.goName}
	if in, ok := r.Expr.(*grammar.Infix); ok {
		rp.infix = in
		rp.fields = []*site{{
			expr:  in,
			shape: check.InfixShape{Operand: in.Operand.Name},
			typ:   rp.goName + "Alt",
		}}
		return rp
	}
	// Atomic rules capture only their span: the body is planned
	// without captures, as are lookahead subtrees everywhere.
	capture := r.Kind != grammar.Atomic
	rp.body = p.plan(r.Expr, capture, true)
	rp.named = p.named
	rp.fields = topFields(rp.body)
	return rp
}

func topFields(body *site) []*site {
	if _, ok := body.shape.(check.Group); ok && body.group == "" {
		return body.slots
	}
	if body.typ == "" {
		return nil
	}
	return []*site{body}
}

func (p *planner) plan(e grammar.Expr, capture, top bool) *site {
	s := &site{expr: e, shape: check.ExprShape(p.g, e)}
	if !capture {
		s.shape = check.None{}
	}
	switch e := e.(type) {
	case *grammar.Str, *grammar.Insens, *grammar.Range:
	case *grammar.Ref:
		if capture {
			if r := p.rules[e.Name]; r != nil && r.Kind != grammar.Silent {
				s.typ = "*" + check.GoName(e.Name)
			}
		}
	case *grammar.Seq:
		p.planSeq(s, e, capture, top)
	case *grammar.Choice:
		p.planChoice(s, e, capture)
	case *grammar.Opt:
		kid := p.plan(e.Expr, capture, false)
		s.kids = []*site{kid}
		if capture {
			s.typ = optType(s.shape, kid)
		}
	case *grammar.Rep:
		kid := p.plan(e.Expr, capture, false)
		s.kids = []*site{kid}
		if capture {
			s.typ = "[]" + elemType(kid)
		}
	case *grammar.Look:
		s.kids = []*site{p.plan(e.Expr, false, false)}
	default:
		panic("impossible")
	}
	return s
}

func (p *planner) planSeq(s *site, e *grammar.Seq, capture, top bool) {
	for _, sub := range e.Exprs {
		kid := p.plan(sub, capture, false)
		s.kids = append(s.kids, kid)
		if kid.typ != "" {
			s.slots = append(s.slots, kid)
		}
	}
	switch len(s.slots) {
	case 0:
	case 1:
		s.typ = s.slots[0].typ
	default:
		if top {
			// The rule struct itself carries the fields.
			break
		}
		// A multi-capture sequence nested under ?, *, or a choice
		// needs a named struct of its own. The names are allocated
		// in plan order, so they are deterministic per rule.
		p.ngroup++
		s.group = p.goName + "Group"
		if p.ngroup > 1 {
			s.group = fmt.Sprintf("%sGroup%d", p.goName, p.ngroup)
		}
		s.typ = "*" + s.group
		p.named = append(p.named, s)
	}
}

func (p *planner) planChoice(s *site, e *grammar.Choice, capture bool) {
	if !capture {
		for _, sub := range e.Exprs {
			s.kids = append(s.kids, p.plan(sub, false, false))
		}
		return
	}
	p.nalt++
	s.iface = p.goName + "Alt"
	if p.nalt > 1 {
		s.iface = fmt.Sprintf("%sAlt%d", p.goName, p.nalt)
	}
	s.typ = s.iface
	p.named = append(p.named, s)
	seen := make(map[string]*variant)
	n := 0
	for _, sub := range e.Exprs {
		if dup, ok := seen[sub.String()]; ok {
			s.kids = append(s.kids, dup.site)
			s.alts = append(s.alts, &variant{
				site: dup.site, index: dup.index,
				wrapper: dup.wrapper, promoted: dup.promoted, dup: true,
			})
			continue
		}
		// An alternative that is a sequence puts its captures
		// directly on the wrapper struct, like a rule body.
		kid := p.plan(sub, true, true)
		s.kids = append(s.kids, kid)
		v := &variant{site: kid, index: n}
		if ref, ok := sub.(*grammar.Ref); ok {
			if r := p.rules[ref.Name]; r != nil && r.Kind != grammar.Silent {
				v.promoted = check.GoName(ref.Name)
			}
		}
		if v.promoted == "" {
			v.wrapper = s.iface + altTag(n)
		}
		seen[sub.String()] = v
		s.alts = append(s.alts, v)
		n++
	}
}

// optType maps an optional capture to its nilable Go form.
// Pointer, slice, and interface captures are already nilable;
// only a bare span capture needs lifting to a pointer.
func optType(shape check.Shape, kid *site) string {
	if _, ok := shape.(check.Option); ok && kid.typ == "" {
		return "*peg.Span"
	}
	return kid.typ
}

func elemType(kid *site) string {
	if kid.typ == "" {
		return "peg.Span"
	}
	return kid.typ
}

// altTag returns the letter suffix of the ith variant's wrapper
// type: A, B, ..., Z, AA, AB, ...
func altTag(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return altTag(i/26-1) + string(rune('A'+i%26))
}

// fallible reports whether the emitted matching code for e
// contains a branch to its failure label. Expressions like e?
// and e* succeed unconditionally and emit no such branch.
func fallible(e grammar.Expr) bool {
	switch e := e.(type) {
	case *grammar.Str, *grammar.Insens, *grammar.Range, *grammar.Ref:
		return true
	case *grammar.Seq:
		for _, sub := range e.Exprs {
			if fallible(sub) {
				return true
			}
		}
		return false
	case *grammar.Choice:
		// Alternatives after the first unconditional success
		// are never emitted.
		for _, sub := range e.Exprs {
			if !fallible(sub) {
				return false
			}
		}
		return true
	case *grammar.Opt:
		return false
	case *grammar.Rep:
		return e.Min == 1
	case *grammar.Look:
		if e.Neg {
			return true
		}
		return fallible(e.Expr)
	case *grammar.Infix:
		return true
	}
	panic("impossible")
}
