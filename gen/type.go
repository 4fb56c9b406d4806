package gen

import (
	"fmt"
	"regexp"

	"github.com/szabgab/pest-typed/check"
)

// ruleTypes emits the result type of one rule: the rule struct,
// any named group structs and variant interfaces its captures
// need, and the accessors named after referenced rules.
func (g *fileGen) ruleTypes(rp *rulePlan) {
	g.structDef(rp.goName, rp.fields)
	if rp.infix != nil {
		g.infixTypes(rp)
		return
	}
	for _, s := range rp.named {
		if s.group != "" {
			g.structDef(s.group, s.slots)
			continue
		}
		g.variantTypes(s)
	}
}

// structDef emits a struct with one exported field per capture,
// the span, and the Span and Text methods.
func (g *fileGen) structDef(name string, fields []*site) {
	fmt.Fprintf(&g.s, "type %s struct {\n", name)
	for i, f := range fields {
		fmt.Fprintf(&g.s, "\tE%d %s\n", i, f.typ)
	}
	fmt.Fprintf(&g.s, "\tspan peg.Span\n}\n\n")
	fmt.Fprintf(&g.s, "func (n *%s) Span() peg.Span { return n.span }\n\n", name)
	fmt.Fprintf(&g.s, "func (n *%s) Text() string { return n.span.Text() }\n\n", name)
	g.accessors(name, fields)
}

// variantTypes emits a choice's sealed interface and, per
// alternative, either the is-method on a promoted rule type or a
// wrapper struct carrying the alternative's captures.
func (g *fileGen) variantTypes(s *site) {
	fmt.Fprintf(&g.s, "type %s interface {\n\tis%s()\n\tSpan() peg.Span\n\tText() string\n}\n\n", s.iface, s.iface)
	for _, v := range s.alts {
		if v.dup {
			continue
		}
		if v.promoted != "" {
			fmt.Fprintf(&g.s, "func (n *%s) is%s() {}\n\n", v.promoted, s.iface)
			continue
		}
		g.structDef(v.wrapper, topFields(v.site))
		fmt.Fprintf(&g.s, "func (n *%s) is%s() {}\n\n", v.wrapper, s.iface)
	}
}

// infixTypes emits the operand-or-binary sum for an operator
// ladder: the promoted operand type and the Bin application.
func (g *fileGen) infixTypes(rp *rulePlan) {
	x, iface := rp.goName, rp.goName+"Alt"
	fmt.Fprintf(&g.s, "type %s interface {\n\tis%s()\n\tSpan() peg.Span\n\tText() string\n}\n\n", iface, iface)
	fmt.Fprintf(&g.s, "func (n *%s) is%s() {}\n\n", check.GoName(rp.infix.Operand.Name), iface)
	fmt.Fprintf(&g.s, "type %sBin struct {\n\tLeft *%s\n\tOp peg.Span\n\tRight *%s\n\tspan peg.Span\n}\n\n", x, x, x)
	fmt.Fprintf(&g.s, "func (n *%sBin) Span() peg.Span { return n.span }\n\n", x)
	fmt.Fprintf(&g.s, "func (n *%sBin) Text() string { return n.span.Text() }\n\n", x)
	fmt.Fprintf(&g.s, "func (n *%sBin) is%s() {}\n\n", x, iface)
}

// Accessor names that would collide with the generated field
// and method set are not emitted; the field itself remains.
var reservedAccessor = regexp.MustCompile(`^(Span|Text|E[0-9]+)$`)

// accessors emits, for every field whose shape reaches a rule
// reference directly or through an optional or repetition, a
// method named after the referenced rule returning the field.
// When several fields reach the same rule the methods are
// numbered in field order.
func (g *fileGen) accessors(name string, fields []*site) {
	rules := make([]string, len(fields))
	count := make(map[string]int)
	for i, f := range fields {
		if r := accessorRule(f.shape); r != "" {
			rules[i] = check.GoName(r)
			count[rules[i]]++
		}
	}
	seen := make(map[string]int)
	for i, f := range fields {
		r := rules[i]
		if r == "" || reservedAccessor.MatchString(r) {
			continue
		}
		seen[r]++
		if count[r] > 1 {
			r = fmt.Sprintf("%s%d", r, seen[r])
		}
		fmt.Fprintf(&g.s, "func (n *%s) %s() %s { return n.E%d }\n\n", name, r, f.typ, i)
	}
}

func accessorRule(s check.Shape) string {
	switch s := s.(type) {
	case check.Child:
		return s.Rule
	case check.Option:
		if c, ok := s.Item.(check.Child); ok {
			return c.Rule
		}
	case check.List:
		if c, ok := s.Item.(check.Child); ok {
			return c.Rule
		}
	}
	return ""
}
