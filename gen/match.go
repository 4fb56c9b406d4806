package gen

import (
	"fmt"
	"strings"

	"github.com/szabgab/pest-typed/check"
	"github.com/szabgab/pest-typed/grammar"
)

// Rule calls thread atomicity by rule kind: normal and silent
// rules inherit the caller's value, atomic and compound-atomic
// rules force it on, non-atomic rules force it off. The forced
// cases are static, so their bodies emit no trivia skips (or
// unconditional ones) and pass a constant to callees.
type atomicMode int

const (
	inheritAtomic atomicMode = iota
	alwaysAtomic
	neverAtomic
)

func modeOf(k grammar.Kind) atomicMode {
	switch k {
	case grammar.Atomic, grammar.CompoundAtomic:
		return alwaysAtomic
	case grammar.NonAtomic:
		return neverAtomic
	}
	return inheritAtomic
}

// A matcher accumulates the body of one rule's matching routine.
// All temporaries are declared in a var block at the top of the
// function so that the emitted gotos never jump over declarations.
type matcher struct {
	gen  *fileGen
	mode atomicMode
	body strings.Builder
	ints []string    // position temporaries
	caps [][2]string // capture temporaries: name, type
	nlbl int
}

func (m *matcher) printf(f string, vs ...interface{}) {
	fmt.Fprintf(&m.body, f, vs...)
}

func (m *matcher) ptmp() string {
	v := fmt.Sprintf("p%d", len(m.ints))
	m.ints = append(m.ints, v)
	return v
}

func (m *matcher) ctmp(typ string) string {
	v := fmt.Sprintf("n%d", len(m.caps))
	m.caps = append(m.caps, [2]string{v, typ})
	return v
}

func (m *matcher) label(prefix string) string {
	v := fmt.Sprintf("%s%d", prefix, m.nlbl)
	m.nlbl++
	return v
}

func (m *matcher) atomicArg() string {
	switch m.mode {
	case alwaysAtomic:
		return "true"
	case neverAtomic:
		return "false"
	}
	return "atomic"
}

// skip emits the inter-token trivia skip for the current mode.
func (m *matcher) skip() {
	switch {
	case !m.gen.trivia || m.mode == alwaysAtomic:
	case m.mode == neverAtomic:
		m.printf("pos = skip(c, pos)\n")
	default:
		m.printf("if !atomic {\npos = skip(c, pos)\n}\n")
	}
}

// expr emits code matching s at pos, leaving pos after the match
// and the captured value, if any, in dst ("" discards). On failure
// control jumps to fail with pos not yet restored; every fail
// target restores the position it snapshotted.
func (m *matcher) expr(s *site, dst, fail string) {
	switch e := s.expr.(type) {
	case *grammar.Str:
		m.prim(fmt.Sprintf("c.Lit(pos, %q)", e.Text), fail)
	case *grammar.Insens:
		m.prim(fmt.Sprintf("c.Insens(pos, %q)", e.Text), fail)
	case *grammar.Range:
		m.prim(fmt.Sprintf("c.Range(pos, %q, %q)", e.Lo, e.Hi), fail)
	case *grammar.Ref:
		m.ref(e, dst, fail)
	case *grammar.Seq:
		m.seqExpr(s, dst, fail)
	case *grammar.Choice:
		m.choice(s, dst, fail)
	case *grammar.Opt:
		m.opt(s, dst, fail, false)
	case *grammar.Rep:
		m.rep(s, dst, fail, false)
	case *grammar.Look:
		m.look(s, fail, false)
	default:
		panic("impossible")
	}
}

func (m *matcher) prim(call, fail string) {
	p := m.ptmp()
	m.printf("if %s = %s; %s < 0 {\ngoto %s\n}\npos = %s\n", p, call, p, fail, p)
}

var builtinMethod = map[string]string{
	"ANY":                 "Any",
	"SOI":                 "SOI",
	"EOI":                 "EOI",
	"NEWLINE":             "Newline",
	"ASCII_DIGIT":         "Digit",
	"ASCII_NONZERO_DIGIT": "NonzeroDigit",
	"ASCII_BIN_DIGIT":     "BinDigit",
	"ASCII_OCT_DIGIT":     "OctDigit",
	"ASCII_HEX_DIGIT":     "HexDigit",
	"ASCII_ALPHA_LOWER":   "AlphaLower",
	"ASCII_ALPHA_UPPER":   "AlphaUpper",
	"ASCII_ALPHA":         "Alpha",
	"ASCII_ALPHANUMERIC":  "Alnum",
	"ASCII":               "ASCII",
}

func (m *matcher) ref(e *grammar.Ref, dst, fail string) {
	if method, ok := builtinMethod[e.Name]; ok {
		m.prim(fmt.Sprintf("c.%s(pos)", method), fail)
		return
	}
	p := m.ptmp()
	n := dst
	if n == "" {
		n = "_"
	}
	m.printf("if %s, %s = match%s(c, pos, %s); %s < 0 {\ngoto %s\n}\npos = %s\n",
		p, n, check.GoName(e.Name), m.atomicArg(), p, fail, p)
}

func (m *matcher) seqExpr(s *site, dst, fail string) {
	if s.group != "" {
		start := m.ptmp()
		m.printf("%s = pos\n", start)
		fields := m.fill(s, s.slots, fail)
		m.printf("%s = &%s{%sspan: c.Span(%s, pos)}\n", dst, s.group, fields, start)
		return
	}
	var dsts []string
	if dst != "" {
		dsts = []string{dst}
	}
	m.seq(s, dsts, fail)
}

func (m *matcher) seq(s *site, dsts []string, fail string) {
	di := 0
	for i, kid := range s.kids {
		m.printf("// %s\n", kid.expr)
		dst := ""
		if kid.typ != "" && di < len(dsts) {
			dst = dsts[di]
			di++
		}
		m.elem(kid, dst, fail, i == 0)
	}
}

// elem emits one sequence element with the trivia skip that
// separates it from the previous one. Elements that backtrack on
// their own (?, *, and lookaheads) take the skip inside their
// snapshot, so that failing or matching nothing leaves the trivia
// unconsumed.
func (m *matcher) elem(kid *site, dst, fail string, first bool) {
	if first {
		m.expr(kid, dst, fail)
		return
	}
	switch e := kid.expr.(type) {
	case *grammar.Rep:
		if e.Min == 0 {
			// The loop's first skip separates the repetition
			// from the previous element.
			m.rep(kid, dst, fail, true)
			return
		}
	case *grammar.Opt:
		m.opt(kid, dst, fail, true)
		return
	case *grammar.Look:
		m.look(kid, fail, true)
		return
	}
	m.skip()
	m.expr(kid, dst, fail)
}

// fill emits the matching code for a struct-bodied site and
// returns the field initializers of its captures. It is shared
// by rule bodies, wrapper alternatives, and group structs.
func (m *matcher) fill(s *site, fields []*site, fail string) string {
	if len(fields) == 0 {
		m.expr(s, "", fail)
		return ""
	}
	var b strings.Builder
	dsts := make([]string, len(fields))
	for i, f := range fields {
		dsts[i] = m.ctmp(f.typ)
		fmt.Fprintf(&b, "E%d: %s, ", i, dsts[i])
	}
	if len(fields) == 1 && fields[0] == s {
		m.expr(s, dsts[0], fail)
	} else {
		m.seq(s, dsts, fail)
	}
	return b.String()
}

type altItem struct {
	site *site
	v    *variant // nil when the choice captures nothing
}

func (m *matcher) choice(s *site, dst, fail string) {
	// Alternatives after the first that cannot fail are never
	// reached, and a textual duplicate can never succeed where
	// its first occurrence failed; neither is emitted.
	var items []altItem
	if len(s.alts) > 0 {
		for _, v := range s.alts {
			if v.dup {
				continue
			}
			items = append(items, altItem{v.site, v})
			if !fallible(v.site.expr) {
				break
			}
		}
	} else {
		for _, k := range s.kids {
			items = append(items, altItem{k, nil})
			if !fallible(k.expr) {
				break
			}
		}
	}

	wrapped := false
	for _, it := range items {
		if dst != "" && it.v != nil && it.v.promoted == "" {
			wrapped = true
		}
	}
	var start string
	if len(items) > 1 || wrapped {
		start = m.ptmp()
		m.printf("%s = pos\n", start)
	}
	var ok string
	if len(items) > 1 {
		ok = m.label("ok")
	}
	for i, it := range items {
		last := i == len(items)-1
		altFail := fail
		if !last {
			altFail = m.label("fail")
		}
		m.printf("// %s\n", it.site.expr)
		m.alt(it, dst, start, altFail)
		if !last {
			m.printf("goto %s\n%s:\npos = %s\n", ok, altFail, start)
		}
	}
	if len(items) > 1 {
		m.printf("%s:\n", ok)
	}
}

func (m *matcher) alt(it altItem, dst, start, fail string) {
	if dst == "" || it.v == nil {
		m.expr(it.site, "", fail)
		return
	}
	if it.v.promoted != "" {
		m.expr(it.site, dst, fail)
		return
	}
	fields := m.fill(it.site, topFields(it.site), fail)
	m.printf("%s = &%s{%sspan: c.Span(%s, pos)}\n", dst, it.v.wrapper, fields, start)
}

func (m *matcher) opt(s *site, dst, fail string, lead bool) {
	kid := s.kids[0]
	if !fallible(kid.expr) {
		// The inner expression cannot fail, so the optional
		// is the inner expression.
		if lead {
			if _, rep := kid.expr.(*grammar.Rep); !rep {
				m.skip()
			}
		}
		m.expr(kid, dst, fail)
		return
	}
	start := m.ptmp()
	lfail := m.label("fail")
	lok := m.label("ok")
	m.printf("%s = pos\n", start)
	if lead {
		m.skip()
	}
	if dst != "" && kid.typ == "" {
		spanStart := start
		if lead {
			// The captured span excludes the leading trivia.
			spanStart = m.ptmp()
			m.printf("%s = pos\n", spanStart)
		}
		m.expr(kid, "", lfail)
		m.printf("%s = c.SpanPtr(%s, pos)\n", dst, spanStart)
	} else {
		m.expr(kid, dst, lfail)
	}
	m.printf("goto %s\n%s:\npos = %s\n", lok, lfail, start)
	if dst != "" {
		m.printf("%s = nil\n", dst)
	}
	m.printf("%s:\n", lok)
}

func (m *matcher) rep(s *site, dst, fail string, lead bool) {
	kid := s.kids[0]
	e := s.expr.(*grammar.Rep)
	if dst != "" {
		m.printf("%s = nil\n", dst)
	}
	if e.Min == 1 {
		m.iter(kid, dst, fail)
	}
	start := m.ptmp()
	lend := m.label("fail")
	m.printf("%s = pos\n", start)
	if e.Min == 0 && !lead && m.skips() {
		// Without a preceding element there is no trivia to
		// separate from: the first iteration matches at pos.
		m.iter(kid, dst, lend)
		m.printf("%s = pos\n", start)
	}
	m.printf("for {\n")
	m.skip()
	m.iter(kid, dst, lend)
	m.printf("%s = pos\n}\n%s:\npos = %s\n", start, lend, start)
}

// skips reports whether skip emits any code in the current mode.
func (m *matcher) skips() bool {
	return m.gen.trivia && m.mode != alwaysAtomic
}

// iter emits one repetition iteration: the inner match plus the
// append of its capture.
func (m *matcher) iter(kid *site, dst, fail string) {
	switch {
	case dst == "":
		m.expr(kid, "", fail)
	case kid.typ == "":
		it := m.ptmp()
		m.printf("%s = pos\n", it)
		m.expr(kid, "", fail)
		m.printf("%s = append(%s, c.Span(%s, pos))\n", dst, dst, it)
	default:
		t := m.ctmp(kid.typ)
		m.expr(kid, t, fail)
		m.printf("%s = append(%s, %s)\n", dst, dst, t)
	}
}

func (m *matcher) look(s *site, fail string, lead bool) {
	e := s.expr.(*grammar.Look)
	kid := s.kids[0]
	start := m.ptmp()
	m.printf("%s = pos\n", start)
	if lead {
		m.skip()
	}
	if !e.Neg {
		m.expr(kid, "", fail)
		m.printf("pos = %s\n", start)
		return
	}
	m.printf("c.Mute()\n")
	inner := fallible(kid.expr)
	lfail := fail
	if inner {
		lfail = m.label("fail")
	}
	m.expr(kid, "", lfail)
	m.printf("c.Unmute()\npos = %s\nc.Fail(pos, %q)\ngoto %s\n", start, e.String(), fail)
	if inner {
		m.printf("%s:\nc.Unmute()\npos = %s\n", lfail, start)
	}
}

// matcher emits the rule's matching routine: the recursion
// guard, the compiled body, and the node construction.
func (g *fileGen) matcher(rp *rulePlan) {
	if rp.infix != nil {
		g.infixMatcher(rp)
		return
	}
	m := &matcher{gen: g, mode: modeOf(rp.rule.Kind)}
	muted := rp.rule.Kind == grammar.Atomic || rp.rule.Kind == grammar.CompoundAtomic
	fields := m.fill(rp.body, rp.fields, "fail")
	canFail := fallible(rp.rule.Expr)

	x := rp.goName
	fmt.Fprintf(&g.s, "func match%s(c *peg.Context, pos int, atomic bool) (int, *%s) {\n", x, x)
	if len(m.ints) > 0 || len(m.caps) > 0 {
		g.s.WriteString("var (\n")
		if len(m.ints) > 0 {
			fmt.Fprintf(&g.s, "%s int\n", strings.Join(m.ints, ", "))
		}
		for _, c := range m.caps {
			fmt.Fprintf(&g.s, "%s %s\n", c[0], c[1])
		}
		g.s.WriteString(")\n")
	}
	fmt.Fprintf(&g.s, "if !c.Enter(rule%s, pos) {\nreturn -1, nil\n}\nstart := pos\n", x)
	if muted {
		g.s.WriteString("c.Mute()\n")
	}
	g.s.WriteString(m.body.String())
	if muted {
		g.s.WriteString("c.Unmute()\n")
	}
	fmt.Fprintf(&g.s, "c.Leave(rule%s, start)\nreturn pos, &%s{%sspan: c.Span(start, pos)}\n", x, x, fields)
	if canFail {
		g.s.WriteString("fail:\n")
		if muted {
			g.s.WriteString("c.Unmute()\n")
		}
		fmt.Fprintf(&g.s, "c.Leave(rule%s, start)\n", x)
		if muted {
			fmt.Fprintf(&g.s, "c.Fail(start, %q)\n", rp.rule.Name)
		}
		g.s.WriteString("return -1, nil\n")
	}
	g.s.WriteString("}\n\n")
}

// infixMatcher emits a precedence climber: the operand rule
// parses the leaves, and operators of level min or higher extend
// the left-hand side, recursing one level tighter for left
// associativity and at the same level for right associativity.
func (g *fileGen) infixMatcher(rp *rulePlan) {
	x := rp.goName
	in := rp.infix
	operand := check.GoName(in.Operand.Name)

	fmt.Fprintf(&g.s, "func match%s(c *peg.Context, pos int, atomic bool) (int, *%s) {\nreturn climb%s(c, pos, atomic, 0)\n}\n\n", x, x, x)

	fmt.Fprintf(&g.s, "func climb%s(c *peg.Context, pos int, atomic bool, min int) (int, *%s) {\n", x, x)
	fmt.Fprintf(&g.s, "if !c.Enter(rule%s, pos) {\nreturn -1, nil\n}\nstart := pos\n", x)
	fmt.Fprintf(&g.s, "p, n := match%s(c, pos, %s)\nif p < 0 {\nc.Leave(rule%s, start)\nreturn -1, nil\n}\npos = p\n", operand, "atomic", x)
	fmt.Fprintf(&g.s, "lhs := &%s{E0: n, span: c.Span(start, pos)}\nfor {\nlvl, next, end := -1, 0, 0\np := pos\n", x)
	if g.trivia {
		g.s.WriteString("if !atomic {\np = skip(c, p)\n}\n")
	}
	first := true
	for li, level := range in.Levels {
		nm := li + 1
		if level.Right {
			nm = li
		}
		for _, op := range level.Ops {
			var call string
			switch op := op.(type) {
			case *grammar.Str:
				call = fmt.Sprintf("c.Lit(p, %q)", op.Text)
			case *grammar.Insens:
				call = fmt.Sprintf("c.Insens(p, %q)", op.Text)
			default:
				panic("impossible")
			}
			kw := "if"
			if !first {
				kw = "} else if"
			}
			fmt.Fprintf(&g.s, "%s q := %s; q >= 0 {\nlvl, next, end = %d, %d, q\n", kw, call, li, nm)
			first = false
		}
	}
	g.s.WriteString("}\nif lvl < min {\nbreak\n}\nop := c.Span(p, end)\np = end\n")
	if g.trivia {
		g.s.WriteString("if !atomic {\np = skip(c, p)\n}\n")
	}
	fmt.Fprintf(&g.s, "r, rhs := climb%s(c, p, atomic, next)\nif r < 0 {\nc.Leave(rule%s, start)\nreturn -1, nil\n}\npos = r\n", x, x)
	fmt.Fprintf(&g.s, "lhs = &%s{E0: &%sBin{Left: lhs, Op: op, Right: rhs, span: c.Span(start, pos)}, span: c.Span(start, pos)}\n}\n", x, x)
	fmt.Fprintf(&g.s, "c.Leave(rule%s, start)\nreturn pos, lhs\n}\n\n", x)
}
