// Copyright © 2026 The pest-typed Authors under an MIT-style license.

// Package check analyzes a grammar before generation.
// It computes each rule's capture shape and collects every
// hazard that makes the grammar unusable: undefined references,
// left recursion, repetition over empty-matching expressions,
// and malformed operator ladders.
package check

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/szabgab/pest-typed/grammar"
)

// Info is the analysis result consumed by the code generator.
type Info struct {
	Shapes        map[string]Shape
	Nullable      map[string]bool
	HasWhitespace bool
	HasComment    bool
	Notes         []string
}

type checker struct {
	g        *grammar.Grammar
	rules    map[string]*grammar.Rule
	defOrder map[string]int
	nullable map[string]bool
	cur      *grammar.Rule
	notes    []string
	errs     []checkError
}

// Check analyzes g and returns the analysis result along with
// all diagnostics, sorted and deduplicated. The result is only
// meaningful for generation when the error slice is empty.
func Check(g *grammar.Grammar) (*Info, []error) {
	c := &checker{
		g:        g,
		rules:    make(map[string]*grammar.Rule),
		defOrder: make(map[string]int),
	}
	info := &Info{
		Shapes:   make(map[string]Shape),
		Nullable: make(map[string]bool),
	}
	if len(g.Rules) == 0 {
		c.errf(0, "", "grammar defines no rules")
		return info, convertErrors(c.errs)
	}

	goNames := make(map[string]string)
	for i, r := range g.Rules {
		if !validName(r.Name) {
			c.errf(r.Off, r.Name, "invalid rule name %q", r.Name)
			continue
		}
		if grammar.Builtins[r.Name] {
			c.errf(r.Off, r.Name, "cannot define reserved rule %s", r.Name)
			continue
		}
		if c.rules[r.Name] != nil {
			c.errf(r.Off, r.Name, "rule %s is already defined", r.Name)
			continue
		}
		c.rules[r.Name] = r
		c.defOrder[r.Name] = i
		gn := GoName(r.Name)
		if other, ok := goNames[gn]; ok {
			c.errf(r.Off, r.Name, "rule names %s and %s collide as Go identifier %s", other, r.Name, gn)
		} else {
			goNames[gn] = r.Name
		}
	}

	c.computeNullable()
	for _, r := range g.Rules {
		if c.rules[r.Name] != r {
			continue // rejected or duplicate definition
		}
		c.cur = r
		c.checkExpr(r, r.Expr, true)
	}

	for _, name := range []string{"WHITESPACE", "COMMENT"} {
		r := c.rules[name]
		if r == nil {
			continue
		}
		if name == "WHITESPACE" {
			info.HasWhitespace = true
		} else {
			info.HasComment = true
		}
		if c.nullable[name] {
			c.errf(r.Off, name, "%s may not match the empty string", name)
		}
	}

	c.checkLeftRecursion()

	for _, r := range g.Rules {
		if c.rules[r.Name] != r {
			continue
		}
		c.cur = r
		info.Shapes[r.Name] = c.shapeOf(r.Expr)
	}
	info.Nullable = c.nullable
	info.Notes = c.notes
	return info, convertErrors(c.errs)
}

func (c *checker) errf(off int, rule, f string, vs ...interface{}) {
	c.errs = append(c.errs, newError(c.g, off, rule, f, vs...))
}

func (c *checker) notef(f string, vs ...interface{}) {
	c.notes = append(c.notes, fmt.Sprintf(f, vs...))
}

func validName(name string) bool {
	if name == "" || GoName(name) == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z':
		case i > 0 && '0' <= r && r <= '9':
		default:
			return false
		}
	}
	return true
}

// GoName returns the exported Go identifier for a rule name:
// underscore-separated pieces capitalized and joined,
// so my_rule becomes MyRule.
func GoName(name string) string {
	var s strings.Builder
	for _, piece := range strings.Split(name, "_") {
		if piece == "" {
			continue
		}
		r, w := utf8.DecodeRuneInString(piece)
		s.WriteRune(unicode.ToUpper(r))
		s.WriteString(piece[w:])
	}
	return s.String()
}

func (c *checker) computeNullable() {
	c.nullable = make(map[string]bool)
	for changed := true; changed; {
		changed = false
		for _, r := range c.g.Rules {
			if c.rules[r.Name] != r {
				continue
			}
			if !c.nullable[r.Name] && c.nullExpr(r.Expr) {
				c.nullable[r.Name] = true
				changed = true
			}
		}
	}
}

func (c *checker) nullExpr(e grammar.Expr) bool {
	switch e := e.(type) {
	case *grammar.Str:
		return e.Text == ""
	case *grammar.Insens:
		return e.Text == ""
	case *grammar.Range:
		return false
	case *grammar.Ref:
		if grammar.Builtins[e.Name] {
			return nullBuiltin(e.Name)
		}
		return c.nullable[e.Name]
	case *grammar.Seq:
		for _, sub := range e.Exprs {
			if !c.nullExpr(sub) {
				return false
			}
		}
		return true
	case *grammar.Choice:
		for _, sub := range e.Exprs {
			if c.nullExpr(sub) {
				return true
			}
		}
		return false
	case *grammar.Opt:
		return true
	case *grammar.Rep:
		return e.Min == 0 || c.nullExpr(e.Expr)
	case *grammar.Look:
		return true
	case *grammar.Infix:
		return false
	}
	panic("impossible")
}

func nullBuiltin(name string) bool {
	return name == "SOI" || name == "EOI"
}

func (c *checker) checkExpr(r *grammar.Rule, e grammar.Expr, top bool) {
	switch e := e.(type) {
	case *grammar.Str, *grammar.Insens, *grammar.Range:
	case *grammar.Ref:
		if !grammar.Builtins[e.Name] && c.rules[e.Name] == nil {
			c.errf(e.Off, r.Name, "undefined rule %s", e.Name)
		}
	case *grammar.Seq:
		for _, sub := range e.Exprs {
			c.checkExpr(r, sub, false)
		}
	case *grammar.Choice:
		for _, sub := range e.Exprs {
			c.checkExpr(r, sub, false)
		}
	case *grammar.Opt:
		c.checkExpr(r, e.Expr, false)
	case *grammar.Rep:
		c.checkExpr(r, e.Expr, false)
		if c.nullExpr(e.Expr) {
			err := newError(c.g, e.Off, r.Name, "repetition over an expression that can match the empty string")
			note(&err, "in %s", e.String())
			c.errs = append(c.errs, err)
		}
	case *grammar.Look:
		c.checkExpr(r, e.Expr, false)
	case *grammar.Infix:
		c.checkInfix(r, e, top)
	default:
		panic("impossible")
	}
}

func (c *checker) checkInfix(r *grammar.Rule, e *grammar.Infix, top bool) {
	if !top {
		c.errf(e.Off, r.Name, "infix must be the entire rule body")
		return
	}
	if r.Kind != grammar.Normal {
		c.errf(r.Off, r.Name, "infix rule %s must be a normal rule", r.Name)
	}
	if len(e.Levels) == 0 {
		c.errf(e.Off, r.Name, "infix needs at least one precedence level")
	}
	operand := e.Operand
	switch op := c.rules[operand.Name]; {
	case grammar.Builtins[operand.Name]:
		c.errf(operand.Off, r.Name, "infix operand must be a defined rule, not builtin %s", operand.Name)
	case op == nil:
		c.errf(operand.Off, r.Name, "undefined rule %s", operand.Name)
	case op.Kind == grammar.Silent:
		c.errf(operand.Off, r.Name, "infix operand %s may not be silent", operand.Name)
	default:
		if c.nullable[operand.Name] {
			c.errf(operand.Off, r.Name, "infix operand %s can match the empty string", operand.Name)
		}
	}
	for _, l := range e.Levels {
		if len(l.Ops) == 0 {
			c.errf(e.Off, r.Name, "infix precedence level has no operators")
		}
		for _, op := range l.Ops {
			switch op := op.(type) {
			case *grammar.Str:
				if op.Text == "" {
					c.errf(op.Off, r.Name, "infix operator may not be empty")
				}
			case *grammar.Insens:
				if op.Text == "" {
					c.errf(op.Off, r.Name, "infix operator may not be empty")
				}
			default:
				c.errf(e.Off, r.Name, "infix operator must be a string literal")
			}
		}
	}
}

type refEdge struct {
	to  string
	off int
}

func (c *checker) leftEdge(e grammar.Expr) ([]refEdge, bool) {
	switch e := e.(type) {
	case *grammar.Str:
		return nil, e.Text == ""
	case *grammar.Insens:
		return nil, e.Text == ""
	case *grammar.Range:
		return nil, false
	case *grammar.Ref:
		if grammar.Builtins[e.Name] {
			return nil, nullBuiltin(e.Name)
		}
		if c.rules[e.Name] == nil {
			return nil, false
		}
		return []refEdge{{to: e.Name, off: e.Off}}, c.nullable[e.Name]
	case *grammar.Seq:
		var refs []refEdge
		for _, sub := range e.Exprs {
			rs, transparent := c.leftEdge(sub)
			refs = append(refs, rs...)
			if !transparent {
				return refs, false
			}
		}
		return refs, true
	case *grammar.Choice:
		var refs []refEdge
		transparent := false
		for _, sub := range e.Exprs {
			rs, t := c.leftEdge(sub)
			refs = append(refs, rs...)
			transparent = transparent || t
		}
		return refs, transparent
	case *grammar.Opt:
		refs, _ := c.leftEdge(e.Expr)
		return refs, true
	case *grammar.Rep:
		refs, transparent := c.leftEdge(e.Expr)
		return refs, e.Min == 0 || transparent
	case *grammar.Look:
		refs, _ := c.leftEdge(e.Expr)
		return refs, true
	case *grammar.Infix:
		if c.rules[e.Operand.Name] == nil {
			return nil, false
		}
		return []refEdge{{to: e.Operand.Name, off: e.Operand.Off}}, false
	}
	panic("impossible")
}

// checkLeftRecursion finds strongly connected components of the
// leftmost-call graph and reports one cycle per component.
// The reported path contains only rules on the cycle.
func (c *checker) checkLeftRecursion() {
	edges := make(map[string][]refEdge, len(c.g.Rules))
	for _, r := range c.g.Rules {
		if c.rules[r.Name] != r {
			continue // duplicate definition, already reported
		}
		refs, _ := c.leftEdge(r.Expr)
		edges[r.Name] = refs
	}

	index := make(map[string]int)
	low := make(map[string]int)
	onStack := make(map[string]bool)
	var stack []string
	var sccs [][]string
	n := 0
	var strong func(v string)
	strong = func(v string) {
		index[v] = n
		low[v] = n
		n++
		stack = append(stack, v)
		onStack[v] = true
		for _, e := range edges[v] {
			w := e.to
			if _, seen := index[w]; !seen {
				strong(w)
				if low[w] < low[v] {
					low[v] = low[w]
				}
			} else if onStack[w] && index[w] < low[v] {
				low[v] = index[w]
			}
		}
		if low[v] == index[v] {
			var scc []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}
	for _, r := range c.g.Rules {
		if c.rules[r.Name] != r {
			continue
		}
		if _, seen := index[r.Name]; !seen {
			strong(r.Name)
		}
	}

	for _, scc := range sccs {
		if len(scc) == 1 {
			self := false
			for _, e := range edges[scc[0]] {
				if e.to == scc[0] {
					self = true
				}
			}
			if !self {
				continue
			}
		}
		start := scc[0]
		for _, v := range scc {
			if c.defOrder[v] < c.defOrder[start] {
				start = v
			}
		}
		in := make(map[string]bool, len(scc))
		for _, v := range scc {
			in[v] = true
		}
		path := findCycle(start, in, edges)
		c.errf(c.rules[start].Off, start, "left-recursive cycle: %s", strings.Join(path, " -> "))
	}
}

func findCycle(start string, in map[string]bool, edges map[string][]refEdge) []string {
	visited := map[string]bool{start: true}
	var path []string
	var dfs func(v string) bool
	dfs = func(v string) bool {
		path = append(path, v)
		for _, e := range edges[v] {
			if e.to == start {
				path = append(path, start)
				return true
			}
			if !in[e.to] || visited[e.to] {
				continue
			}
			visited[e.to] = true
			if dfs(e.to) {
				return true
			}
		}
		path = path[:len(path)-1]
		return false
	}
	if !dfs(start) {
		panic("impossible")
	}
	return path
}
