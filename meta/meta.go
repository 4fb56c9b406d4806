// Copyright © 2026 The pest-typed Authors under an MIT-style license.

// Package meta parses grammar files into the grammar IR.
package meta

import (
	"io/ioutil"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/eaburns/peggy/peg"
	"github.com/szabgab/pest-typed/grammar"
)

type parseError struct {
	path string
	text string
	loc  int
	fail *peg.Fail
}

func (err parseError) Error() string {
	e := peg.SimpleError(err.text, err.fail)
	e.FilePath = err.path
	return e.Error()
}

// Tree returns the failure tree for verbose diagnostics.
func (err parseError) Tree() *peg.Fail { return err.fail }

// ParseFile parses the grammar file at path.
func ParseFile(path string) (*grammar.Grammar, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(data))
}

// Parse parses a grammar from src.
// The first argument is the file path or "" if unspecified.
func Parse(path, src string) (*grammar.Grammar, error) {
	p := &parser{text: src}
	g := &grammar.Grammar{Path: path, Text: src}
	pos := p.skip(0)
	for pos < len(src) {
		q, r := p.rule(pos)
		if q < 0 {
			return nil, p.error(path)
		}
		g.Rules = append(g.Rules, r)
		pos = p.skip(q)
	}
	return g, nil
}

// A parser tracks the furthest failure while descending the
// grammar syntax. Matching methods return the new position or -1.
type parser struct {
	text   string
	errPos int
	wants  []string
}

// fail records that want was expected at pos and returns -1.
// Only the furthest position's expectations are kept.
func (p *parser) fail(pos int, want string) int {
	if pos > p.errPos {
		p.errPos = pos
		p.wants = p.wants[:0]
	}
	if pos == p.errPos {
		for _, w := range p.wants {
			if w == want {
				return -1
			}
		}
		p.wants = append(p.wants, want)
	}
	return -1
}

func (p *parser) error(path string) error {
	fail := &peg.Fail{Name: "grammar", Pos: 0}
	for _, w := range p.wants {
		fail.Kids = append(fail.Kids, &peg.Fail{Pos: p.errPos, Want: w})
	}
	return parseError{path: path, text: p.text, loc: p.errPos, fail: fail}
}

// skip consumes whitespace and line comments.
func (p *parser) skip(pos int) int {
	for pos < len(p.text) {
		switch c := p.text[pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			pos++
		case c == '/' && pos+1 < len(p.text) && p.text[pos+1] == '/':
			for pos < len(p.text) && p.text[pos] != '\n' {
				pos++
			}
		default:
			return pos
		}
	}
	return pos
}

func (p *parser) lit(pos int, s string) int {
	if !strings.HasPrefix(p.text[pos:], s) {
		return p.fail(pos, strconv.Quote(s))
	}
	return pos + len(s)
}

func isIdentStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isIdent(c byte) bool {
	return isIdentStart(c) || '0' <= c && c <= '9'
}

func (p *parser) ident(pos int) (int, string) {
	if pos >= len(p.text) || !isIdentStart(p.text[pos]) {
		return p.fail(pos, "name"), ""
	}
	end := pos + 1
	for end < len(p.text) && isIdent(p.text[end]) {
		end++
	}
	return end, p.text[pos:end]
}

func (p *parser) rule(pos int) (int, *grammar.Rule) {
	off := pos
	pos, name := p.ident(pos)
	if pos < 0 {
		return -1, nil
	}
	pos = p.skip(pos)
	if pos = p.lit(pos, "="); pos < 0 {
		return -1, nil
	}
	pos = p.skip(pos)

	kind := grammar.Normal
	switch {
	case strings.HasPrefix(p.text[pos:], "_{"):
		kind, pos = grammar.Silent, pos+1
	case strings.HasPrefix(p.text[pos:], "@{"):
		kind, pos = grammar.Atomic, pos+1
	case strings.HasPrefix(p.text[pos:], "${"):
		kind, pos = grammar.CompoundAtomic, pos+1
	case strings.HasPrefix(p.text[pos:], "!{"):
		kind, pos = grammar.NonAtomic, pos+1
	case pos < len(p.text) && isIdentStart(p.text[pos]):
		pos, in := p.infix(pos)
		if pos < 0 {
			return -1, nil
		}
		return pos, &grammar.Rule{Name: name, Kind: grammar.Normal, Expr: in, Off: off}
	}
	if pos = p.lit(pos, "{"); pos < 0 {
		return -1, nil
	}
	pos = p.skip(pos)
	pos, e := p.expr(pos)
	if pos < 0 {
		return -1, nil
	}
	pos = p.skip(pos)
	if pos = p.lit(pos, "}"); pos < 0 {
		return -1, nil
	}
	return pos, &grammar.Rule{Name: name, Kind: kind, Expr: e, Off: off}
}

func (p *parser) infix(pos int) (int, *grammar.Infix) {
	off := pos
	pos, kw := p.ident(pos)
	if pos < 0 {
		return -1, nil
	}
	if kw != "infix" {
		return p.fail(off, `"infix"`), nil
	}
	pos = p.skip(pos)
	if pos = p.lit(pos, "("); pos < 0 {
		return -1, nil
	}
	pos = p.skip(pos)
	opOff := pos
	pos, operand := p.ident(pos)
	if pos < 0 {
		return -1, nil
	}
	pos = p.skip(pos)
	if pos = p.lit(pos, ")"); pos < 0 {
		return -1, nil
	}
	pos = p.skip(pos)
	if pos = p.lit(pos, "{"); pos < 0 {
		return -1, nil
	}
	in := &grammar.Infix{Off: off, Operand: &grammar.Ref{Name: operand, Off: opOff}}
	for {
		pos = p.skip(pos)
		if pos < len(p.text) && p.text[pos] == '}' {
			return pos + 1, in
		}
		q, kw := p.ident(pos)
		if q < 0 || kw != "left" && kw != "right" {
			p.fail(pos, `"left"`)
			return p.fail(pos, `"right"`), nil
		}
		pos = q
		level := grammar.Level{Right: kw == "right"}
		for {
			pos = p.skip(pos)
			q, op := p.operator(pos)
			if q < 0 {
				break
			}
			level.Ops = append(level.Ops, op)
			pos = q
		}
		if len(level.Ops) == 0 {
			return p.fail(pos, "operator"), nil
		}
		in.Levels = append(in.Levels, level)
	}
}

// operator parses one operator literal of an infix level:
// a string or a case-insensitive string.
func (p *parser) operator(pos int) (int, grammar.Expr) {
	switch {
	case strings.HasPrefix(p.text[pos:], `^"`):
		q, s := p.str(pos + 1)
		if q < 0 {
			return -1, nil
		}
		return q, &grammar.Insens{Off: pos, Text: s}
	case pos < len(p.text) && p.text[pos] == '"':
		q, s := p.str(pos)
		if q < 0 {
			return -1, nil
		}
		return q, &grammar.Str{Off: pos, Text: s}
	}
	return p.fail(pos, "operator"), nil
}

func (p *parser) expr(pos int) (int, grammar.Expr) {
	off := pos
	pos, e := p.seq(pos)
	if pos < 0 {
		return -1, nil
	}
	exprs := []grammar.Expr{e}
	for {
		q := p.skip(pos)
		if q = p.lit(q, "|"); q < 0 {
			break
		}
		q = p.skip(q)
		q, e := p.seq(q)
		if q < 0 {
			return -1, nil
		}
		exprs = append(exprs, e)
		pos = q
	}
	return pos, grammar.NewChoice(off, exprs...)
}

func (p *parser) seq(pos int) (int, grammar.Expr) {
	off := pos
	pos, e := p.prefix(pos)
	if pos < 0 {
		return -1, nil
	}
	exprs := []grammar.Expr{e}
	for {
		q := p.skip(pos)
		if q = p.lit(q, "~"); q < 0 {
			break
		}
		q = p.skip(q)
		q, e := p.prefix(q)
		if q < 0 {
			return -1, nil
		}
		exprs = append(exprs, e)
		pos = q
	}
	return pos, grammar.NewSeq(off, exprs...)
}

func (p *parser) prefix(pos int) (int, grammar.Expr) {
	if pos < len(p.text) && (p.text[pos] == '&' || p.text[pos] == '!') {
		neg := p.text[pos] == '!'
		q := p.skip(pos + 1)
		q, e := p.prefix(q)
		if q < 0 {
			return -1, nil
		}
		return q, &grammar.Look{Off: pos, Expr: e, Neg: neg}
	}
	return p.postfix(pos)
}

func (p *parser) postfix(pos int) (int, grammar.Expr) {
	off := pos
	pos, e := p.primary(pos)
	if pos < 0 {
		return -1, nil
	}
	for pos < len(p.text) {
		switch p.text[pos] {
		case '*':
			e, pos = &grammar.Rep{Off: off, Expr: e}, pos+1
		case '+':
			e, pos = &grammar.Rep{Off: off, Expr: e, Min: 1}, pos+1
		case '?':
			e, pos = grammar.NewOpt(off, e), pos+1
		default:
			return pos, e
		}
	}
	return pos, e
}

func (p *parser) primary(pos int) (int, grammar.Expr) {
	if pos >= len(p.text) {
		return p.fail(pos, "expression"), nil
	}
	switch c := p.text[pos]; {
	case c == '(':
		q := p.skip(pos + 1)
		q, e := p.expr(q)
		if q < 0 {
			return -1, nil
		}
		q = p.skip(q)
		if q = p.lit(q, ")"); q < 0 {
			return -1, nil
		}
		return q, e
	case c == '"':
		q, s := p.str(pos)
		if q < 0 {
			return -1, nil
		}
		return q, &grammar.Str{Off: pos, Text: s}
	case c == '^':
		q, s := p.str(pos + 1)
		if q < 0 {
			return -1, nil
		}
		return q, &grammar.Insens{Off: pos, Text: s}
	case c == '\'':
		return p.charRange(pos)
	case isIdentStart(c):
		q, name := p.ident(pos)
		return q, &grammar.Ref{Off: pos, Name: name}
	}
	return p.fail(pos, "expression"), nil
}

// str parses a double-quoted string literal, decoding escapes.
func (p *parser) str(pos int) (int, string) {
	if pos = p.lit(pos, `"`); pos < 0 {
		return -1, ""
	}
	var b strings.Builder
	for {
		if pos >= len(p.text) || p.text[pos] == '\n' {
			return p.fail(pos, `"\""`), ""
		}
		switch p.text[pos] {
		case '"':
			return pos + 1, b.String()
		case '\\':
			q, r := p.esc(pos + 1)
			if q < 0 {
				return -1, ""
			}
			b.WriteRune(r)
			pos = q
		default:
			b.WriteByte(p.text[pos])
			pos++
		}
	}
}

// charRange parses 'a'..'z'.
func (p *parser) charRange(pos int) (int, grammar.Expr) {
	off := pos
	pos, lo := p.char(pos)
	if pos < 0 {
		return -1, nil
	}
	pos = p.skip(pos)
	if pos = p.lit(pos, ".."); pos < 0 {
		return -1, nil
	}
	pos = p.skip(pos)
	pos, hi := p.char(pos)
	if pos < 0 {
		return -1, nil
	}
	return pos, &grammar.Range{Off: off, Lo: lo, Hi: hi}
}

// char parses a single-quoted character literal.
func (p *parser) char(pos int) (int, rune) {
	if pos = p.lit(pos, "'"); pos < 0 {
		return -1, 0
	}
	if pos >= len(p.text) || p.text[pos] == '\n' {
		return p.fail(pos, "character"), 0
	}
	var r rune
	if p.text[pos] == '\\' {
		var q int
		if q, r = p.esc(pos + 1); q < 0 {
			return -1, 0
		}
		pos = q
	} else {
		var n int
		r, n = utf8.DecodeRuneInString(p.text[pos:])
		pos += n
	}
	if pos = p.lit(pos, "'"); pos < 0 {
		return -1, 0
	}
	return pos, r
}

// esc decodes the escape sequence following a backslash:
// \n, \r, \t, \\, \", \', or \u{XXXX}.
func (p *parser) esc(pos int) (int, rune) {
	if pos >= len(p.text) {
		return p.fail(pos, "escape"), 0
	}
	switch p.text[pos] {
	case 'n':
		return pos + 1, '\n'
	case 'r':
		return pos + 1, '\r'
	case 't':
		return pos + 1, '\t'
	case '\\':
		return pos + 1, '\\'
	case '"':
		return pos + 1, '"'
	case '\'':
		return pos + 1, '\''
	case 'u':
		if pos+1 >= len(p.text) || p.text[pos+1] != '{' {
			return p.fail(pos+1, `"{"`), 0
		}
		end := pos + 2
		for end < len(p.text) && isHex(p.text[end]) {
			end++
		}
		if end == pos+2 || end-pos-2 > 6 || end >= len(p.text) || p.text[end] != '}' {
			return p.fail(end, "hex escape"), 0
		}
		n, err := strconv.ParseInt(p.text[pos+2:end], 16, 32)
		if err != nil || !utf8.ValidRune(rune(n)) {
			return p.fail(pos+2, "hex escape"), 0
		}
		return end + 1, rune(n)
	}
	return p.fail(pos, "escape"), 0
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
