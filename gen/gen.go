// Copyright © 2026 The pest-typed Authors under an MIT-style license.

// Package gen compiles a checked grammar into Go source.
// The output is one self-contained file: a result type,
// a matching routine, and Parse entry points per rule.
package gen

import (
	"errors"
	"fmt"
	"go/format"
	"strings"

	"github.com/szabgab/pest-typed/check"
	"github.com/szabgab/pest-typed/grammar"
)

// Config holds the generator settings.
type Config struct {
	// Package is the package clause of the generated file.
	Package string
	// Source names the grammar file in the generated header.
	// It may be empty.
	Source string
}

type fileGen struct {
	s      strings.Builder
	g      *grammar.Grammar
	info   *check.Info
	cfg    Config
	trivia bool
}

// Generate returns the gofmt-formatted Go source of a parser for g.
// The grammar must have passed check.Check; info is the result of
// that check.
func Generate(g *grammar.Grammar, info *check.Info, cfg Config) ([]byte, error) {
	if cfg.Package == "" {
		return nil, errors.New("gen: empty package name")
	}
	fg := &fileGen{
		g:      g,
		info:   info,
		cfg:    cfg,
		trivia: info.HasWhitespace || info.HasComment,
	}
	fg.file()
	src, err := format.Source([]byte(fg.s.String()))
	if err != nil {
		return nil, fmt.Errorf("formatting generated parser: %v", err)
	}
	return src, nil
}

func (fg *fileGen) file() {
	fg.s.WriteString("// Code generated by pest-typed. DO NOT EDIT.\n")
	if fg.cfg.Source != "" {
		fmt.Fprintf(&fg.s, "// source: %s\n", fg.cfg.Source)
	}
	fmt.Fprintf(&fg.s, "\npackage %s\n\nimport \"github.com/szabgab/pest-typed/peg\"\n\n", fg.cfg.Package)

	fg.s.WriteString("// Rule identities for the recursion guard.\nconst (\n")
	for i, r := range fg.g.Rules {
		fmt.Fprintf(&fg.s, "rule%s", check.GoName(r.Name))
		if i == 0 {
			fg.s.WriteString(" = iota")
		}
		fg.s.WriteString("\n")
	}
	fg.s.WriteString(")\n\n")

	if fg.trivia {
		fg.skipFunc()
	}
	for _, r := range fg.g.Rules {
		rp := planRule(fg.g, r)
		fmt.Fprintf(&fg.s, "// %s\n\n", r)
		fg.ruleTypes(rp)
		fg.matcher(rp)
		fg.entries(rp)
	}
}

// skipFunc emits the trivia skipper: any interleaving of
// WHITESPACE and COMMENT, matched atomically and muted.
func (fg *fileGen) skipFunc() {
	fg.s.WriteString("func skip(c *peg.Context, pos int) int {\nc.Mute()\nfor {\n")
	if fg.info.HasWhitespace {
		fg.s.WriteString("if p, _ := matchWHITESPACE(c, pos, true); p >= 0 {\npos = p\ncontinue\n}\n")
	}
	if fg.info.HasComment {
		fg.s.WriteString("if p, _ := matchCOMMENT(c, pos, true); p >= 0 {\npos = p\ncontinue\n}\n")
	}
	fg.s.WriteString("break\n}\nc.Unmute()\nreturn pos\n}\n\n")
}

func (fg *fileGen) entries(rp *rulePlan) {
	x := rp.goName
	fmt.Fprintf(&fg.s, "// Parse%s parses input as rule %s, requiring the whole input to match.\n", x, rp.rule.Name)
	fmt.Fprintf(&fg.s, "func Parse%s(input string, opts ...peg.Option) (*%s, error) {\n", x, x)
	fmt.Fprintf(&fg.s, "c := peg.NewContext(input, opts...)\npos, n := match%s(c, 0, false)\nif pos >= 0 {\n", x)
	if fg.trivia {
		fg.s.WriteString("pos = skip(c, pos)\n")
	}
	fg.s.WriteString("if c.EOI(pos) >= 0 {\nreturn n, nil\n}\n}\nreturn nil, c.Report()\n}\n\n")

	fmt.Fprintf(&fg.s, "// Parse%sPartial parses a leading portion of input as rule %s,\n// returning the number of bytes consumed.\n", x, rp.rule.Name)
	fmt.Fprintf(&fg.s, "func Parse%sPartial(input string, opts ...peg.Option) (*%s, int, error) {\n", x, x)
	fmt.Fprintf(&fg.s, "c := peg.NewContext(input, opts...)\npos, n := match%s(c, 0, false)\nif pos < 0 {\nreturn nil, 0, c.Report()\n}\nreturn n, pos, nil\n}\n\n", x)
}
