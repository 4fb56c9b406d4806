// Copyright © 2026 The pest-typed Authors under an MIT-style license.

// Package peg is the runtime support library for generated parsers.
// Generated code creates a Context per parse, drives the primitive
// matchers, and reports failures through the furthest-failure tracker.
package peg

import "fmt"

// A Span is a half-open byte range [Start, End) of the parsed input.
// The zero Span is empty and points at the start of an empty input.
type Span struct {
	text  string
	start int
	end   int
}

// NewSpan returns the span [start, end) of text.
func NewSpan(text string, start, end int) Span {
	if start < 0 || end < start || end > len(text) {
		panic("impossible")
	}
	return Span{text: text, start: start, end: end}
}

// Start returns the starting byte offset.
func (s Span) Start() int { return s.start }

// End returns the ending byte offset.
func (s Span) End() int { return s.end }

// Text returns the input text covered by the span.
func (s Span) Text() string { return s.text[s.start:s.end] }

// StartPos returns the line and column of the span's start.
func (s Span) StartPos() Pos { return posAt(s.text, s.start) }

// EndPos returns the line and column of the span's end.
func (s Span) EndPos() Pos { return posAt(s.text, s.end) }

func (s Span) String() string {
	sp, ep := s.StartPos(), s.EndPos()
	if sp == ep {
		return sp.String()
	}
	return fmt.Sprintf("%s-%s", sp, ep)
}

// A Pos is a 1-based line and column.
// Columns count runes from the preceding newline.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string { return fmt.Sprintf("%d.%d", p.Line, p.Col) }

// PosAt returns the line and column of the byte offset off in text.
func PosAt(text string, off int) Pos { return posAt(text, off) }

func posAt(text string, off int) Pos {
	if off > len(text) {
		off = len(text)
	}
	line, col := 1, 1
	for _, r := range text[:off] {
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return Pos{Line: line, Col: col}
}
