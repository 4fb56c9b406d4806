package check

import (
	"fmt"
	"sort"
	"strings"

	"github.com/szabgab/pest-typed/grammar"
	"github.com/szabgab/pest-typed/peg"
)

type checkError struct {
	off   int
	rule  string
	loc   string
	msg   string
	notes []string
}

func newError(g *grammar.Grammar, off int, rule, f string, vs ...interface{}) checkError {
	err := checkError{
		off:  off,
		rule: rule,
		msg:  fmt.Sprintf(f, vs...),
	}
	switch {
	case g.Text != "" && off > 0:
		path := g.Path
		if path == "" {
			path = "<grammar>"
		}
		err.loc = fmt.Sprintf("%s:%s", path, peg.PosAt(g.Text, off))
	case rule != "":
		err.loc = "rule " + rule
	default:
		err.loc = "grammar"
	}
	return err
}

func note(err *checkError, f string, vs ...interface{}) {
	err.notes = append(err.notes, fmt.Sprintf(f, vs...))
}

func (err *checkError) Error() string {
	var s strings.Builder
	s.WriteString(err.loc)
	s.WriteString(": ")
	s.WriteString(err.msg)
	for _, n := range err.notes {
		s.WriteString("\n\t")
		s.WriteString(n)
	}
	return s.String()
}

func convertErrors(cerrs []checkError) []error {
	sorted := sortErrors(cerrs)
	var errs []error
	for i := range sorted {
		errs = append(errs, &sorted[i])
	}
	return errs
}

func sortErrors(errs []checkError) []checkError {
	if len(errs) == 0 {
		return errs
	}
	sort.SliceStable(errs, func(i, j int) bool {
		switch ei, ej := &errs[i], &errs[j]; {
		case ei.off != ej.off:
			return ei.off < ej.off
		case ei.rule != ej.rule:
			return ei.rule < ej.rule
		default:
			return ei.msg < ej.msg
		}
	})
	dedup := []checkError{errs[0]}
	for _, e := range errs[1:] {
		d := &dedup[len(dedup)-1]
		if e.off != d.off || e.rule != d.rule || e.msg != d.msg {
			dedup = append(dedup, e)
		}
	}
	return dedup
}
