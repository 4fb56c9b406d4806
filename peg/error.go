package peg

import (
	"fmt"
	"strings"
)

// An Error is a parse failure at the furthest position reached.
// Expected holds the failed expectations at that position
// in first-attempt order.
type Error struct {
	Offset   int
	Pos      Pos
	Expected []string
}

func (e *Error) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%s: parse failed", e.Pos)
	}
	return fmt.Sprintf("%s: expected %s", e.Pos, orList(e.Expected))
}

func orList(ws []string) string {
	switch len(ws) {
	case 1:
		return ws[0]
	case 2:
		return ws[0] + " or " + ws[1]
	default:
		return strings.Join(ws[:len(ws)-1], ", ") + ", or " + ws[len(ws)-1]
	}
}

// A LimitError is a parse aborted by a recursion guard
// rather than by failing to match.
type LimitError struct {
	Offset int
	Pos    Pos
	Reason string
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s: parse aborted: %s", e.Pos, e.Reason)
}
