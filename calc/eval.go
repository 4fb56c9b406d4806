// Copyright © 2026 The pest-typed Authors under an MIT-style license.

package calc

import "strconv"

// Eval parses and evaluates an arithmetic expression.
// Division truncates toward zero.
func Eval(input string) (int, error) {
	e, err := ParseExpr(input)
	if err != nil {
		return 0, err
	}
	return evalExpr(e), nil
}

func evalExpr(e *Expr) int {
	switch n := e.E0.(type) {
	case *Term:
		return evalTerm(n)
	case *ExprBin:
		l, r := evalExpr(n.Left), evalExpr(n.Right)
		switch n.Op.Text() {
		case "+":
			return l + r
		case "-":
			return l - r
		case "*":
			return l * r
		case "/":
			return l / r
		case "^":
			return pow(l, r)
		}
	}
	panic("impossible")
}

func evalTerm(t *Term) int {
	switch n := t.E0.(type) {
	case *Number:
		v, err := strconv.Atoi(n.Text())
		if err != nil {
			panic("impossible")
		}
		return v
	case *TermAltB:
		return evalExpr(n.Expr())
	}
	panic("impossible")
}

func pow(b, e int) int {
	v := 1
	for ; e > 0; e-- {
		v *= b
	}
	return v
}
