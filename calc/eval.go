package calc

import (
	"fmt"
	"slices"

	"github.com/metalcalc/metal"
)

// operators in the order the expression is split at them.
// Splitting at the first occurrence makes each operator right-associative,
// so "5ref-2ref-1ref" evaluates as 5ref-(2ref-1ref).
var operators = [...]byte{'+', '-', '/', '*'}

// evaluate folds the tokens into a single value.
// A nil value means the tokens were empty.
func evaluate(toks []token) (metal.Value, error) {
	for _, op := range operators {
		pos := slices.IndexFunc(toks, func(t token) bool {
			return t.kind == opToken && t.op == op
		})
		if pos < 0 {
			continue
		}
		right, err := evaluate(toks[pos+1:])
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, fmt.Errorf("%w: %q has no right operand", ErrBadExpression, op)
		}
		left, err := evaluate(toks[:pos])
		if err != nil {
			return nil, err
		}
		if left == nil {
			// Unary plus and minus.
			if (op != '+' && op != '-') || toks[pos+1].kind == opToken {
				return nil, fmt.Errorf("%w: %q has no left operand", ErrBadExpression, op)
			}
			left = metal.ZeroOf(right)
		}
		return apply(op, left, right)
	}
	switch len(toks) {
	case 0:
		return nil, nil
	case 1:
		if toks[0].kind == groupToken {
			return evaluate(toks[0].group)
		}
		return toks[0].val, nil
	}
	return nil, fmt.Errorf("%w: %d operands without an operator", ErrBadExpression, len(toks))
}

func apply(op byte, a, b metal.Value) (metal.Value, error) {
	switch op {
	case '+':
		return metal.Add(a, b)
	case '-':
		return metal.Sub(a, b)
	case '*':
		return metal.Mul(a, b)
	case '/':
		return metal.Quo(a, b)
	}
	return nil, fmt.Errorf("%w: unknown operator %q", ErrInvalidSyntax, op)
}

// eval evaluates expr and normalizes the result for display.
func eval(expr string, conv converter) (metal.Value, error) {
	toks, err := lex(expr, conv)
	if err != nil {
		return nil, err
	}
	v, err := evaluate(toks)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%w: nothing to evaluate", ErrBadExpression)
	}
	return metal.Normalize(v), nil
}
