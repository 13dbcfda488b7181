package metal

import "fmt"

// Value is the result of a computation: a [Number], a [Metal], a [Range]
// or a [Span].
// The set of implementations is closed.
type Value interface {
	fmt.Stringer
	isValue()
}

// meaningless reports an operation that is not defined for the operand types.
func meaningless(a Value, op string, b Value) error {
	return fmt.Errorf("computing [%v %s %v]: %w", a, op, b, ErrMeaninglessOperation)
}

// Add returns the sum of a and b.
// Numbers add to numbers and metal adds to metal; a range absorbs both
// metals and ranges.
func Add(a, b Value) (Value, error) {
	switch a := a.(type) {
	case Number:
		if b, ok := b.(Number); ok {
			return a.Add(b)
		}
	case Metal:
		switch b := b.(type) {
		case Metal:
			return a.Add(b)
		case Range:
			return b.Add(a)
		}
	case Range:
		switch b := b.(type) {
		case Metal:
			return a.Add(b)
		case Range:
			return a.AddRange(b)
		}
	}
	return nil, meaningless(a, "+", b)
}

// Sub returns the difference between a and b.
// See also function [Add].
func Sub(a, b Value) (Value, error) {
	switch a := a.(type) {
	case Number:
		if b, ok := b.(Number); ok {
			return a.Sub(b)
		}
	case Metal:
		switch b := b.(type) {
		case Metal:
			return a.Sub(b)
		case Range:
			return b.Neg().Add(a)
		}
	case Range:
		switch b := b.(type) {
		case Metal:
			return a.Sub(b)
		case Range:
			return a.SubRange(b)
		}
	}
	return nil, meaningless(a, "-", b)
}

// Mul returns the product of a and b.
// Metal and ranges can only be multiplied by numbers, in either order.
func Mul(a, b Value) (Value, error) {
	switch a := a.(type) {
	case Number:
		switch b := b.(type) {
		case Number:
			return a.Mul(b)
		case Metal:
			return b.Mul(a)
		case Range:
			return b.Mul(a)
		}
	case Metal:
		if b, ok := b.(Number); ok {
			return a.Mul(b)
		}
	case Range:
		if b, ok := b.(Number); ok {
			return a.Mul(b)
		}
	}
	return nil, meaningless(a, "*", b)
}

// Quo returns the quotient of a and b.
// Dividing metal by a number gives metal, dividing metal by metal gives
// a number, and dividing by or into a range gives a [Span].
// Numbers cannot be divided by metal.
func Quo(a, b Value) (Value, error) {
	switch a := a.(type) {
	case Number:
		if b, ok := b.(Number); ok {
			return a.Quo(b)
		}
	case Metal:
		switch b := b.(type) {
		case Number:
			return a.Quo(b)
		case Metal:
			return a.Rat(b)
		case Range:
			return a.RatRange(b)
		}
	case Range:
		switch b := b.(type) {
		case Number:
			return a.Quo(b)
		case Metal:
			return a.Rat(b)
		case Range:
			return a.RatRange(b)
		}
	}
	return nil, meaningless(a, "/", b)
}

// Neg returns v with the opposite sign.
// Spans cannot be negated.
func Neg(v Value) (Value, error) {
	switch v := v.(type) {
	case Number:
		return v.Neg(), nil
	case Metal:
		return v.Neg(), nil
	case Range:
		return v.Neg(), nil
	}
	return nil, fmt.Errorf("computing [-%v]: %w", v, ErrMeaninglessOperation)
}

// ZeroOf returns the zero of the kind of v: 0 scrap for metal and ranges,
// the number 0 otherwise.
func ZeroOf(v Value) Value {
	switch v.(type) {
	case Metal, Range:
		return Metal{}
	}
	return Number{}
}

// Equal returns true if a and b are equal values of the same kind.
// A range is never equal to metal, and a span is never equal to a number.
// Equal returns an error if the values are not comparable.
func Equal(a, b Value) (bool, error) {
	switch a := a.(type) {
	case Number:
		switch b := b.(type) {
		case Number:
			return a.Equal(b), nil
		case Span:
			return false, nil
		}
	case Metal:
		switch b := b.(type) {
		case Metal:
			return a.Equal(b), nil
		case Range:
			return false, nil
		}
	case Range:
		switch b := b.(type) {
		case Metal:
			return false, nil
		case Range:
			return a.Equal(b), nil
		}
	case Span:
		switch b := b.(type) {
		case Number:
			return false, nil
		case Span:
			return a.Equal(b), nil
		}
	}
	return false, meaningless(a, "==", b)
}

// Compare compares a and b and returns -1, 0 or +1.
// Only numbers with numbers and metal with metal are ordered.
func Compare(a, b Value) (int, error) {
	switch a := a.(type) {
	case Number:
		if b, ok := b.(Number); ok {
			return a.Cmp(b), nil
		}
	case Metal:
		if b, ok := b.(Metal); ok {
			return a.Cmp(b), nil
		}
	}
	return 0, meaningless(a, "<=>", b)
}

// Normalize rounds numbers and both bounds of spans to 2 digits after the
// decimal point and removes trailing zeros.
// Metal and ranges are returned unchanged since they are always displayed
// through their views.
func Normalize(v Value) Value {
	switch v := v.(type) {
	case Number:
		return v.normalize(2)
	case Span:
		return NewSpan(v.lo.normalize(2), v.hi.normalize(2))
	}
	return v
}
