package metal

// Span represents a dimensionless number known only up to a bound.
// It is the result of dividing ranges and of converting metal to keys
// at a ranged rate.
// The bounds are ordered and never equal, see [NewSpan].
type Span struct {
	lo, hi Number
}

// NewSpan returns the span between numbers a and b in any order.
// If a = b, the number itself is returned instead of a span.
func NewSpan(a, b Number) Value {
	switch a.Cmp(b) {
	case 0:
		return a
	case 1:
		a, b = b, a
	}
	return Span{lo: a, hi: b}
}

// Lo returns the lower bound of the span.
func (s Span) Lo() Number {
	return s.lo
}

// Hi returns the upper bound of the span.
func (s Span) Hi() Number {
	return s.hi
}

// Equal returns true if both bounds of the spans are equal.
func (s Span) Equal(t Span) bool {
	return s.lo.Equal(t.lo) && s.hi.Equal(t.hi)
}

// String implements the [fmt.Stringer] interface and returns the span
// as "lo ~ hi".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s Span) String() string {
	return s.lo.String() + " ~ " + s.hi.String()
}

func (Span) isValue() {}
