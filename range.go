package metal

import "fmt"

// Range represents metal known only up to a bound, such as a price
// computed from an uncertain key rate.
// The bounds are ordered and never equal: a range of zero width is
// a plain [Metal], see [NewRange].
// Range is designed to be safe for concurrent use by multiple goroutines.
type Range struct {
	lo, hi Metal
}

// NewRange returns the range between metals a and b in any order.
// If a = b, the metal itself is returned instead of a range.
// Callers must be prepared to receive either variant.
func NewRange(a, b Metal) Value {
	switch a.Cmp(b) {
	case 0:
		return a
	case 1:
		a, b = b, a
	}
	return Range{lo: a, hi: b}
}

// Lo returns the lower bound of the range.
func (r Range) Lo() Metal {
	return r.lo
}

// Hi returns the upper bound of the range.
func (r Range) Hi() Metal {
	return r.hi
}

// Median returns the metal halfway between the bounds.
func (r Range) Median() (Metal, error) {
	s, err := r.lo.scrap.add(r.hi.scrap)
	if err == nil {
		s, err = s.quo(two)
	}
	if err != nil {
		return Metal{}, fmt.Errorf("computing median of %v: %w", r, err)
	}
	return Metal{scrap: s}, nil
}

// Neg returns the range with bounds negated and swapped.
func (r Range) Neg() Range {
	return Range{lo: r.hi.Neg(), hi: r.lo.Neg()}
}

// Add returns the range shifted by metal b.
func (r Range) Add(b Metal) (Value, error) {
	return r.shift(b, b, "+", b)
}

// Sub returns the range shifted by the negation of metal b.
func (r Range) Sub(b Metal) (Value, error) {
	return r.shift(b.Neg(), b.Neg(), "-", b)
}

// AddRange returns the sum of ranges r and q, bound by bound.
func (r Range) AddRange(q Range) (Value, error) {
	return r.shift(q.lo, q.hi, "+", q)
}

// SubRange returns the difference of ranges r and q, the widest range
// that holds the difference of any two of their members.
func (r Range) SubRange(q Range) (Value, error) {
	n := q.Neg()
	return r.shift(n.lo, n.hi, "-", q)
}

// shift adds dlo and dhi to the bounds, operand is used for errors only.
func (r Range) shift(dlo, dhi Metal, op string, operand Value) (Value, error) {
	lo, err := r.lo.scrap.add(dlo.scrap)
	if err == nil {
		var hi Number
		if hi, err = r.hi.scrap.add(dhi.scrap); err == nil {
			return NewRange(Metal{scrap: lo}, Metal{scrap: hi}), nil
		}
	}
	return nil, fmt.Errorf("computing [%v %s %v]: %w", r, op, operand, err)
}

// Mul returns the range with both bounds multiplied by e.
// A negative e swaps the bounds, a zero e collapses the range to 0.
func (r Range) Mul(e Number) (Value, error) {
	lo, err := r.lo.scrap.mul(e)
	if err != nil {
		return nil, fmt.Errorf("computing [%v * %v]: %w", r, e, err)
	}
	hi, err := r.hi.scrap.mul(e)
	if err != nil {
		return nil, fmt.Errorf("computing [%v * %v]: %w", r, e, err)
	}
	return NewRange(Metal{scrap: lo}, Metal{scrap: hi}), nil
}

// Quo returns the range with both bounds divided by e.
func (r Range) Quo(e Number) (Value, error) {
	lo, err := r.lo.scrap.quo(e)
	if err != nil {
		return nil, fmt.Errorf("computing [%v / %v]: %w", r, e, err)
	}
	hi, err := r.hi.scrap.quo(e)
	if err != nil {
		return nil, fmt.Errorf("computing [%v / %v]: %w", r, e, err)
	}
	return NewRange(Metal{scrap: lo}, Metal{scrap: hi}), nil
}

// Rat returns the ratios of both bounds to metal b, rounded to 2 digits
// after the decimal point.
// The result is a [Span], or a [Number] if the ratios are equal.
func (r Range) Rat(b Metal) (Value, error) {
	v, err := ratCorners([]Metal{r.lo, r.hi}, []Metal{b}, 2)
	if err != nil {
		return nil, fmt.Errorf("computing [%v / %v]: %w", r, b, err)
	}
	return v, nil
}

// RatRange returns the smallest and the largest of the four ratios between
// the bounds of ranges r and q, rounded to 2 digits after the decimal point.
// All four corners are needed since the bounds may have different signs.
func (r Range) RatRange(q Range) (Value, error) {
	v, err := ratCorners([]Metal{r.lo, r.hi}, []Metal{q.lo, q.hi}, 2)
	if err != nil {
		return nil, fmt.Errorf("computing [%v / %v]: %w", r, q, err)
	}
	return v, nil
}

// RatRange returns the ratios of metal m to both bounds of range q,
// rounded to 2 digits after the decimal point.
func (m Metal) RatRange(q Range) (Value, error) {
	v, err := ratCorners([]Metal{m}, []Metal{q.lo, q.hi}, 2)
	if err != nil {
		return nil, fmt.Errorf("computing [%v / %v]: %w", m, q, err)
	}
	return v, nil
}

// ratCorners divides every dividend by every divisor and returns the span
// between the smallest and the largest raw quotient, both rounded to scale.
func ratCorners(dividends, divisors []Metal, scale int) (Value, error) {
	var lo, hi Number
	for i, a := range dividends {
		for j, b := range divisors {
			q, err := a.scrap.quo(b.scrap)
			if err != nil {
				return nil, err
			}
			if i == 0 && j == 0 {
				lo, hi = q, q
				continue
			}
			lo, hi = lo.Min(q), hi.Max(q)
		}
	}
	return NewSpan(lo.normalize(scale), hi.normalize(scale)), nil
}

// Equal returns true if both bounds of the ranges are equal.
func (r Range) Equal(q Range) bool {
	return r.lo.Equal(q.lo) && r.hi.Equal(q.hi)
}

// ToKey returns the number of keys the range is worth at the rate.
// See also method [KeyRate.Conv].
func (r Range) ToKey(k KeyRate) (Value, error) {
	return k.Conv(r)
}

// String implements the [fmt.Stringer] interface and returns the range
// in refined, for example "4.16 ~ 5 ref".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Range) String() string {
	return r.lo.View(Refined).String() + " ~ " + r.hi.View(Refined).String() + " " + Refined.Code()
}

func (Range) isValue() {}
