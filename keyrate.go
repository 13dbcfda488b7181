package metal

import (
	"fmt"
	"strings"
	"unicode"
)

// KeyRate represents the price of one key in metal.
// The price is either a single metal or, when traders disagree, a range.
// Both bounds are strictly positive and finite.
// The zero value means that the rate is not set.
// KeyRate is designed to be safe for concurrent use by multiple goroutines.
type KeyRate struct {
	lo, hi Metal
}

// NewKeyRate returns a key rate priced at the metal or range v.
//
// NewKeyRate returns an error if v is neither metal nor a range,
// or if any bound is not positive or is infinite.
func NewKeyRate(v Value) (KeyRate, error) {
	var r KeyRate
	switch v := v.(type) {
	case Metal:
		r = KeyRate{lo: v, hi: v}
	case Range:
		r = KeyRate{lo: v.lo, hi: v.hi}
	default:
		return KeyRate{}, fmt.Errorf("%w: %v is not metal", ErrBadExchangeRate, v)
	}
	for _, m := range []Metal{r.lo, r.hi} {
		if !m.IsPos() || m.IsInf() {
			return KeyRate{}, fmt.Errorf("%w: %v is not a valid price", ErrBadExchangeRate, m)
		}
	}
	return r, nil
}

// ParseKeyRate converts a rate expression to a key rate.
// The expression must be in one of the following formats:
//
//	key=50.11
//	key=50.11ref
//	key=50-50.22ref
//	key=50ref~50.22
//
// Amounts are in refined. Whitespace is ignored and letters may be in any case.
// ParseKeyRate returns an error if the expression does not match these
// formats or the price is not positive.
func ParseKeyRate(s string) (KeyRate, error) {
	r, err := parseKeyRate(s)
	if err != nil {
		return KeyRate{}, fmt.Errorf("parsing key rate %q: %w", s, err)
	}
	return r, nil
}

func parseKeyRate(s string) (KeyRate, error) {
	expr := strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s))
	price, ok := strings.CutPrefix(expr, "key=")
	if !ok {
		return KeyRate{}, ErrBadExchangeRate
	}
	left, right, ranged := price, "", false
	if i := strings.IndexAny(price, "-~"); i >= 0 {
		left, right, ranged = price[:i], price[i+1:], true
	}
	lo, err := parseRefined(left)
	if err != nil {
		return KeyRate{}, err
	}
	if !ranged {
		return NewKeyRate(lo)
	}
	hi, err := parseRefined(right)
	if err != nil {
		return KeyRate{}, err
	}
	return NewKeyRate(NewRange(lo, hi))
}

// parseRefined converts digits and dots, optionally followed by "ref",
// to metal.
func parseRefined(s string) (Metal, error) {
	s = strings.TrimSuffix(s, Refined.Code())
	if s == "" || strings.Trim(s, "0123456789.") != "" {
		return Metal{}, fmt.Errorf("%w: %q is not an amount of refined", ErrBadExchangeRate, s)
	}
	n, err := ParseNumber(s)
	if err != nil {
		return Metal{}, fmt.Errorf("%w: %w", ErrBadExchangeRate, err)
	}
	return NewMetalFromQuote(Quote{Refined: n})
}

// MustParseKeyRate is like [ParseKeyRate] but panics if the expression cannot be parsed.
// It simplifies safe initialization of global variables holding key rates.
func MustParseKeyRate(s string) KeyRate {
	r, err := ParseKeyRate(s)
	if err != nil {
		panic(fmt.Sprintf("ParseKeyRate(%q) failed: %v", s, err))
	}
	return r
}

// IsZero returns true if the rate is not set.
func (r KeyRate) IsZero() bool {
	return r.lo.IsZero() && r.hi.IsZero()
}

// IsRange returns true if the price of a key is a range.
func (r KeyRate) IsRange() bool {
	return !r.lo.Equal(r.hi)
}

// Lo returns the lowest price of a key.
func (r KeyRate) Lo() Metal {
	return r.lo
}

// Hi returns the highest price of a key.
func (r KeyRate) Hi() Metal {
	return r.hi
}

// Price returns the price of a key as metal or as a range.
func (r KeyRate) Price() Value {
	return NewRange(r.lo, r.hi)
}

// Keys returns the price of n keys.
//
// Keys returns an error if the rate is not set.
func (r KeyRate) Keys(n Number) (Value, error) {
	if r.IsZero() {
		return nil, fmt.Errorf("computing [%v key]: %w", n, ErrMissingExchangeRate)
	}
	return Mul(r.Price(), n)
}

// Conv returns the number of keys that metal or a range v is worth,
// rounded to 3 digits after the decimal point.
// Every bound of v is divided by every bound of the rate and the result
// spans from the smallest to the largest quotient, so a ranged rate
// inverts the bounds: metal A at rate [r1, r2] is worth [A/r2, A/r1] keys.
// The result is a [Number] if the bounds are equal and a [Span] otherwise.
//
// Conv returns an error if the rate is not set or v is not metal.
func (r KeyRate) Conv(v Value) (Value, error) {
	if r.IsZero() {
		return nil, fmt.Errorf("converting %v to key: %w", v, ErrMissingExchangeRate)
	}
	var amounts []Metal
	switch v := v.(type) {
	case Metal:
		amounts = []Metal{v}
	case Range:
		amounts = []Metal{v.lo, v.hi}
	default:
		return nil, fmt.Errorf("converting %v to key: %w", v, ErrMeaninglessOperation)
	}
	k, err := ratCorners(amounts, []Metal{r.lo, r.hi}, 3)
	if err != nil {
		return nil, fmt.Errorf("converting %v to key: %w", v, err)
	}
	return k, nil
}

// String implements the [fmt.Stringer] interface and returns the rate
// as "1 key = 50.11 ref" or "1 key = 50 ~ 50.22 ref".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r KeyRate) String() string {
	return "1 " + Key.Code() + " = " + r.Price().String()
}
