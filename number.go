package metal

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// Number represents a dimensionless fixed-point number.
// Besides finite decimals it can hold positive and negative infinity,
// but never NaN: operations that would produce NaN return [ErrInvalidAmount].
// Its zero value is 0.
// Number is designed to be safe for concurrent use by multiple goroutines.
type Number struct {
	value decimal.Decimal // finite value, zero when inf != 0
	inf   int8            // -1 or +1 for infinities, 0 otherwise
}

// NewNumber returns a finite number equal to d.
func NewNumber(d decimal.Decimal) Number {
	return Number{value: d}
}

// NewNumberFromInt64 returns a finite number equal to i.
func NewNumberFromInt64(i int64) Number {
	return Number{value: decimal.MustNew(i, 0)}
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) Number {
	if sign < 0 {
		return Number{inf: -1}
	}
	return Number{inf: 1}
}

// ParseNumber converts a string to a number.
// The input may carry a sign and may start or end with the decimal point
// (".5", "5.").
// The strings "inf" and "infinity" in any case denote infinities.
//
// ParseNumber returns an error if:
//   - the string is "nan" ([ErrInvalidAmount]);
//   - the string is not a decimal number ([ErrBadNumber]);
//   - the integer part of the number has more than [decimal.MaxPrec] digits
//     ([ErrPrecisionOverflow]).
func ParseNumber(s string) (Number, error) {
	n, err := parseNumber(s)
	if err != nil {
		return Number{}, fmt.Errorf("parsing number %q: %w", s, err)
	}
	return n, nil
}

func parseNumber(s string) (Number, error) {
	body := strings.ToLower(strings.TrimSpace(s))
	neg := false
	switch {
	case strings.HasPrefix(body, "-"):
		neg = true
		body = body[1:]
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	}
	switch body {
	case "inf", "infinity":
		if neg {
			return Inf(-1), nil
		}
		return Inf(1), nil
	case "nan", "snan":
		return Number{}, ErrInvalidAmount
	}
	if body == "" || body == "." || strings.Count(body, ".") > 1 {
		return Number{}, ErrBadNumber
	}
	for _, r := range body {
		if r != '.' && (r < '0' || r > '9') {
			return Number{}, ErrBadNumber
		}
	}
	if strings.HasPrefix(body, ".") {
		body = "0" + body
	}
	if strings.HasSuffix(body, ".") {
		body += "0"
	}
	d, err := decimal.Parse(body)
	if err != nil {
		return Number{}, overflow(err)
	}
	if neg {
		d = d.Neg()
	}
	return Number{value: d}, nil
}

// MustParseNumber is like [ParseNumber] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParseNumber(s string) Number {
	n, err := ParseNumber(s)
	if err != nil {
		panic(fmt.Sprintf("ParseNumber(%q) failed: %v", s, err))
	}
	return n
}

// Decimal returns the decimal representation of a finite number.
// If the number is infinite, false is returned.
func (n Number) Decimal() (decimal.Decimal, bool) {
	if n.inf != 0 {
		return decimal.Decimal{}, false
	}
	return n.value, true
}

// IsInf returns true if n is positive or negative infinity.
func (n Number) IsInf() bool {
	return n.inf != 0
}

// Sign returns:
//
//	-1 if n < 0
//	 0 if n = 0
//	+1 if n > 0
func (n Number) Sign() int {
	if n.inf != 0 {
		return int(n.inf)
	}
	return n.value.Sign()
}

// IsZero returns true if n = 0.
func (n Number) IsZero() bool {
	return n.inf == 0 && n.value.IsZero()
}

// IsNeg returns true if n < 0.
func (n Number) IsNeg() bool {
	return n.Sign() < 0
}

// IsPos returns true if n > 0.
func (n Number) IsPos() bool {
	return n.Sign() > 0
}

// IsInt returns true if n is finite and has no significant digits after
// the decimal point.
func (n Number) IsInt() bool {
	return n.inf == 0 && n.value.IsInt()
}

// Neg returns a number with the opposite sign.
func (n Number) Neg() Number {
	switch {
	case n.inf != 0:
		return Number{inf: -n.inf}
	case n.value.IsZero():
		return n
	}
	return Number{value: n.value.Neg()}
}

// Abs returns the absolute value of the number.
func (n Number) Abs() Number {
	if n.inf != 0 {
		return Number{inf: 1}
	}
	return Number{value: n.value.Abs()}
}

// Add returns the (possibly rounded) sum of numbers n and m.
//
// Add returns an error if:
//   - the operands are infinities of opposite signs;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (n Number) Add(m Number) (Number, error) {
	r, err := n.add(m)
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v + %v]: %w", n, m, err)
	}
	return r, nil
}

func (n Number) add(m Number) (Number, error) {
	switch {
	case n.inf != 0 && m.inf != 0:
		if n.inf != m.inf {
			return Number{}, ErrInvalidAmount
		}
		return n, nil
	case n.inf != 0:
		return n, nil
	case m.inf != 0:
		return m, nil
	}
	d, err := n.value.Add(m.value)
	if err != nil {
		return Number{}, overflow(err)
	}
	return Number{value: d}, nil
}

// Sub returns the (possibly rounded) difference between numbers n and m.
// See also method [Number.Add].
func (n Number) Sub(m Number) (Number, error) {
	r, err := n.add(m.Neg())
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v - %v]: %w", n, m, err)
	}
	return r, nil
}

// Mul returns the (possibly rounded) product of numbers n and m.
//
// Mul returns an error if:
//   - one operand is infinite and the other is zero;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (n Number) Mul(m Number) (Number, error) {
	r, err := n.mul(m)
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v * %v]: %w", n, m, err)
	}
	return r, nil
}

func (n Number) mul(m Number) (Number, error) {
	if n.inf != 0 || m.inf != 0 {
		if n.IsZero() || m.IsZero() {
			return Number{}, ErrInvalidAmount
		}
		return Inf(n.Sign() * m.Sign()), nil
	}
	d, err := n.value.Mul(m.value)
	if err != nil {
		return Number{}, overflow(err)
	}
	return Number{value: d}, nil
}

// Quo returns the (possibly rounded) quotient of numbers n and m.
//
// Quo returns an error if:
//   - the divisor is 0;
//   - both operands are infinite;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
func (n Number) Quo(m Number) (Number, error) {
	r, err := n.quo(m)
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v / %v]: %w", n, m, err)
	}
	return r, nil
}

func (n Number) quo(m Number) (Number, error) {
	switch {
	case m.IsZero():
		return Number{}, ErrDivisionByZero
	case n.inf != 0 && m.inf != 0:
		return Number{}, ErrInvalidAmount
	case n.inf != 0:
		return Inf(n.Sign() * m.Sign()), nil
	case m.inf != 0:
		return Number{}, nil
	}
	d, err := n.value.Quo(m.value)
	if err != nil {
		return Number{}, overflow(err)
	}
	return Number{value: d}, nil
}

// Cmp compares numbers and returns:
//
//	-1 if n < m
//	 0 if n = m
//	+1 if n > m
func (n Number) Cmp(m Number) int {
	if n.inf != 0 || m.inf != 0 {
		switch {
		case n.inf == m.inf:
			return 0
		case n.inf > m.inf:
			return 1
		default:
			return -1
		}
	}
	return n.value.Cmp(m.value)
}

// Equal returns true if n = m.
func (n Number) Equal(m Number) bool {
	return n.Cmp(m) == 0
}

// Min returns the smaller number.
func (n Number) Min(m Number) Number {
	if n.Cmp(m) <= 0 {
		return n
	}
	return m
}

// Max returns the larger number.
func (n Number) Max(m Number) Number {
	if n.Cmp(m) >= 0 {
		return n
	}
	return m
}

// Round returns a number rounded to the specified number of digits after
// the decimal point using rounding half to even (banker's rounding).
// Infinities are returned unchanged.
func (n Number) Round(scale int) Number {
	if n.inf != 0 {
		return n
	}
	return Number{value: n.value.Round(scale)}
}

// Floor returns a number rounded down to the specified number of digits after
// the decimal point.
// Infinities are returned unchanged.
func (n Number) Floor(scale int) Number {
	if n.inf != 0 {
		return n
	}
	return Number{value: n.value.Floor(scale)}
}

// Trunc returns a number truncated towards zero to the specified number
// of digits after the decimal point.
// Infinities are returned unchanged.
func (n Number) Trunc(scale int) Number {
	if n.inf != 0 {
		return n
	}
	return Number{value: n.value.Trunc(scale)}
}

// Trim returns a number with trailing zeros removed up to the given scale.
// Infinities are returned unchanged.
func (n Number) Trim(scale int) Number {
	if n.inf != 0 {
		return n
	}
	return Number{value: n.value.Trim(scale)}
}

// normalize rounds the number to the given scale and strips trailing zeros.
func (n Number) normalize(scale int) Number {
	return n.Round(scale).Trim(0)
}

// String implements the [fmt.Stringer] interface and returns the number
// without trailing zeros, or "Infinity" and "-Infinity" for infinities.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (n Number) String() string {
	switch n.inf {
	case 1:
		return "Infinity"
	case -1:
		return "-Infinity"
	}
	return n.value.Trim(0).String()
}

func (Number) isValue() {}
