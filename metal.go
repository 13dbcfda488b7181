package metal

import (
	"fmt"
	"strings"
)

// Metal represents an amount of metal.
// It is stored as a single [Number] of scrap, the canonical unit,
// and every denomination is a view derived from it.
// Two metals are equal if and only if their scrap amounts are equal.
// Its zero value is 0 scrap.
// Metal is designed to be safe for concurrent use by multiple goroutines.
type Metal struct {
	scrap Number
}

// Quote is an amount of metal as written by a trader, one number per
// denomination.
// The zero value is 0 in every denomination.
type Quote struct {
	Refined   Number
	Reclaimed Number
	Scrap     Number
	Weapon    Number
}

// String returns the quote in the order of the fields,
// for example "2.33 ref 1 rec 0 scrap 0 wep".
func (q Quote) String() string {
	return fmt.Sprintf("%v ref %v rec %v scrap %v wep", q.Refined, q.Reclaimed, q.Scrap, q.Weapon)
}

// NewMetal returns metal equal to the sum of the quoted amounts.
// An empty string is treated as "0".
//
// NewMetal returns an error if any of the strings is not a number
// or if the quote cannot be converted, see [NewMetalFromQuote].
func NewMetal(ref, rec, scrap, weapon string) (Metal, error) {
	var q Quote
	for _, p := range []struct {
		dst *Number
		src string
	}{
		{&q.Refined, ref},
		{&q.Reclaimed, rec},
		{&q.Scrap, scrap},
		{&q.Weapon, weapon},
	} {
		if p.src == "" {
			continue
		}
		n, err := ParseNumber(p.src)
		if err != nil {
			return Metal{}, fmt.Errorf("parsing metal: %w", err)
		}
		*p.dst = n
	}
	return NewMetalFromQuote(q)
}

// MustNewMetal is like [NewMetal] but panics if the metal cannot be constructed.
// It simplifies safe initialization of global variables holding metals.
func MustNewMetal(ref, rec, scrap, weapon string) Metal {
	m, err := NewMetal(ref, rec, scrap, weapon)
	if err != nil {
		panic(fmt.Sprintf("NewMetal(%q, %q, %q, %q) failed: %v", ref, rec, scrap, weapon, err))
	}
	return m
}

// NewMetalFromQuote converts a quote to metal.
// Weapons count as half a scrap each, scrap is taken as is, while reclaimed
// and refined amounts are read in their quoting convention: every 0.33 rec
// or 0.11 ref of the fractional part is one scrap, and 0.16 rec or 0.05 ref
// is half a scrap.
// Fractional parts above 0.99 are clamped to 0.99.
//
// If any amount of the quote is infinite, the metal is the sum of the
// infinite amounts, and NewMetalFromQuote returns an error if both
// infinities are present.
func NewMetalFromQuote(q Quote) (Metal, error) {
	m, err := newMetalFromQuote(q)
	if err != nil {
		return Metal{}, fmt.Errorf("converting [%v] to metal: %w", q, err)
	}
	return m, nil
}

func newMetalFromQuote(q Quote) (Metal, error) {
	parts := [...]Number{q.Refined, q.Reclaimed, q.Scrap, q.Weapon}

	// Infinities
	var inf Number
	found := false
	for _, n := range parts {
		if !n.IsInf() {
			continue
		}
		var err error
		if inf, err = inf.add(n); err != nil {
			return Metal{}, err
		}
		found = true
	}
	if found {
		return Metal{scrap: inf}, nil
	}

	// Weapons and scrap
	scrap, err := q.Weapon.quo(two)
	if err != nil {
		return Metal{}, err
	}
	if scrap, err = scrap.add(q.Scrap); err != nil {
		return Metal{}, err
	}

	// Quoted denominations
	for _, p := range []struct {
		amount Number
		denom  Denomination
	}{
		{q.Reclaimed, Reclaimed},
		{q.Refined, Refined},
	} {
		s, err := toScrap(p.amount, p.denom.rule())
		if err != nil {
			return Metal{}, err
		}
		if scrap, err = scrap.add(s); err != nil {
			return Metal{}, err
		}
	}
	return Metal{scrap: scrap}, nil
}

// NewMetalFromScrap returns metal equal to the given amount of scrap.
func NewMetalFromScrap(scrap Number) Metal {
	return Metal{scrap: scrap}
}

// Scrap returns the canonical amount of scrap without rounding.
func (m Metal) Scrap() Number {
	return m.scrap
}

// View returns the metal expressed in the denomination, rounded to
// 2 digits after the decimal point with trailing zeros removed.
// Infinite metal has infinite views.
// If a view does not fit into a [Number], an infinity of the metal's sign
// is returned.
//
// View panics for [Key], which has no fixed value; use [Metal.ToKey] instead.
func (m Metal) View(d Denomination) Number {
	var v Number
	var err error
	switch d {
	case Weapon:
		v, err = m.scrap.mul(two)
	case Scrap:
		v = m.scrap
	case Reclaimed, Refined:
		v, err = fromScrap(m.scrap, d.rule())
	default:
		panic(fmt.Sprintf("View(%v) is not supported", d))
	}
	if err != nil {
		return Inf(m.Sign())
	}
	return v.normalize(2)
}

// Breakdown is metal decomposed greedily into whole refined, reclaimed
// and scrap and the remaining weapons.
// Counts are non-negative, the sign is carried by Neg.
type Breakdown struct {
	Neg       bool
	Refined   Number
	Reclaimed Number
	Scrap     Number
	Weapon    Number
}

// String returns the non-zero counts, for example "2 ref 1 rec 2 scrap 1 wep".
// Zero metal is written as "0 ref".
func (b Breakdown) String() string {
	parts := make([]string, 0, 4)
	for _, p := range []struct {
		count Number
		denom Denomination
	}{
		{b.Refined, Refined},
		{b.Reclaimed, Reclaimed},
		{b.Scrap, Scrap},
		{b.Weapon, Weapon},
	} {
		if p.count.IsZero() {
			continue
		}
		parts = append(parts, p.count.String()+" "+p.denom.Code())
	}
	if len(parts) == 0 {
		return "0 " + Refined.Code()
	}
	s := strings.Join(parts, " ")
	if b.Neg {
		s = "-" + s
	}
	return s
}

// Breakdown returns the metal decomposed into whole units.
// Infinite metal is broken down to infinite refined.
func (m Metal) Breakdown() Breakdown {
	b := Breakdown{Neg: m.IsNeg()}
	rem := m.scrap.Abs()
	if rem.IsInf() {
		b.Refined = rem
		return b
	}
	var err error
	for _, p := range []struct {
		count *Number
		denom Denomination
	}{
		{&b.Refined, Refined},
		{&b.Reclaimed, Reclaimed},
		{&b.Scrap, Scrap},
	} {
		unit := denomUnit[p.denom]
		if rem, err = takeUnits(rem, unit, p.count); err != nil {
			return Breakdown{Neg: b.Neg, Refined: Inf(1)}
		}
	}
	w, err := rem.mul(two)
	if err != nil {
		return Breakdown{Neg: b.Neg, Refined: Inf(1)}
	}
	b.Weapon = w.Round(0).Trim(0)
	return b
}

// takeUnits stores the number of whole units in rem and returns what is left.
func takeUnits(rem, unit Number, count *Number) (Number, error) {
	q, err := rem.quo(unit)
	if err != nil {
		return Number{}, err
	}
	*count = q.Floor(0).Trim(0)
	used, err := count.mul(unit)
	if err != nil {
		return Number{}, err
	}
	return rem.add(used.Neg())
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Metal) Sign() int {
	return m.scrap.Sign()
}

// IsZero returns true if m = 0.
func (m Metal) IsZero() bool {
	return m.scrap.IsZero()
}

// IsNeg returns true if m < 0.
func (m Metal) IsNeg() bool {
	return m.scrap.IsNeg()
}

// IsPos returns true if m > 0.
func (m Metal) IsPos() bool {
	return m.scrap.IsPos()
}

// IsInf returns true if m is infinite.
func (m Metal) IsInf() bool {
	return m.scrap.IsInf()
}

// Neg returns metal with the opposite sign.
func (m Metal) Neg() Metal {
	return Metal{scrap: m.scrap.Neg()}
}

// Abs returns the absolute value of the metal.
func (m Metal) Abs() Metal {
	return Metal{scrap: m.scrap.Abs()}
}

// Add returns the sum of metals m and b.
//
// Add returns an error if:
//   - the metals are infinities of opposite signs;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
//
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#MaxPrec
func (m Metal) Add(b Metal) (Metal, error) {
	s, err := m.scrap.add(b.scrap)
	if err != nil {
		return Metal{}, fmt.Errorf("computing [%v + %v]: %w", m, b, err)
	}
	return Metal{scrap: s}, nil
}

// Sub returns the difference between metals m and b.
// See also method [Metal.Add].
func (m Metal) Sub(b Metal) (Metal, error) {
	s, err := m.scrap.add(b.scrap.Neg())
	if err != nil {
		return Metal{}, fmt.Errorf("computing [%v - %v]: %w", m, b, err)
	}
	return Metal{scrap: s}, nil
}

// Mul returns metal m multiplied by the number e.
//
// Mul returns an error if:
//   - the metal is infinite and e is zero or vice versa;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
//
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#MaxPrec
func (m Metal) Mul(e Number) (Metal, error) {
	s, err := m.scrap.mul(e)
	if err != nil {
		return Metal{}, fmt.Errorf("computing [%v * %v]: %w", m, e, err)
	}
	return Metal{scrap: s}, nil
}

// Quo returns metal m divided by the number e.
//
// Quo returns an error if:
//   - the divisor is 0;
//   - both the metal and the divisor are infinite;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
//
// [decimal.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#MaxPrec
func (m Metal) Quo(e Number) (Metal, error) {
	s, err := m.scrap.quo(e)
	if err != nil {
		return Metal{}, fmt.Errorf("computing [%v / %v]: %w", m, e, err)
	}
	return Metal{scrap: s}, nil
}

// Rat returns the ratio of metals m and b, rounded to 2 digits after
// the decimal point.
// See also method [Metal.Quo].
func (m Metal) Rat(b Metal) (Number, error) {
	r, err := m.scrap.quo(b.scrap)
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v / %v]: %w", m, b, err)
	}
	return r.normalize(2), nil
}

// Cmp compares metals and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
func (m Metal) Cmp(b Metal) int {
	return m.scrap.Cmp(b.scrap)
}

// Equal returns true if m = b.
func (m Metal) Equal(b Metal) bool {
	return m.Cmp(b) == 0
}

// ToKey returns the number of keys the metal is worth at the rate.
// See also method [KeyRate.Conv].
func (m Metal) ToKey(r KeyRate) (Value, error) {
	return r.Conv(m)
}

// String implements the [fmt.Stringer] interface and returns the metal
// in refined, for example "4.16 ref".
// See also methods [Metal.Format] and [Metal.FormatLayout].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Metal) String() string {
	return m.View(Refined).String() + " " + Refined.Code()
}

func (Metal) isValue() {}
