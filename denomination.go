package metal

import (
	"fmt"
	"strings"
)

//go:generate go run scripts/denomination/codegen.go

// Denomination type represents a unit in which metal amounts are quoted.
// The zero value is [Weapon].
//
// Denomination is implemented as an integer index into an in-memory array
// that stores properties of the unit, such as its code and its value in scrap.
// This design ensures safe concurrency for multiple goroutines accessing
// the same Denomination value.
//
// [Key] is a meta-denomination: its value is not fixed and is defined by
// a [KeyRate].
type Denomination uint8

// ParseDenom converts a string to denomination.
// Both short codes and long names are accepted, in any case:
//
//	ref
//	Refined
//	wep
//
// ParseDenom returns an error if the string does not represent a denomination.
func ParseDenom(s string) (Denomination, error) {
	d, ok := denomLookup[strings.ToLower(s)]
	if !ok {
		return Weapon, fmt.Errorf("%w: unknown denomination %q", ErrBadCurrency, s)
	}
	return d, nil
}

// MustParseDenom is like [ParseDenom] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding denominations.
func MustParseDenom(s string) Denomination {
	d, err := ParseDenom(s)
	if err != nil {
		panic(fmt.Sprintf("ParseDenom(%q) failed: %v", s, err))
	}
	return d
}

// Code returns the short code of the denomination, such as "ref".
func (d Denomination) Code() string {
	return denomCode[d]
}

// Name returns the long name of the denomination, such as "refined".
func (d Denomination) Name() string {
	return denomName[d]
}

// String method implements the [fmt.Stringer] interface and returns
// the short code of the denomination.
// See also method [Denomination.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Denomination) String() string {
	return d.Code()
}

// Unit returns the value of one unit of the denomination in scrap.
// For [Key] the value is not fixed and false is returned.
func (d Denomination) Unit() (Number, bool) {
	if d == Key {
		return Number{}, false
	}
	return denomUnit[d], true
}

// Quoted returns true if amounts of the denomination are written using
// the scrap and weapon fractions rather than plain decimals.
func (d Denomination) Quoted() bool {
	return !denomRule[d].group.IsZero()
}

func (d Denomination) rule() quoteRule {
	return denomRule[d]
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseDenom].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Denomination) UnmarshalText(text []byte) error {
	var err error
	*d, err = ParseDenom(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Weapon, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns the short code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Denomination) MarshalText() ([]byte, error) {
	return []byte(d.Code()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description         |
//	| ---------- | ------- | ------------------- |
//	| %c, %s, %v | ref     | Denomination        |
//	| %q         | "ref"   | Quoted denomination |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Denomination) Format(state fmt.State, verb rune) {
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		writePadded(state, verb, d.Code(), "")
	default:
		writePadded(state, verb, d.Code(), "metal.Denomination")
	}
}
