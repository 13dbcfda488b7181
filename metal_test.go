package metal

import (
	"errors"
	"fmt"
	"testing"
)

func mustScrap(s string) Metal {
	return NewMetalFromScrap(MustParseNumber(s))
}

func TestMetal_ZeroValue(t *testing.T) {
	got := Metal{}
	want := MustNewMetal("0", "0", "0", "0")
	if !got.Equal(want) {
		t.Errorf("Metal{} = %v, want %v", got, want)
	}
}

func TestMetal_Interfaces(t *testing.T) {
	var i any = Metal{}
	_, ok := i.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", i)
	}
	_, ok = i.(fmt.Formatter)
	if !ok {
		t.Errorf("%T does not implement fmt.Formatter", i)
	}
	_, ok = i.(Value)
	if !ok {
		t.Errorf("%T does not implement Value", i)
	}
}

func TestNewMetal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			ref, rec, scrap, weapon string
			want                    string
		}{
			{"", "", "", "", "0"},
			{"1", "", "", "", "9"},
			{"2.33", "1", "", "", "24"},
			{"2.55", "", "", "", "23"},
			{"0.27", "", "", "", "2.5"},
			{"0.05", "", "", "", "0.5"},
			{"", "0.16", "", "", "0.5"},
			{"", "0.5", "", "", "1.5"},
			{"", "", "3", "", "3"},
			{"", "", "1.5", "", "1.5"},
			{"", "", "", "1", "0.5"},
			{"", "", "", "3", "1.5"},
			{"1", "1", "1", "1", "13.5"},
			{"-0.27", "", "", "", "-2.5"},
			{"-1", "1", "", "", "-6"},
			{"inf", "", "", "", "Infinity"},
			{"", "-inf", "5", "", "-Infinity"},
			{"inf", "inf", "", "", "Infinity"},
		}
		for _, tt := range tests {
			got, err := NewMetal(tt.ref, tt.rec, tt.scrap, tt.weapon)
			if err != nil {
				t.Errorf("NewMetal(%q, %q, %q, %q) failed: %v", tt.ref, tt.rec, tt.scrap, tt.weapon, err)
				continue
			}
			if got.Scrap().String() != tt.want {
				t.Errorf("NewMetal(%q, %q, %q, %q) = %v scrap, want %v scrap", tt.ref, tt.rec, tt.scrap, tt.weapon, got.Scrap(), tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			ref, rec, scrap, weapon string
			want                    error
		}{
			"letters":       {"x", "", "", "", ErrBadNumber},
			"dots":          {"", "1.2.3", "", "", ErrBadNumber},
			"nan":           {"", "", "nan", "", ErrInvalidAmount},
			"infinities":    {"inf", "", "", "-inf", ErrInvalidAmount},
			"overflow":      {"", "", "", "123456789012345678901234", ErrPrecisionOverflow},
			"overflow refs": {"9999999999999999999", "", "", "", ErrPrecisionOverflow},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewMetal(tt.ref, tt.rec, tt.scrap, tt.weapon)
				if !errors.Is(err, tt.want) {
					t.Errorf("NewMetal(%q, %q, %q, %q) = %v, want %v", tt.ref, tt.rec, tt.scrap, tt.weapon, err, tt.want)
				}
			})
		}
	})
}

func TestMustNewMetal(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewMetal(\"x\", \"\", \"\", \"\") did not panic")
			}
		}()
		MustNewMetal("x", "", "", "")
	})
}

// Quotes that are not written on the 0.11 / 0.05 grid snap to the nearest
// half scrap, so they do not survive a round trip.
// The 0.99 clamp makes 0.99 ref and 1 ref the same 9 scrap: a whole
// refined is 9 steps of 0.11, so the two quotes collide even though one
// might expect them to stay distinct.
func TestNewMetalFromQuote_Boundaries(t *testing.T) {
	tests := []struct {
		ref       string
		wantScrap string
		wantRef   string
	}{
		{"0.99", "9", "1"},
		{"1", "9", "1"},
		{"0.995", "9", "1"},
		{"1.999", "18", "2"},
		{"0.055", "0.5", "0.05"},
		{"0.08", "0.5", "0.05"},
		{"0.09", "1", "0.11"},
		{"0.1", "1", "0.11"},
		{"0.01", "0", "0"},
		{"0.03", "0.5", "0.05"},
		{"0.16", "1.5", "0.16"},
		{"0.5", "4.5", "0.49"},
	}
	for _, tt := range tests {
		q := Quote{Refined: MustParseNumber(tt.ref)}
		got, err := NewMetalFromQuote(q)
		if err != nil {
			t.Errorf("NewMetalFromQuote(%v) failed: %v", q, err)
			continue
		}
		if got.Scrap().String() != tt.wantScrap {
			t.Errorf("NewMetalFromQuote(%v) = %v scrap, want %v scrap", q, got.Scrap(), tt.wantScrap)
		}
		if ref := got.View(Refined).String(); ref != tt.wantRef {
			t.Errorf("NewMetalFromQuote(%v).View(Refined) = %v, want %v", q, ref, tt.wantRef)
		}
	}
}

func TestMetal_RoundTrip(t *testing.T) {
	for i := range 200 {
		m := NewMetalFromScrap(NewNumberFromInt64(int64(i)))
		m, err := m.Quo(two)
		if err != nil {
			t.Fatalf("Quo failed: %v", err)
		}
		for _, d := range []Denomination{Reclaimed, Refined} {
			var q Quote
			switch d {
			case Reclaimed:
				q.Reclaimed = m.View(d)
			case Refined:
				q.Refined = m.View(d)
			}
			got, err := NewMetalFromQuote(q)
			if err != nil {
				t.Errorf("NewMetalFromQuote(%v) failed: %v", q, err)
				continue
			}
			if !got.Equal(m) {
				t.Errorf("NewMetalFromQuote(%v) = %v scrap, want %v scrap", q, got.Scrap(), m.Scrap())
			}
		}
	}
}

func TestMetal_View(t *testing.T) {
	tests := []struct {
		scrap                      string
		weapon, sc, reclaimed, ref string
	}{
		{"0", "0", "0", "0", "0"},
		{"0.5", "1", "0.5", "0.16", "0.05"},
		{"1.5", "3", "1.5", "0.49", "0.16"},
		{"2.5", "5", "2.5", "0.82", "0.27"},
		{"37.5", "75", "37.5", "12.49", "4.16"},
		{"92", "184", "92", "30.66", "10.22"},
		{"-20.5", "-41", "-20.5", "-6.82", "-2.27"},
		{"3.75", "7.5", "3.75", "1.32", "0.43"},
		{"2.25", "4.5", "2.25", "0.66", "0.22"},
		{"0.25", "0.5", "0.25", "0", "0"},
		{"inf", "Infinity", "Infinity", "Infinity", "Infinity"},
		{"-inf", "-Infinity", "-Infinity", "-Infinity", "-Infinity"},
	}
	for _, tt := range tests {
		m := mustScrap(tt.scrap)
		for d, want := range map[Denomination]string{
			Weapon:    tt.weapon,
			Scrap:     tt.sc,
			Reclaimed: tt.reclaimed,
			Refined:   tt.ref,
		} {
			if got := m.View(d).String(); got != want {
				t.Errorf("%v scrap View(%v) = %v, want %v", tt.scrap, d, got, want)
			}
		}
	}
}

// Views of metal that is not a multiple of half a scrap agree with the
// breakdown: the leftover is counted in whole weapons.
func TestMetal_ViewOffGrid(t *testing.T) {
	tests := []struct {
		scrap, divisor string
		ref, breakdown string
	}{
		{"9", "4", "0.22", "2 scrap"},
		{"23", "3", "0.82", "2 rec 1 scrap 1 wep"},
		{"1", "3", "0.05", "1 wep"},
		{"-1", "3", "-0.05", "-1 wep"},
	}
	for _, tt := range tests {
		m, err := mustScrap(tt.scrap).Quo(MustParseNumber(tt.divisor))
		if err != nil {
			t.Errorf("%v scrap Quo(%v) failed: %v", tt.scrap, tt.divisor, err)
			continue
		}
		if got := m.View(Refined).String(); got != tt.ref {
			t.Errorf("%v scrap / %v View(Refined) = %v, want %v", tt.scrap, tt.divisor, got, tt.ref)
		}
		if got := m.Breakdown().String(); got != tt.breakdown {
			t.Errorf("%v scrap / %v Breakdown() = %q, want %q", tt.scrap, tt.divisor, got, tt.breakdown)
		}
	}
}

func TestMetal_Breakdown(t *testing.T) {
	tests := []struct {
		scrap string
		want  string
	}{
		{"0", "0 ref"},
		{"0.5", "1 wep"},
		{"3", "1 rec"},
		{"-3", "-1 rec"},
		{"9", "1 ref"},
		{"23.5", "2 ref 1 rec 2 scrap 1 wep"},
		{"37.5", "4 ref 1 scrap 1 wep"},
		{"-37.5", "-4 ref 1 scrap 1 wep"},
	}
	for _, tt := range tests {
		m := mustScrap(tt.scrap)
		got := m.Breakdown().String()
		if got != tt.want {
			t.Errorf("%v scrap Breakdown() = %q, want %q", tt.scrap, got, tt.want)
		}
	}
}

func TestMetal_Arithmetic(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a, b := mustScrap("45"), mustScrap("9")
		if got, err := a.Add(b); err != nil || got.Scrap().String() != "54" {
			t.Errorf("%v.Add(%v) = %v, %v, want 54 scrap", a, b, got.Scrap(), err)
		}
		if got, err := a.Sub(b); err != nil || got.Scrap().String() != "36" {
			t.Errorf("%v.Sub(%v) = %v, %v, want 36 scrap", a, b, got.Scrap(), err)
		}
		if got, err := a.Mul(MustParseNumber("-2")); err != nil || got.Scrap().String() != "-90" {
			t.Errorf("%v.Mul(-2) = %v, %v, want -90 scrap", a, got.Scrap(), err)
		}
		if got, err := a.Quo(MustParseNumber("2")); err != nil || got.Scrap().String() != "22.5" {
			t.Errorf("%v.Quo(2) = %v, %v, want 22.5 scrap", a, got.Scrap(), err)
		}
		if got, err := a.Rat(b); err != nil || got.String() != "5" {
			t.Errorf("%v.Rat(%v) = %v, %v, want 5", a, b, got, err)
		}
		if got, err := mustScrap("10").Rat(mustScrap("3")); err != nil || got.String() != "3.33" {
			t.Errorf("10 scrap Rat(3 scrap) = %v, %v, want 3.33", got, err)
		}
		if got := a.Neg().Abs(); !got.Equal(a) {
			t.Errorf("%v.Neg().Abs() = %v, want %v", a, got, a)
		}
	})

	t.Run("error", func(t *testing.T) {
		inf := mustScrap("inf")
		if _, err := inf.Add(inf.Neg()); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("%v.Add(%v) = %v, want %v", inf, inf.Neg(), err, ErrInvalidAmount)
		}
		if _, err := inf.Mul(Number{}); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("%v.Mul(0) = %v, want %v", inf, err, ErrInvalidAmount)
		}
		if _, err := mustScrap("45").Rat(Metal{}); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("45 scrap Rat(0 scrap) = %v, want %v", err, ErrDivisionByZero)
		}
		if _, err := mustScrap("45").Quo(Number{}); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("45 scrap Quo(0) = %v, want %v", err, ErrDivisionByZero)
		}
	})
}

func TestMetal_Cmp(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1", "2", -1},
		{"2.5", "2.5", 0},
		{"-1", "-2", 1},
		{"inf", "1000", 1},
	}
	for _, tt := range tests {
		a, b := mustScrap(tt.a), mustScrap(tt.b)
		if got := a.Cmp(b); got != tt.want {
			t.Errorf("%v.Cmp(%v) = %v, want %v", a, b, got, tt.want)
		}
	}
}

func TestMetal_String(t *testing.T) {
	tests := []struct {
		scrap, want string
	}{
		{"0", "0 ref"},
		{"37.5", "4.16 ref"},
		{"92", "10.22 ref"},
		{"-2.5", "-0.27 ref"},
		{"inf", "Infinity ref"},
	}
	for _, tt := range tests {
		m := mustScrap(tt.scrap)
		if got := m.String(); got != tt.want {
			t.Errorf("%v scrap String() = %q, want %q", tt.scrap, got, tt.want)
		}
	}
}

func TestMetal_Format(t *testing.T) {
	tests := []struct {
		scrap, format, want string
	}{
		{"37.5", "%v", "4.16 ref"},
		{"37.5", "%s", "4.16 ref"},
		{"37.5", "%q", "\"4.16 ref\""},
		{"37.5", "%f", "4.16"},
		{"37.5", "%d", "75"},
		{"37.5", "%12v", "    4.16 ref"},
		{"37.5", "%-12v|", "4.16 ref    |"},
		{"37.5", "%8f", "    4.16"},
		{"37.5", "%x", "%!x(metal.Metal=4.16 ref)"},
		{"-9", "%v", "-1 ref"},
	}
	for _, tt := range tests {
		m := mustScrap(tt.scrap)
		got := fmt.Sprintf(tt.format, m)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, m, got, tt.want)
		}
	}
}

func TestMetal_FormatLayout(t *testing.T) {
	tests := []struct {
		scrap, layout, want string
	}{
		{"37.5", "%r ref", "4.16 ref"},
		{"37.5", "%rref", "4.16ref"},
		{"37.5", "%w|%s|%c|%r", "75|37.5|12.49|4.16"},
		{"37.5", "%R ref %C rec %S scrap %W wep", "4 ref 0 rec 1 scrap 1 wep"},
		{"-37.5", "%R %C %S %W", "-4 0 -1 -1"},
		{"37.5", "100%%", "100%"},
		{"37.5", "%x%y", "%x%y"},
		{"37.5", "50%", "50%"},
		{"37.5", "", ""},
		{"inf", "%r", "Infinity"},
	}
	for _, tt := range tests {
		m := mustScrap(tt.scrap)
		got := m.FormatLayout(tt.layout)
		if got != tt.want {
			t.Errorf("%v scrap FormatLayout(%q) = %q, want %q", tt.scrap, tt.layout, got, tt.want)
		}
	}
}
