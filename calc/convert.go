package calc

import (
	"fmt"
	"strings"

	"github.com/metalcalc/metal"
)

// converter turns a literal such as "2ref1rec" or "1.5" into a value.
type converter struct {
	keys bool // whether the key denomination is accepted
	rate metal.KeyRate
}

// segment is a run of digits followed by the word naming its denomination.
type segment struct {
	num, word string
}

func splitLiteral(s string) []segment {
	var segs []segment
	var cur segment
	inWord := false
	for _, r := range s {
		digit := r == '.' || ('0' <= r && r <= '9')
		if digit && inWord {
			segs = append(segs, cur)
			cur = segment{}
			inWord = false
		}
		if digit {
			cur.num += string(r)
		} else {
			cur.word += string(r)
			inWord = true
		}
	}
	if cur.num != "" || cur.word != "" {
		segs = append(segs, cur)
	}
	return segs
}

func (c converter) convert(lit string) (metal.Value, error) {
	s := strings.ToLower(lit)
	segs := splitLiteral(s)

	// All words are checked before any number.
	words := 0
	for _, sg := range segs {
		if sg.word == "" {
			continue
		}
		words++
		d, err := metal.ParseDenom(sg.word)
		if err != nil {
			return nil, fmt.Errorf("converting %q: %w", lit, err)
		}
		if d == metal.Key && !c.keys {
			return nil, fmt.Errorf("converting %q: %w: key is not accepted here", lit, metal.ErrBadCurrency)
		}
	}
	if words == 0 {
		n, err := metal.ParseNumber(s)
		if err != nil {
			return nil, fmt.Errorf("converting %q: %w", lit, err)
		}
		return n, nil
	}

	var q metal.Quote
	var keys metal.Number
	hasKeys := false
	for _, sg := range segs {
		if sg.word == "" {
			return nil, fmt.Errorf("converting %q: %w: %q has no denomination", lit, metal.ErrBadCurrency, sg.num)
		}
		if sg.num == "" {
			return nil, fmt.Errorf("converting %q: %w: %q has no amount", lit, metal.ErrBadNumber, sg.word)
		}
		d := metal.MustParseDenom(sg.word)
		if d == metal.Key && c.rate.IsZero() {
			return nil, fmt.Errorf("converting %q: %w", lit, metal.ErrMissingExchangeRate)
		}
		n, err := metal.ParseNumber(sg.num)
		if err != nil {
			return nil, fmt.Errorf("converting %q: %w", lit, err)
		}
		var sum *metal.Number
		switch d {
		case metal.Refined:
			sum = &q.Refined
		case metal.Reclaimed:
			sum = &q.Reclaimed
		case metal.Scrap:
			sum = &q.Scrap
		case metal.Weapon:
			sum = &q.Weapon
		case metal.Key:
			sum = &keys
			hasKeys = true
		}
		if *sum, err = sum.Add(n); err != nil {
			return nil, fmt.Errorf("converting %q: %w", lit, err)
		}
	}

	m, err := metal.NewMetalFromQuote(q)
	if err != nil {
		return nil, fmt.Errorf("converting %q: %w", lit, err)
	}
	if !hasKeys {
		return m, nil
	}
	price, err := c.rate.Keys(keys)
	if err != nil {
		return nil, fmt.Errorf("converting %q: %w", lit, err)
	}
	v, err := metal.Add(m, price)
	if err != nil {
		return nil, fmt.Errorf("converting %q: %w", lit, err)
	}
	return v, nil
}
