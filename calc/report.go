package calc

import (
	"fmt"

	"github.com/metalcalc/metal"
)

// Report returns the lines displayed for a result: the value itself,
// the breakdown of metal that is not a whole number of refined, and the
// price in keys if the rate is set.
func Report(v metal.Value, rate metal.KeyRate) ([]string, error) {
	lines := []string{v.String()}
	var convertible bool
	switch v := v.(type) {
	case metal.Metal:
		convertible = true
		if fractional(v) {
			lines = append(lines, v.Breakdown().String())
		}
	case metal.Range:
		convertible = true
		if fractional(v.Lo()) || fractional(v.Hi()) {
			lines = append(lines, v.Lo().Breakdown().String()+" ~ "+v.Hi().Breakdown().String())
		}
	}
	if !convertible || rate.IsZero() {
		return lines, nil
	}
	k, err := rate.Conv(v)
	if err != nil {
		return nil, fmt.Errorf("reporting %v: %w", v, err)
	}
	return append(lines, k.String()+" "+metal.Key.Code()), nil
}

func fractional(m metal.Metal) bool {
	r := m.View(metal.Refined)
	return !r.IsInf() && !r.IsInt()
}
