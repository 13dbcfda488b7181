package calc

import "github.com/metalcalc/metal"

// Service is the interface of the calculator used by front ends.
type Service interface {
	Evaluate(expr string) (metal.Value, error)
	SetExchangeRate(expr string) (metal.KeyRate, error)
	Report(v metal.Value) ([]string, error)
}

var _ Service = (*Calculator)(nil)
