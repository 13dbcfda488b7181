package calc

import (
	"fmt"
	"sync"

	"github.com/metalcalc/metal"
)

// Calculator evaluates metal expressions against the current key rate.
// It is safe for concurrent use: an evaluation sees the rate that was set
// when it started.
type Calculator struct {
	mu   sync.RWMutex
	rate metal.KeyRate
}

// Option configures a [Calculator].
type Option func(*Calculator)

// WithKeyRate sets the initial key rate.
func WithKeyRate(r metal.KeyRate) Option {
	return func(c *Calculator) {
		c.rate = r
	}
}

// New returns a calculator with no key rate unless one is given.
func New(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Calculator) keyRate() metal.KeyRate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rate
}

// Evaluate computes an expression such as "(2.33ref1rec * 3 + 3scrap) / 2".
// Numbers are rounded to 2 digits after the decimal point.
//
// Evaluate returns an error if the expression is malformed or an
// operation fails; use [Message] for a short description.
func (c *Calculator) Evaluate(expr string) (metal.Value, error) {
	v, err := eval(expr, converter{keys: true, rate: c.keyRate()})
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", expr, err)
	}
	return v, nil
}

// SetExchangeRate parses expr, for example "key=50.11" or "key=50-51ref",
// and makes it the current key rate.
// If expr is invalid, the previous rate is kept.
func (c *Calculator) SetExchangeRate(expr string) (metal.KeyRate, error) {
	r, err := metal.ParseKeyRate(expr)
	if err != nil {
		return metal.KeyRate{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rate = r
	return r, nil
}

// ExchangeRate returns the current key rate and whether it is set.
func (c *Calculator) ExchangeRate() (metal.KeyRate, bool) {
	r := c.keyRate()
	return r, !r.IsZero()
}

// ClearExchangeRate unsets the key rate.
func (c *Calculator) ClearExchangeRate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rate = metal.KeyRate{}
}

// Report returns the lines displayed for v using the current key rate.
// See also function [Report].
func (c *Calculator) Report(v metal.Value) ([]string, error) {
	return Report(v, c.keyRate())
}
