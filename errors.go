package metal

import (
	"errors"
	"fmt"
)

// Errors returned by the package.
// They are wrapped with the failing operation, use [errors.Is] to test for them.
var (
	ErrBadCurrency          = errors.New("bad currency")
	ErrBadNumber            = errors.New("bad number")
	ErrInvalidAmount        = errors.New("metal can not be NaN")
	ErrPrecisionOverflow    = errors.New("precision overflow")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrMeaninglessOperation = errors.New("meaningless operation")
	ErrMissingExchangeRate  = errors.New("exchange rate is not set")
	ErrBadExchangeRate      = errors.New("bad exchange rate expression")
)

// overflow tags an error of the decimal engine as a precision overflow.
func overflow(err error) error {
	return fmt.Errorf("%w: %v", ErrPrecisionOverflow, err)
}
