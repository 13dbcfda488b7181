package calc

import (
	"errors"

	"github.com/metalcalc/metal"
)

// Errors returned by the evaluator in addition to the errors of package metal.
var (
	ErrParenMismatch = errors.New("paren mismatch")
	ErrInvalidSyntax = errors.New("invalid syntax")
	ErrBadExpression = errors.New("bad expression")
)

var messages = []struct {
	err error
	msg string
}{
	{ErrParenMismatch, "Paren Mismatch"},
	{ErrInvalidSyntax, "Invalid Syntax"},
	{ErrBadExpression, "Bad Expression"},
	{metal.ErrBadExchangeRate, "Bad exchange rate expression"},
	{metal.ErrMissingExchangeRate, "You must set exchange rate before using key"},
	{metal.ErrBadCurrency, "Bad Currency"},
	{metal.ErrBadNumber, "Bad Number"},
	{metal.ErrMeaninglessOperation, "Meaningless Operation"},
	{metal.ErrInvalidAmount, "Invalid Amount"},
	{metal.ErrPrecisionOverflow, "Precision Overflow"},
	{metal.ErrDivisionByZero, "Division by Zero"},
}

// Message returns the short, user facing message for err.
// Errors of unknown kind are described by their own text.
func Message(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return err.Error()
}
