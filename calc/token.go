package calc

import (
	"strings"

	"github.com/metalcalc/metal"
)

type tokenKind uint8

const (
	opToken    tokenKind = iota // one of + - * /
	litToken                    // raw literal, not converted yet
	valueToken                  // converted literal
	groupToken                  // parenthesized subexpression
)

type token struct {
	kind  tokenKind
	op    byte
	lit   string
	val   metal.Value
	group []token
}

func isOp(r rune) bool {
	return r < 0x80 && strings.IndexByte("+-*/", byte(r)) >= 0
}
