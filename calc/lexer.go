package calc

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// lex splits expr into operators, converted literals and groups.
func lex(expr string, conv converter) ([]token, error) {
	toks, _, closed, err := lexGroup(expr, conv)
	if err != nil {
		return nil, err
	}
	if closed {
		return nil, fmt.Errorf("%w: unexpected ')'", ErrParenMismatch)
	}
	return toks, nil
}

// lexGroup tokenizes s up to the first unmatched ')' and returns the
// tokens, the input after the parenthesis and whether it was found.
// Literals are converted once the group is complete.
func lexGroup(s string, conv converter) ([]token, string, bool, error) {
	var toks []token
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		switch {
		case r == '(':
			sub, rest, closed, err := lexGroup(s, conv)
			if err != nil {
				return nil, "", false, err
			}
			if !closed {
				return nil, "", false, fmt.Errorf("%w: missing ')'", ErrParenMismatch)
			}
			toks = append(toks, token{kind: groupToken, group: sub})
			s = rest
		case r == ')':
			if err := convertAll(toks, conv); err != nil {
				return nil, "", false, err
			}
			return toks, s, true, nil
		case isOp(r):
			toks = append(toks, token{kind: opToken, op: byte(r)})
		case unicode.IsSpace(r):
		default:
			n := len(toks)
			switch {
			case n == 0 || toks[n-1].kind == opToken:
				toks = append(toks, token{kind: litToken, lit: string(r)})
			case toks[n-1].kind == groupToken:
				return nil, "", false, fmt.Errorf("%w: %q after ')'", ErrInvalidSyntax, r)
			default:
				toks[n-1].lit += string(r)
			}
		}
	}
	if err := convertAll(toks, conv); err != nil {
		return nil, "", false, err
	}
	return toks, "", false, nil
}

func convertAll(toks []token, conv converter) error {
	for i, t := range toks {
		if t.kind != litToken {
			continue
		}
		v, err := conv.convert(t.lit)
		if err != nil {
			return err
		}
		toks[i] = token{kind: valueToken, val: v}
	}
	return nil
}
