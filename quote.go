package metal

var (
	half    = MustParseNumber("0.5")
	two     = NewNumberFromInt64(2)
	maxFrac = MustParseNumber("0.99")
)

// quoteRule describes how a quoted denomination maps onto scrap.
// A whole unit is worth group scrap; inside a unit every scrapFrac of
// the quoted fraction is one scrap and weapFrac is half a scrap.
type quoteRule struct {
	group     Number
	scrapFrac Number
	weapFrac  Number
}

// toScrap converts a quoted amount to scrap.
// The fractional part is clamped at 0.99 and the last half-scrap term is
// snapped to the nearest half scrap.
// Negative amounts convert symmetrically, infinities are returned unchanged.
func toScrap(amount Number, rule quoteRule) (Number, error) {
	if amount.IsInf() {
		return amount, nil
	}
	if amount.IsNeg() {
		s, err := toScrap(amount.Neg(), rule)
		if err != nil {
			return Number{}, err
		}
		return s.Neg(), nil
	}

	// Whole units
	whole := amount.Floor(0)
	scrap, err := rule.group.mul(whole)
	if err != nil {
		return Number{}, err
	}

	// Fraction, clamped
	frac, err := amount.add(whole.Neg())
	if err != nil {
		return Number{}, err
	}
	frac = frac.Min(maxFrac)

	// Whole scrap steps
	q, err := frac.quo(rule.scrapFrac)
	if err != nil {
		return Number{}, err
	}
	steps := q.Floor(0)
	if scrap, err = scrap.add(steps); err != nil {
		return Number{}, err
	}
	used, err := steps.mul(rule.scrapFrac)
	if err != nil {
		return Number{}, err
	}
	rem, err := frac.add(used.Neg())
	if err != nil {
		return Number{}, err
	}

	// Half scrap bucket
	span := rule.weapFrac
	if rem.Cmp(rule.weapFrac) > 0 {
		if scrap, err = scrap.add(half); err != nil {
			return Number{}, err
		}
		if rem, err = rem.add(rule.weapFrac.Neg()); err != nil {
			return Number{}, err
		}
		if span, err = rule.scrapFrac.add(rule.weapFrac.Neg()); err != nil {
			return Number{}, err
		}
	}
	ratio, err := rem.quo(span)
	if err != nil {
		return Number{}, err
	}
	snap, err := ratio.Round(0).mul(half)
	if err != nil {
		return Number{}, err
	}
	return scrap.add(snap)
}

// fromScrap converts scrap to a quoted amount, the inverse of [toScrap].
// Whole scrap steps are worth scrapFrac each; what is left is snapped to a
// whole number of weapons, each worth weapFrac.
func fromScrap(scrap Number, rule quoteRule) (Number, error) {
	if scrap.IsInf() {
		return scrap, nil
	}
	if scrap.IsNeg() {
		q, err := fromScrap(scrap.Neg(), rule)
		if err != nil {
			return Number{}, err
		}
		return q.Neg(), nil
	}

	// Whole units
	units, err := scrap.quo(rule.group)
	if err != nil {
		return Number{}, err
	}
	whole := units.Floor(0)
	used, err := whole.mul(rule.group)
	if err != nil {
		return Number{}, err
	}
	rem, err := scrap.add(used.Neg())
	if err != nil {
		return Number{}, err
	}

	// Whole scrap steps
	steps := rem.Floor(0)
	frac, err := rem.add(steps.Neg())
	if err != nil {
		return Number{}, err
	}
	stepsFrac, err := steps.mul(rule.scrapFrac)
	if err != nil {
		return Number{}, err
	}
	quote, err := whole.add(stepsFrac)
	if err != nil {
		return Number{}, err
	}

	// Weapons, rounded half to even
	weapons, err := frac.mul(two)
	if err != nil {
		return Number{}, err
	}
	tail, err := weapons.Round(0).mul(rule.weapFrac)
	if err != nil {
		return Number{}, err
	}
	return quote.add(tail)
}
