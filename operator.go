package money

import "fmt"

// Operator transforms an amount into a new amount.
// Operators are the single customization point of [Amount.With]: discounts,
// taxes, roundings and currency conversions all implement it.
type Operator interface {
	Apply(a Amount) (Amount, error)
}

// OperatorFunc adapts an ordinary function to the [Operator] interface.
type OperatorFunc func(a Amount) (Amount, error)

// Apply calls f(a).
func (f OperatorFunc) Apply(a Amount) (Amount, error) {
	return f(a)
}

// Identity returns an operator that returns its argument unchanged.
func Identity() Operator {
	return OperatorFunc(func(a Amount) (Amount, error) {
		return a, nil
	})
}

// Chain returns an operator applying ops from left to right, so that
// Chain(op1, op2) computes op2(op1(a)).
// The first error stops the chain.
func Chain(ops ...Operator) Operator {
	return OperatorFunc(func(a Amount) (Amount, error) {
		var err error
		for i, op := range ops {
			a, err = op.Apply(a)
			if err != nil {
				return Amount{}, fmt.Errorf("applying operator %d of %d: %w", i+1, len(ops), err)
			}
		}
		return a, nil
	})
}

var hundred = NewDecimal(100, 0)

// percentFactor returns 1 + sign * pct / 100.
func percentFactor(pct Decimal, sign int) Decimal {
	// Division by 100 always terminates.
	frac, _ := pct.quo(hundred)
	if sign < 0 {
		frac = frac.Neg()
	}
	return NewDecimal(1, 0).Add(frac)
}

// Discount returns an operator reducing an amount by pct percent,
// i.e. multiplying it by (1 - pct/100). The result is not rounded.
// A percentage less than or equal to zero leaves the amount unchanged.
func Discount(pct Decimal) Operator {
	if !pct.IsPos() {
		return Identity()
	}
	f := percentFactor(pct, -1)
	return OperatorFunc(func(a Amount) (Amount, error) {
		return a.Mul(f), nil
	})
}

// Tax returns an operator increasing an amount by pct percent,
// i.e. multiplying it by (1 + pct/100). The result is not rounded.
// A percentage less than or equal to zero leaves the amount unchanged.
func Tax(pct Decimal) Operator {
	if !pct.IsPos() {
		return Identity()
	}
	f := percentFactor(pct, +1)
	return OperatorFunc(func(a Amount) (Amount, error) {
		return a.Mul(f), nil
	})
}

// Percent returns an operator computing pct percent of an amount,
// i.e. multiplying it by pct/100.
func Percent(pct Decimal) Operator {
	frac, _ := pct.quo(hundred)
	return OperatorFunc(func(a Amount) (Amount, error) {
		return a.Mul(frac), nil
	})
}

// ConvertWith returns an operator converting amounts with the exchange rate.
// See also method [ExchangeRate.Conv].
func ConvertWith(r ExchangeRate) Operator {
	return OperatorFunc(r.Conv)
}
