package money

import (
	"fmt"
	"math"
)

// Amount type represents a monetary amount: a [Decimal] value paired with
// a [Currency]. Its zero value corresponds to "XXX 0", where XXX indicates
// an unknown currency.
//
// Amount is immutable and safe for concurrent use by multiple goroutines.
// Binary operations (Add, Sub, Cmp and friends) require both amounts to be
// denominated in the same currency and fail with [ErrCurrencyMismatch]
// otherwise.
//
// Amounts keep the scale of their value: "USD 100" and "USD 100.00" are
// distinct amounts that compare as numerically equal.
// Use [Amount.Equal], not ==, to compare amounts.
type Amount struct {
	curr  Currency // currency of the amount
	value Decimal  // monetary value
}

// NewAmount returns an amount of the given value in currency c.
// See also [Registry.NewAmount] and [Registry.ParseAmount].
func NewAmount(c Currency, value Decimal) Amount {
	return Amount{curr: c, value: value}
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
func (a Amount) Decimal() Decimal {
	return a.value
}

// Scale returns the number of digits after the decimal point.
func (a Amount) Scale() int {
	return a.value.Scale()
}

// MinorUnits returns a (possibly rounded) amount in minor units of currency
// (e.g. cents, pennies, fens).
// If the scale of the amount is greater than the scale of the currency, then
// the fractional part is rounded using [HalfEven].
// See also constructor [Registry.NewAmountFromMinorUnits].
//
// If the result cannot be represented as an int64, then false is returned.
func (a Amount) MinorUnits() (units int64, ok bool) {
	coef := a.RoundToCurr().Decimal().Coef()
	if !coef.IsInt64() {
		return 0, false
	}
	return coef.Int64(), true
}

// Float64 returns the nearest binary floating-point number.
// This conversion may lose data, as float64 has a smaller precision
// than the decimal type.
func (a Amount) Float64() (f float64, ok bool) {
	f, _ = a.value.Float64()
	return f, !math.IsInf(f, 0)
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.value.Sign()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.value.IsPos()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.value.IsNeg()
}

// IsPosOrZero returns:
//
//	true  if a >= 0
//	false otherwise
func (a Amount) IsPosOrZero() bool {
	return !a.IsNeg()
}

// IsNegOrZero returns:
//
//	true  if a <= 0
//	false otherwise
func (a Amount) IsNegOrZero() bool {
	return !a.IsPos()
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return NewAmount(a.curr, a.value.Abs())
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return NewAmount(a.curr, a.value.Neg())
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Currency.Equal].
func (a Amount) SameCurr(b Amount) bool {
	return a.curr.Equal(b.curr)
}

// Add returns the exact sum of amounts a and b.
//
// Add returns [ErrCurrencyMismatch] if amounts are denominated in different currencies.
func (a Amount) Add(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, ErrCurrencyMismatch)
	}
	return NewAmount(a.curr, a.value.Add(b.value)), nil
}

// Sub returns the exact difference between amounts a and b.
//
// Sub returns [ErrCurrencyMismatch] if amounts are denominated in different currencies.
func (a Amount) Sub(b Amount) (Amount, error) {
	if !a.SameCurr(b) {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, ErrCurrencyMismatch)
	}
	return NewAmount(a.curr, a.value.Sub(b.value)), nil
}

// Mul returns the exact product of amount a and factor e.
// The currency is preserved.
func (a Amount) Mul(e Decimal) Amount {
	return NewAmount(a.curr, a.value.Mul(e))
}

// Quo returns the exact quotient of amount a and divisor e.
// See also methods [Amount.QuoRound] and [Amount.Split].
//
// Quo returns an error if:
//   - the divisor is 0 ([ErrDivisionByZero]);
//   - the quotient cannot be represented exactly ([ErrInexactDivision]).
//     Monetary division must be explicit about precision loss, use
//     [Amount.QuoRound] in that case.
func (a Amount) Quo(e Decimal) (Amount, error) {
	d, err := a.value.quo(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return NewAmount(a.curr, d), nil
}

// QuoRound returns the quotient of amount a and divisor e rounded with r.
//
// QuoRound returns [ErrDivisionByZero] if the divisor is 0.
func (a Amount) QuoRound(e Decimal, r Rounding) (Amount, error) {
	d, err := a.value.QuoRound(e, r)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v] with %v: %w", a, e, r, err)
	}
	return NewAmount(a.curr, d), nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// Parts have the scale of the amount or of its currency, whichever is larger.
// If the original amount cannot be divided equally among the specified number
// of parts, the remainder is distributed among the first parts of the slice.
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount) Split(parts int) ([]Amount, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("splitting %v into %v parts: number of parts must be positive", a, parts)
	}
	scale := max(a.Scale(), a.curr.Scale())
	total := a.value.Pad(scale)
	quo, err := total.QuoRound(NewDecimal(int64(parts), 0), MustNewRounding(scale, Down))
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a, parts, err)
	}
	rem := total.Sub(quo.Mul(NewDecimal(int64(parts), 0)))
	ulp := NewDecimal(int64(rem.Sign()), scale)

	res := make([]Amount, parts)
	for i := range res {
		part := quo
		if !rem.IsZero() {
			part = part.Add(ulp)
			rem = rem.Sub(ulp)
		}
		res[i] = NewAmount(a.curr, part.Pad(scale))
	}
	return res, nil
}

// RoundToCurr returns an amount rounded to the scale of its currency using [HalfEven].
// See also [DefaultRounding].
func (a Amount) RoundToCurr() Amount {
	return NewAmount(a.curr, a.value.Round(a.curr.Scale(), HalfEven))
}

// With applies the operator to the amount and returns its result.
// Discounts, taxes, roundings and conversions are all expressed as operators.
// See also [Chain].
func (a Amount) With(op Operator) (Amount, error) {
	return op.Apply(a)
}

// Cmp compares amounts numerically and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns [ErrCurrencyMismatch] if amounts are denominated in different currencies.
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, ErrCurrencyMismatch)
	}
	return a.value.Cmp(b.value), nil
}

// IsGreaterThan returns true if a > b.
//
// IsGreaterThan returns [ErrCurrencyMismatch] if amounts are denominated in
// different currencies.
func (a Amount) IsGreaterThan(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// IsLessThan returns true if a < b.
//
// IsLessThan returns [ErrCurrencyMismatch] if amounts are denominated in
// different currencies.
func (a Amount) IsLessThan(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// Equal returns true if amounts have the same currency, and their values
// have equal coefficients and equal scales. See also method [Decimal.Equal].
func (a Amount) Equal(b Amount) bool {
	return a.SameCurr(b) && a.value.Equal(b.value)
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, for example "USD 1.50".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.curr.Code() + " " + a.value.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description                |
//	| ------ | ----------- | -------------------------- |
//	| %s, %v | USD 5.678   | Currency and amount        |
//	| %q     | "USD 5.678" | Quoted currency and amount |
//	| %f     | 5.678       | Amount                     |
//	| %c     | USD         | Currency                   |
//
// The '-' format flag can be used with all verbs.
// Precision is supported for the %f verb and rounds using [HalfEven].
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V':
		writePadded(state, a.String())
	case 'q', 'Q':
		writePadded(state, `"`+a.String()+`"`)
	case 'f', 'F':
		d := a.value
		if p, ok := state.Precision(); ok {
			d = d.Round(p, HalfEven)
		}
		writePadded(state, d.String())
	case 'c', 'C':
		writePadded(state, a.curr.Code())
	default:
		writeBadVerb(state, verb, "money.Amount", a.String())
	}
}

// MarshalJSON implements the [json.Marshaler] interface and encodes
// the amount as {"currency":"USD","amount":"1.50"}.
// Amounts are unmarshaled through a [Registry], see [Registry.ParseAmount].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 32)
	text = append(text, `{"currency":"`...)
	text = append(text, a.curr.Code()...)
	text = append(text, `","amount":"`...)
	text = append(text, a.value.String()...)
	text = append(text, `"}`...)
	return text, nil
}
