package money

import (
	"fmt"
)

// ExchangeRate represents a unidirectional exchange rate between two currencies,
// as quoted by a named provider.
// The zero value corresponds to an exchange rate of "XXX/XXX 0", where XXX
// indicates an unknown currency.
// This type is designed to be safe for concurrent use by multiple goroutines.
type ExchangeRate struct {
	base     Currency // currency being exchanged
	quote    Currency // currency being obtained in exchange for the base currency
	value    Decimal  // how many units of quote currency are needed to exchange for 1 unit of the base currency
	provider string   // name of the provider that quoted the rate
}

// NewExchRate returns a new exchange rate between the base and quote currencies.
// The factor is kept exactly as given.
//
// NewExchRate returns an error if:
//   - the factor is not positive;
//   - base and quote are the same currency and the factor is not 1.
func NewExchRate(base, quote Currency, factor Decimal, provider string) (ExchangeRate, error) {
	if !factor.IsPos() {
		return ExchangeRate{}, fmt.Errorf("exchange rate %v/%v %v must be positive", base, quote, factor)
	}
	if base.Equal(quote) && factor.Cmp(NewDecimal(1, 0)) != 0 {
		return ExchangeRate{}, fmt.Errorf("exchange rate %v/%v %v must be equal to 1", base, quote, factor)
	}
	return ExchangeRate{base: base, quote: quote, value: factor, provider: provider}, nil
}

// MustNewExchRate is like [NewExchRate] but panics if the rate cannot be constructed.
func MustNewExchRate(base, quote Currency, factor Decimal, provider string) ExchangeRate {
	r, err := NewExchRate(base, quote, factor, provider)
	if err != nil {
		panic(fmt.Sprintf("NewExchRate(%v, %v, %v, %q) failed: %v", base, quote, factor, provider, err))
	}
	return r
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Decimal returns the conversion factor.
func (r ExchangeRate) Decimal() Decimal {
	return r.value
}

// Provider returns the name of the provider that quoted the rate.
func (r ExchangeRate) Provider() string {
	return r.provider
}

// WithProvider returns a copy of the rate attributed to another provider.
func (r ExchangeRate) WithProvider(name string) ExchangeRate {
	r.provider = name
	return r
}

// CanConv returns true if [ExchangeRate.Conv] can be used to convert the given amount.
func (r ExchangeRate) CanConv(b Amount) bool {
	return b.Curr().Equal(r.base) && r.value.IsPos()
}

// Conv returns the amount converted from the base currency to the quote currency.
// The result is amount * factor and is not rounded; apply a [Rounding]
// afterwards if needed.
//
// Conv returns [ErrCurrencyMismatch] if the currency of the amount is not
// the base currency of the rate.
func (r ExchangeRate) Conv(b Amount) (Amount, error) {
	if !r.CanConv(b) {
		return Amount{}, fmt.Errorf("converting %v with %v: %w", b, r, ErrCurrencyMismatch)
	}
	return NewAmount(r.quote, b.Decimal().Mul(r.value)), nil
}

// Inv returns the inverse of the exchange rate, rounded with rnd.
// An exact inverse, such as 1/4 = 0.25, is returned without rounding
// if its scale does not exceed the scale of rnd.
func (r ExchangeRate) Inv(rnd Rounding) (ExchangeRate, error) {
	one := NewDecimal(1, 0)
	d, err := one.quo(r.value)
	if err != nil || d.Scale() > rnd.Scale() {
		d, err = one.QuoRound(r.value, rnd)
	}
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	return NewExchRate(r.quote, r.base, d, r.provider)
}

// SameCurr returns true if exchange rates are denominated in the same base
// and quote currencies.
func (r ExchangeRate) SameCurr(q ExchangeRate) bool {
	return q.base.Equal(r.base) && q.quote.Equal(r.quote)
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, for example "USD/BRL 5.00".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return r.base.Code() + "/" + r.quote.Code() + " " + r.value.String()
}

// Format implements [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	%s, %v: USD/EUR 1.2345
//	%q:    "USD/EUR 1.2345"
//	%f:     1.2345
//	%c:     USD/EUR
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r ExchangeRate) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V':
		writePadded(state, r.String())
	case 'q', 'Q':
		writePadded(state, `"`+r.String()+`"`)
	case 'f', 'F':
		writePadded(state, r.value.String())
	case 'c', 'C':
		writePadded(state, r.base.Code()+"/"+r.quote.Code())
	default:
		writeBadVerb(state, verb, "money.ExchangeRate", r.String())
	}
}
