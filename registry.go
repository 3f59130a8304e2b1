package money

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Registry maps currency codes to currencies.
// A registry is immutable after construction and is safe for concurrent use
// by multiple goroutines.
//
// The engine never consults a registry implicitly: constructors that resolve
// codes are methods of Registry, and types that need to resolve codes, such
// as [Formatter] and [ProviderSet], receive one when they are built.
type Registry struct {
	currs  []Currency            // ordered by code
	byCode map[string]Currency   // alphabetic and numeric codes
	bySym  map[string][]Currency // display symbols
}

// NewRegistry returns a registry holding the given currencies.
// NewRegistry returns an error if a currency is the zero value or
// if two currencies share an alphabetic or numeric code.
func NewRegistry(currs ...Currency) (*Registry, error) {
	r := &Registry{
		currs:  slices.Clone(currs),
		byCode: make(map[string]Currency, 2*len(currs)),
		bySym:  make(map[string][]Currency),
	}
	for _, c := range currs {
		if c.code == "" {
			return nil, fmt.Errorf("registering %T: zero currency", c)
		}
		if _, ok := r.byCode[c.code]; ok {
			return nil, fmt.Errorf("registering %v: duplicate code", c)
		}
		r.byCode[c.code] = c
		if c.num != "" {
			if d, ok := r.byCode[c.num]; ok {
				return nil, fmt.Errorf("registering %v: numeric code %v is used by %v", c, c.num, d)
			}
			r.byCode[c.num] = c
		}
		sym := c.Symbol()
		r.bySym[sym] = append(r.bySym[sym], c)
	}
	slices.SortFunc(r.currs, func(a, b Currency) int {
		return strings.Compare(a.code, b.code)
	})
	return r, nil
}

var iso = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(isoCurrencies[:]...)
	if err != nil {
		panic(fmt.Sprintf("building ISO 4217 registry: %v", err))
	}
	return r
})

// ISO returns the registry of currencies defined by [ISO 4217].
// The registry is built on first use and shared afterwards.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
func ISO() *Registry {
	return iso()
}

// Lookup returns the currency with the given code.
// The code must be in one of the following formats:
//
//	USD
//	usd
//	840
//
// Lookup returns [ErrUnknownCurrency] if the code is not registered.
func (r *Registry) Lookup(code string) (Currency, error) {
	c, ok := r.byCode[strings.ToUpper(code)]
	if !ok {
		return Currency{}, fmt.Errorf("looking up %q: %w", code, ErrUnknownCurrency)
	}
	return c, nil
}

// MustLookup is like [Registry.Lookup] but panics if the code is not registered.
func (r *Registry) MustLookup(code string) Currency {
	c, err := r.Lookup(code)
	if err != nil {
		panic(fmt.Sprintf("Lookup(%q) failed: %v", code, err))
	}
	return c
}

// All returns an iterator over all registered currencies ordered by code.
// The iterator can be used any number of times.
func (r *Registry) All() iter.Seq[Currency] {
	return func(yield func(Currency) bool) {
		for _, c := range r.currs {
			if !yield(c) {
				return
			}
		}
	}
}

// Len returns the number of registered currencies.
func (r *Registry) Len() int {
	return len(r.currs)
}

// BySymbol returns the currencies displayed with the given symbol,
// ordered by code. Several currencies may share a symbol, for example "$".
func (r *Registry) BySymbol(sym string) []Currency {
	currs := slices.Clone(r.bySym[sym])
	slices.SortFunc(currs, func(a, b Currency) int {
		return strings.Compare(a.code, b.code)
	})
	return currs
}

// ForLocale returns the currency used in the region of a [BCP 47] language tag,
// for example "pt-BR" or "fr_FR".
//
// ForLocale returns [ErrUnresolvedLocale] if:
//   - the tag is malformed;
//   - the tag does not specify a region explicitly, for example "fr";
//   - the region has no currency, or its currency is not registered.
//
// [BCP 47]: https://www.rfc-editor.org/info/bcp47
func (r *Registry) ForLocale(tag string) (Currency, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return Currency{}, fmt.Errorf("resolving locale %q: %w: %w", tag, ErrUnresolvedLocale, err)
	}
	region, conf := t.Region()
	if conf != language.Exact {
		return Currency{}, fmt.Errorf("resolving locale %q: %w: no region", tag, ErrUnresolvedLocale)
	}
	unit, ok := currency.FromRegion(region)
	if !ok {
		return Currency{}, fmt.Errorf("resolving locale %q: %w: region %v has no currency", tag, ErrUnresolvedLocale, region)
	}
	c, ok := r.byCode[unit.String()]
	if !ok {
		return Currency{}, fmt.Errorf("resolving locale %q: %w: currency %v is not registered", tag, ErrUnresolvedLocale, unit)
	}
	return c, nil
}

// NewAmount returns an amount of the given value in the currency with the given code.
// The scale of the value is preserved.
func (r *Registry) NewAmount(code string, value Decimal) (Amount, error) {
	c, err := r.Lookup(code)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	return NewAmount(c, value), nil
}

// ParseAmount converts currency and decimal strings to an amount.
// The scale of the decimal string is preserved, so "100" and "100.00"
// produce amounts with scales 0 and 2.
// See also methods [Registry.Lookup] and [ParseDecimal].
func (r *Registry) ParseAmount(code, amount string) (Amount, error) {
	c, err := r.Lookup(code)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := ParseDecimal(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return NewAmount(c, d), nil
}

// MustParseAmount is like [Registry.ParseAmount] but panics if any of the strings
// cannot be parsed.
func (r *Registry) MustParseAmount(code, amount string) Amount {
	a, err := r.ParseAmount(code, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", code, amount, err))
	}
	return a
}

// NewAmountFromMinorUnits converts an integer, representing minor units of
// currency (e.g. cents, pennies, fens), to an amount with the scale of the currency.
// See also method [Amount.MinorUnits].
func (r *Registry) NewAmountFromMinorUnits(code string, units int64) (Amount, error) {
	c, err := r.Lookup(code)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	return NewAmount(c, NewDecimal(units, c.Scale())), nil
}

// ParseExchRate converts currency and decimal strings to an exchange rate
// without a provider name.
// See also constructor [NewExchRate].
func (r *Registry) ParseExchRate(base, quote, rate string) (ExchangeRate, error) {
	b, err := r.Lookup(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("base currency parsing: %w", err)
	}
	q, err := r.Lookup(quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("quote currency parsing: %w", err)
	}
	d, err := ParseDecimal(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("rate parsing: %w", err)
	}
	return NewExchRate(b, q, d, "")
}

// MustParseExchRate is like [Registry.ParseExchRate] but panics if any of
// the strings cannot be parsed.
func (r *Registry) MustParseExchRate(base, quote, rate string) ExchangeRate {
	x, err := r.ParseExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %q, %q) failed: %v", base, quote, rate, err))
	}
	return x
}
