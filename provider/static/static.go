// Package static implements a rate provider that quotes from a fixed table.
//
// Besides the rates it was built with, a provider answers identity pairs,
// such as USD/USD, with a factor of 1 and inverse pairs by inverting the
// stored rate.
package static

import (
	"context"
	"fmt"

	"github.com/valuekit/money"
)

// DefaultInverseRounding is used to invert stored rates unless
// [Provider.WithInverseRounding] sets another one.
var DefaultInverseRounding = money.MustNewRounding(money.MaxCurrencyScale, money.HalfEven)

type pair struct {
	base, quote string
}

// Provider is a [money.RateProvider] backed by an immutable rate table.
// It is safe for concurrent use by multiple goroutines.
type Provider struct {
	name  string
	inv   money.Rounding
	rates map[pair]money.ExchangeRate
}

// New returns a provider quoting the given rates under the given name.
// The provider name of every rate is replaced with name.
//
// New returns an error if the name is empty, or if a pair is given twice,
// including once directly and once inverted.
func New(name string, rates ...money.ExchangeRate) (*Provider, error) {
	if name == "" {
		return nil, fmt.Errorf("building static provider: empty name")
	}
	p := &Provider{
		name:  name,
		inv:   DefaultInverseRounding,
		rates: make(map[pair]money.ExchangeRate, len(rates)),
	}
	for _, r := range rates {
		k := pair{r.Base().Code(), r.Quote().Code()}
		if _, ok := p.rates[k]; ok {
			return nil, fmt.Errorf("building static provider %q: duplicate rate %v", name, r)
		}
		if _, ok := p.rates[pair{k.quote, k.base}]; ok && k.base != k.quote {
			return nil, fmt.Errorf("building static provider %q: rate %v is also given inverted", name, r)
		}
		p.rates[k] = r.WithProvider(name)
	}
	return p, nil
}

// MustNew is like [New] but panics if the provider cannot be built.
func MustNew(name string, rates ...money.ExchangeRate) *Provider {
	p, err := New(name, rates...)
	if err != nil {
		panic(fmt.Sprintf("New(%q) failed: %v", name, err))
	}
	return p
}

// WithInverseRounding returns a copy of the provider that inverts stored
// rates with rnd.
func (p *Provider) WithInverseRounding(rnd money.Rounding) *Provider {
	q := *p
	q.inv = rnd
	return &q
}

// Name returns the name of the provider.
func (p *Provider) Name() string {
	return p.name
}

// Len returns the number of stored rates.
func (p *Provider) Len() int {
	return len(p.rates)
}

// ExchangeRate returns the rate of the pair base/quote.
// Lookups are tried in the following order: identity, direct, inverse.
// If none applies, a [*money.RateError] is returned.
func (p *Provider) ExchangeRate(ctx context.Context, base, quote money.Currency) (money.ExchangeRate, error) {
	if err := ctx.Err(); err != nil {
		return money.ExchangeRate{}, p.unavailable(base, quote, err)
	}
	if base.Equal(quote) {
		return money.NewExchRate(base, quote, money.NewDecimal(1, 0), p.name)
	}
	if r, ok := p.rates[pair{base.Code(), quote.Code()}]; ok {
		return r, nil
	}
	if r, ok := p.rates[pair{quote.Code(), base.Code()}]; ok {
		inv, err := r.Inv(p.inv)
		if err != nil {
			return money.ExchangeRate{}, p.unavailable(base, quote, err)
		}
		return inv, nil
	}
	return money.ExchangeRate{}, p.unavailable(base, quote, nil)
}

func (p *Provider) unavailable(base, quote money.Currency, err error) error {
	return &money.RateError{Provider: p.name, Base: base.Code(), Quote: quote.Code(), Err: err}
}
