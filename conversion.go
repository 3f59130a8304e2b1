package money

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"
)

// RateProvider supplies exchange rates between currency pairs.
// Implementations must be safe for concurrent use and should honor the
// cancellation of ctx, since a lookup may perform network or disk I/O.
// Caching and retries, if any, belong to the implementation.
//
// Provider implementations live outside this package, see the
// provider/... packages of this module.
type RateProvider interface {
	// Name returns the name under which the provider is selected,
	// for example "ECB" or "IMF".
	Name() string
	// ExchangeRate returns the rate converting base into quote.
	ExchangeRate(ctx context.Context, base, quote Currency) (ExchangeRate, error)
}

// LookupFunc looks up the exchange rate converting base into quote.
type LookupFunc func(ctx context.Context, base, quote Currency) (ExchangeRate, error)

type funcProvider struct {
	name   string
	lookup LookupFunc
}

func (p funcProvider) Name() string { return p.name }

func (p funcProvider) ExchangeRate(ctx context.Context, base, quote Currency) (ExchangeRate, error) {
	return p.lookup(ctx, base, quote)
}

// NewRateProvider returns a named provider backed by a lookup function.
func NewRateProvider(name string, lookup LookupFunc) RateProvider {
	return funcProvider{name: name, lookup: lookup}
}

// ProviderSet holds named rate providers and resolves currency codes through
// a registry. The first provider of the set is the default one.
// Selection by name is a plain keyed lookup: rates of different providers
// are never merged.
//
// Every lookup is bounded by the timeout of the set. Timeouts and lookup
// misses are both reported as a [*RateError] matching [ErrRateUnavailable].
//
// ProviderSet is immutable after construction and safe for concurrent use.
type ProviderSet struct {
	reg       *Registry
	timeout   time.Duration
	names     []string
	providers map[string]RateProvider
}

// NewProviderSet returns a set of the given providers.
// A zero timeout disables the deadline, leaving it to the caller's context.
//
// NewProviderSet returns an error if no provider is given or two providers
// share a name.
func NewProviderSet(reg *Registry, timeout time.Duration, providers ...RateProvider) (*ProviderSet, error) {
	if reg == nil {
		return nil, fmt.Errorf("building provider set: nil registry")
	}
	if len(providers) == 0 {
		return nil, fmt.Errorf("building provider set: no providers")
	}
	s := &ProviderSet{
		reg:       reg,
		timeout:   timeout,
		providers: make(map[string]RateProvider, len(providers)),
	}
	for _, p := range providers {
		name := p.Name()
		if _, ok := s.providers[name]; ok {
			return nil, fmt.Errorf("building provider set: duplicate provider %q", name)
		}
		s.providers[name] = p
		s.names = append(s.names, name)
	}
	return s, nil
}

// Names returns the provider names; the first one is the default provider.
func (s *ProviderSet) Names() []string {
	return slices.Clone(s.names)
}

// Default returns the default provider.
func (s *ProviderSet) Default() RateProvider {
	return s.providers[s.names[0]]
}

// errNotRegistered is the cause of a [*RateError] naming an unknown provider.
var errNotRegistered = errors.New("provider not registered")

// Provider returns the provider registered under the given name.
// An unknown name is reported as a [*RateError] with no currency pair.
func (s *ProviderSet) Provider(name string) (RateProvider, error) {
	p, ok := s.providers[name]
	if !ok {
		return nil, &RateError{Provider: name, Err: errNotRegistered}
	}
	return p, nil
}

// GetRate returns the rate converting base into quote quoted by the default provider.
// See also method [ProviderSet.GetRateFrom].
func (s *ProviderSet) GetRate(ctx context.Context, base, quote string) (ExchangeRate, error) {
	return s.GetRateFrom(ctx, s.names[0], base, quote)
}

// GetRateFrom returns the rate converting base into quote quoted by the named provider.
//
// GetRateFrom returns an error if:
//   - a currency code is not registered ([ErrUnknownCurrency]);
//   - the provider is not registered, has no quote for the pair, fails,
//     or does not answer within the timeout ([ErrRateUnavailable]).
func (s *ProviderSet) GetRateFrom(ctx context.Context, name, base, quote string) (ExchangeRate, error) {
	b, err := s.reg.Lookup(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("base currency parsing: %w", err)
	}
	q, err := s.reg.Lookup(quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("quote currency parsing: %w", err)
	}
	p, ok := s.providers[name]
	if !ok {
		return ExchangeRate{}, &RateError{Provider: name, Base: b.Code(), Quote: q.Code(), Err: errNotRegistered}
	}
	return s.lookup(ctx, p, b, q)
}

type lookupResult struct {
	rate ExchangeRate
	err  error
}

func (s *ProviderSet) lookup(ctx context.Context, p RateProvider, base, quote Currency) (ExchangeRate, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	// The provider runs in its own goroutine so that the deadline holds
	// even if it ignores ctx.
	ch := make(chan lookupResult, 1)
	go func() {
		r, err := p.ExchangeRate(ctx, base, quote)
		ch <- lookupResult{rate: r, err: err}
	}()

	var res lookupResult
	select {
	case res = <-ch:
	case <-ctx.Done():
		res.err = ctx.Err()
	}

	fail := func(err error) (ExchangeRate, error) {
		return ExchangeRate{}, &RateError{Provider: p.Name(), Base: base.Code(), Quote: quote.Code(), Err: err}
	}
	if res.err != nil {
		var re *RateError
		if errors.As(res.err, &re) {
			return ExchangeRate{}, res.err
		}
		return fail(res.err)
	}
	r := res.rate
	if !r.Base().Equal(base) || !r.Quote().Equal(quote) {
		return fail(fmt.Errorf("provider answered with %v", r))
	}
	if r.Provider() == "" {
		r = r.WithProvider(p.Name())
	}
	return r, nil
}

// Convert converts the amount into the quote currency using the rate of the
// default provider. The result is not rounded.
func (s *ProviderSet) Convert(ctx context.Context, a Amount, quote string) (Amount, error) {
	r, err := s.GetRate(ctx, a.Curr().Code(), quote)
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v to %v: %w", a, quote, err)
	}
	return r.Conv(a)
}

// Conversion returns an operator converting amounts into the quote currency
// with rates of the default provider, looked up under ctx.
// Amounts already denominated in the quote currency are returned unchanged.
func (s *ProviderSet) Conversion(ctx context.Context, quote string) Operator {
	return OperatorFunc(func(a Amount) (Amount, error) {
		q, err := s.reg.Lookup(quote)
		if err != nil {
			return Amount{}, fmt.Errorf("quote currency parsing: %w", err)
		}
		if a.Curr().Equal(q) {
			return a, nil
		}
		return s.Convert(ctx, a, quote)
	})
}
