// Package cache implements a caching decorator for rate providers.
//
// Rates are kept in an in-process LRU with a time to live. Concurrent misses
// of the same pair are coalesced into a single call to the decorated provider.
// An optional second-level [Store], such as [RedisStore], shares rates between
// processes.
package cache

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/valuekit/money"
)

// Defaults used when the corresponding [Options] field is zero.
const (
	DefaultTTL  = 15 * time.Minute
	DefaultSize = 1024
)

// Entry is a cached rate as kept by a [Store].
type Entry struct {
	Provider string        `json:"provider"`
	Rate     money.Decimal `json:"rate"`
}

// Store is a second-level cache shared between processes.
// Keys have the form "NAME:BASE/QUOTE", where NAME is the provider name.
// Get reports a miss with ok set to false and a nil error.
type Store interface {
	Get(ctx context.Context, key string) (e Entry, ok bool, err error)
	Set(ctx context.Context, key string, e Entry, ttl time.Duration) error
}

// Options configure a [Provider].
type Options struct {
	TTL    time.Duration // time to live of a cached rate
	Size   int           // maximum number of rates kept in process
	Store  Store         // optional second-level cache
	Logger log.Logger    // no logging if nil
}

// Provider is a [money.RateProvider] caching the rates of another provider.
// Errors are never cached.
// It is safe for concurrent use by multiple goroutines.
type Provider struct {
	next   money.RateProvider
	ttl    time.Duration
	lru    *expirable.LRU[string, money.ExchangeRate]
	group  singleflight.Group
	store  Store
	logger log.Logger
}

// New returns a provider caching the rates of next.
// The cache has the name of next.
func New(next money.RateProvider, opts Options) *Provider {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Size <= 0 {
		opts.Size = DefaultSize
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNopLogger()
	}
	return &Provider{
		next:   next,
		ttl:    opts.TTL,
		lru:    expirable.NewLRU[string, money.ExchangeRate](opts.Size, nil, opts.TTL),
		store:  opts.Store,
		logger: log.With(opts.Logger, "cache", next.Name()),
	}
}

// Name returns the name of the decorated provider.
func (p *Provider) Name() string {
	return p.next.Name()
}

// Len returns the number of rates cached in process.
func (p *Provider) Len() int {
	return p.lru.Len()
}

// Purge drops all rates cached in process.
func (p *Provider) Purge() {
	p.lru.Purge()
}

func key(base, quote money.Currency) string {
	return base.Code() + "/" + quote.Code()
}

// storeKey qualifies a pair with the provider name, so that providers
// sharing a store never see each other's rates.
func (p *Provider) storeKey(k string) string {
	return p.next.Name() + ":" + k
}

// ExchangeRate returns the cached rate of base/quote, consulting the store
// and then the decorated provider on a miss.
func (p *Provider) ExchangeRate(ctx context.Context, base, quote money.Currency) (money.ExchangeRate, error) {
	k := key(base, quote)
	if r, ok := p.lru.Get(k); ok {
		return r, nil
	}
	v, err, shared := p.group.Do(k, func() (any, error) {
		// A flight that ended after our miss may have filled the cache.
		if r, ok := p.lru.Get(k); ok {
			return r, nil
		}
		if r, ok := p.fromStore(ctx, k, base, quote); ok {
			p.lru.Add(k, r)
			return r, nil
		}
		r, err := p.next.ExchangeRate(ctx, base, quote)
		if err != nil {
			return nil, err
		}
		p.lru.Add(k, r)
		p.toStore(ctx, k, r)
		return r, nil
	})
	if err != nil {
		return money.ExchangeRate{}, err
	}
	if shared {
		level.Debug(p.logger).Log("msg", "shared lookup", "pair", k)
	}
	return v.(money.ExchangeRate), nil
}

func (p *Provider) fromStore(ctx context.Context, k string, base, quote money.Currency) (money.ExchangeRate, bool) {
	if p.store == nil {
		return money.ExchangeRate{}, false
	}
	e, ok, err := p.store.Get(ctx, p.storeKey(k))
	if err != nil {
		level.Warn(p.logger).Log("msg", "store get failed", "pair", k, "err", err)
		return money.ExchangeRate{}, false
	}
	if !ok {
		return money.ExchangeRate{}, false
	}
	r, err := money.NewExchRate(base, quote, e.Rate, e.Provider)
	if err != nil {
		level.Warn(p.logger).Log("msg", "invalid stored rate", "pair", k, "err", err)
		return money.ExchangeRate{}, false
	}
	return r, true
}

func (p *Provider) toStore(ctx context.Context, k string, r money.ExchangeRate) {
	if p.store == nil {
		return
	}
	e := Entry{Provider: r.Provider(), Rate: r.Decimal()}
	if err := p.store.Set(ctx, p.storeKey(k), e, p.ttl); err != nil {
		level.Warn(p.logger).Log("msg", "store set failed", "pair", k, "err", err)
	}
}
