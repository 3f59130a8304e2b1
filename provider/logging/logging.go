// Package logging decorates rate providers with structured logging.
package logging

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/valuekit/money"
)

type loggingProvider struct {
	logger log.Logger
	next   money.RateProvider
}

// New returns a provider logging every lookup of next: the pair, the rate,
// the time it took and the error, if any.
// Successful lookups are logged at debug level and failures at error level.
func New(logger log.Logger, next money.RateProvider) money.RateProvider {
	return &loggingProvider{
		logger: log.With(logger, "provider", next.Name()),
		next:   next,
	}
}

func (p *loggingProvider) Name() string {
	return p.next.Name()
}

func (p *loggingProvider) ExchangeRate(ctx context.Context, base, quote money.Currency) (r money.ExchangeRate, err error) {
	defer func(begin time.Time) {
		l := level.Debug(p.logger)
		if err != nil {
			l = level.Error(p.logger)
		}
		l.Log(
			"method", "exchange_rate",
			"base", base,
			"quote", quote,
			"rate", r.Decimal(),
			"source", r.Provider(),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ExchangeRate(ctx, base, quote)
}
