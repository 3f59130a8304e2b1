// Package sqlrate implements a rate provider reading from an SQL table.
//
// The table holds one row per published rate:
//
//	CREATE TABLE exchange_rates (
//		base     TEXT NOT NULL,
//		quote    TEXT NOT NULL,
//		rate     TEXT NOT NULL,
//		as_of    DATETIME NOT NULL,
//		provider TEXT NOT NULL DEFAULT ''
//	)
//
// Rates are stored as decimal strings and scanned into [money.Decimal],
// so their scale survives the round trip. The most recent row of a pair wins.
package sqlrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/valuekit/money"
)

const (
	schema = `CREATE TABLE IF NOT EXISTS exchange_rates (
		base     TEXT NOT NULL,
		quote    TEXT NOT NULL,
		rate     TEXT NOT NULL,
		as_of    DATETIME NOT NULL,
		provider TEXT NOT NULL DEFAULT ''
	)`
	index = `CREATE INDEX IF NOT EXISTS idx_exchange_rates_pair ON exchange_rates(base, quote, as_of)`

	selectRate = `SELECT rate, provider FROM exchange_rates WHERE base = ? AND quote = ? ORDER BY as_of DESC LIMIT 1`
	insertRate = `INSERT INTO exchange_rates (base, quote, rate, as_of, provider) VALUES (?, ?, ?, ?, ?)`
)

// Migrate creates the exchange_rates table and its index if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range []string{schema, index} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrating exchange_rates: %w", err)
		}
	}
	return nil
}

// Provider is a [money.RateProvider] reading the exchange_rates table.
// It is safe for concurrent use by multiple goroutines.
type Provider struct {
	db   *sql.DB
	name string
}

// New returns a provider reading rates from db under the given name.
func New(db *sql.DB, name string) (*Provider, error) {
	if db == nil {
		return nil, fmt.Errorf("building sql provider: nil db")
	}
	if name == "" {
		return nil, fmt.Errorf("building sql provider: empty name")
	}
	return &Provider{db: db, name: name}, nil
}

// Name returns the name of the provider.
func (p *Provider) Name() string {
	return p.name
}

// ExchangeRate returns the most recent stored rate of the pair base/quote.
// The provider name of the rate is the one stored with the row, or the name
// of the provider if the row has none.
// A missing row is reported as [*money.RateError].
func (p *Provider) ExchangeRate(ctx context.Context, base, quote money.Currency) (money.ExchangeRate, error) {
	var (
		rate   money.Decimal
		source string
	)
	err := p.db.QueryRowContext(ctx, selectRate, base.Code(), quote.Code()).Scan(&rate, &source)
	if errors.Is(err, sql.ErrNoRows) {
		return money.ExchangeRate{}, p.unavailable(base, quote, nil)
	}
	if err != nil {
		return money.ExchangeRate{}, p.unavailable(base, quote, fmt.Errorf("querying rate: %w", err))
	}
	if source == "" {
		source = p.name
	}
	r, err := money.NewExchRate(base, quote, rate, source)
	if err != nil {
		return money.ExchangeRate{}, p.unavailable(base, quote, err)
	}
	return r, nil
}

// Store inserts the rate as of the given time.
func (p *Provider) Store(ctx context.Context, r money.ExchangeRate, asOf time.Time) error {
	_, err := p.db.ExecContext(ctx, insertRate,
		r.Base().Code(), r.Quote().Code(), r.Decimal(), asOf.UTC().Format(time.RFC3339), r.Provider(),
	)
	if err != nil {
		return fmt.Errorf("storing %v: %w", r, err)
	}
	return nil
}

func (p *Provider) unavailable(base, quote money.Currency, err error) error {
	return &money.RateError{Provider: p.name, Base: base.Code(), Quote: quote.Code(), Err: err}
}
