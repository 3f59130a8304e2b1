// Command moneydemo walks through the money package: it prices an item in
// the currency of a locale, discounts it, formats and parses it, and converts
// it with rates from the configured providers.
//
// Configuration is read from MONEYDEMO_* environment variables, optionally
// loaded from a .env file named by MONEYDEMO_ENV_FILE.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	_ "modernc.org/sqlite"

	"github.com/valuekit/money"
	"github.com/valuekit/money/provider/cache"
	"github.com/valuekit/money/provider/httprate"
	"github.com/valuekit/money/provider/logging"
	"github.com/valuekit/money/provider/sqlrate"
	"github.com/valuekit/money/provider/static"
)

func main() {
	logger, _ := newLogger(os.Stderr, "info")
	cfg, err := loadConfig(logger, os.Getenv(envPrefix+"_ENV_FILE"))
	if err != nil {
		level.Error(logger).Log("msg", "loading config", "err", err)
		os.Exit(1)
	}
	if logger, err = newLogger(os.Stderr, cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		level.Error(logger).Log("msg", "demo failed", "err", err)
		stop()
		os.Exit(1)
	}
}

// demoRates seed the static provider and, when configured, the database.
var demoRates = [][3]string{
	{"BRL", "USD", "0.2"},
	{"BRL", "EUR", "0.18"},
	{"USD", "EUR", "0.92"},
}

func run(ctx context.Context, cfg config, logger log.Logger, w io.Writer) error {
	reg := money.ISO()

	providers, closeAll, err := buildProviders(ctx, cfg, reg, logger)
	if err != nil {
		return err
	}
	defer closeAll()

	rates, err := money.NewProviderSet(reg, cfg.RateTimeout, providers...)
	if err != nil {
		return err
	}

	home, err := reg.ForLocale(cfg.Locale)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "currency:   %v (%v, %v)\n", home, home.Name(), home.Symbol())

	price := money.NewAmount(home, money.MustParseDecimal("1500.55"))
	fmt.Fprintf(w, "price:      %v\n", price)

	discounted, err := price.With(money.Chain(money.Discount(money.NewDecimal(10, 0)), money.DefaultRounding()))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "discounted: %v\n", discounted)

	f := money.NewFormatter(reg)
	localCfg := money.FormatConfig{Locale: cfg.Locale}
	local, err := f.Format(discounted, localCfg)
	if err != nil {
		return err
	}
	intl, err := f.Format(discounted, money.FormatConfig{Locale: "en-US", Style: money.Code})
	if err != nil {
		return err
	}
	parsed, err := f.Parse(local, localCfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "local:      %v\n", local)
	fmt.Fprintf(w, "intl:       %v\n", intl)
	fmt.Fprintf(w, "parsed:     %v\n", parsed)

	shares, err := discounted.Split(3)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "shares:     %v\n", shares)

	for _, quote := range cfg.Quotes {
		r, err := rates.GetRate(ctx, home.Code(), quote)
		if err != nil {
			return err
		}
		converted, err := discounted.With(money.Chain(money.ConvertWith(r), money.DefaultRounding()))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "in %v:     %v at %v from %v\n", r.Quote(), converted, r, r.Provider())
	}
	return nil
}

// buildProviders returns the configured providers, the first of which is
// the default: the HTTP service, then the database, then the static table.
// Every provider is logged and cached.
func buildProviders(ctx context.Context, cfg config, reg *money.Registry, logger log.Logger) ([]money.RateProvider, func(), error) {
	var (
		providers []money.RateProvider
		closers   []func()
	)
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	seed := make([]money.ExchangeRate, 0, len(demoRates))
	for _, r := range demoRates {
		x, err := reg.ParseExchRate(r[0], r[1], r[2])
		if err != nil {
			return nil, nil, fmt.Errorf("seeding rates: %w", err)
		}
		seed = append(seed, x)
	}

	if cfg.RateURL != "" {
		p, err := httprate.New(httprate.Options{
			URL:     cfg.RateURL,
			Timeout: cfg.RateTimeout,
			Logger:  log.With(logger, "component", "httprate"),
		})
		if err != nil {
			return nil, nil, err
		}
		providers = append(providers, p)
	}

	if cfg.DBPath != "" {
		db, err := sql.Open("sqlite", cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening db: %w", err)
		}
		closers = append(closers, func() { db.Close() })
		p, err := openDB(ctx, db, seed)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		providers = append(providers, p)
	}

	p, err := static.New("STATIC", seed...)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	providers = append(providers, p)

	var store cache.Store
	if cfg.RedisURL != "" {
		s, err := cache.NewRedisStoreFromURL(cfg.RedisURL, "")
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, func() { s.Close() })
		store = s
	}

	for i, p := range providers {
		p = logging.New(log.With(logger, "component", "provider"), p)
		providers[i] = cache.New(p, cache.Options{
			TTL:    cfg.CacheTTL,
			Size:   cfg.CacheSize,
			Store:  store,
			Logger: log.With(logger, "component", "cache"),
		})
	}
	return providers, closeAll, nil
}

// openDB prepares the rate table and stores the seed rates in it.
func openDB(ctx context.Context, db *sql.DB, seed []money.ExchangeRate) (*sqlrate.Provider, error) {
	if err := sqlrate.Migrate(ctx, db); err != nil {
		return nil, err
	}
	p, err := sqlrate.New(db, "DB")
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for _, r := range seed {
		if err := p.Store(ctx, r, now); err != nil {
			return nil, err
		}
	}
	return p, nil
}
