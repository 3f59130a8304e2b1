// Package httprate implements a rate provider backed by an HTTP rate service
// speaking the exchangerate-api.com v6 format.
//
// For a base currency the provider requests
//
//	GET {URL}/latest/{BASE}
//
// and expects a body such as
//
//	{"result":"success","base_code":"USD","conversion_rates":{"BRL":5.0123,"EUR":0.92}}
//
// Rates are decoded straight into [money.Decimal], so no precision is lost to
// binary floating point.
package httprate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/valuekit/money"
)

// DefaultName is the provider name used when [Options.Name] is empty.
const DefaultName = "exchangerate-api"

// DefaultTimeout bounds a single HTTP request when [Options.Timeout] is zero.
const DefaultTimeout = 10 * time.Second

// ErrBadResponse is returned when the service answers with something other
// than a successful rate table.
var ErrBadResponse = errors.New("bad response")

// Options configure a [Provider].
type Options struct {
	Name    string        // provider name, DefaultName if empty
	URL     string        // service base URL, such as https://v6.exchangerate-api.com/v6/KEY
	Timeout time.Duration // HTTP client timeout, DefaultTimeout if zero
	Client  *http.Client  // overrides Timeout if set
	Logger  log.Logger    // no logging if nil
}

// Provider is a [money.RateProvider] querying an HTTP rate service.
// It is safe for concurrent use by multiple goroutines.
type Provider struct {
	name   string
	url    string
	client *http.Client
	logger log.Logger
}

// response is the subset of the service response used by the provider.
type response struct {
	Result          string                   `json:"result"`
	ErrorType       string                   `json:"error-type,omitempty"`
	BaseCode        string                   `json:"base_code"`
	ConversionRates map[string]money.Decimal `json:"conversion_rates"`
}

// New returns a provider for the service at opts.URL.
func New(opts Options) (*Provider, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("building http provider: empty url")
	}
	if _, err := url.Parse(opts.URL); err != nil {
		return nil, fmt.Errorf("building http provider: %w", err)
	}
	p := &Provider{
		name:   opts.Name,
		url:    strings.TrimSuffix(opts.URL, "/"),
		client: opts.Client,
		logger: opts.Logger,
	}
	if p.name == "" {
		p.name = DefaultName
	}
	if p.client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		p.client = &http.Client{Timeout: timeout}
	}
	if p.logger == nil {
		p.logger = log.NewNopLogger()
	}
	p.logger = log.With(p.logger, "provider", p.name)
	return p, nil
}

// Name returns the name of the provider.
func (p *Provider) Name() string {
	return p.name
}

// ExchangeRate fetches the rate table of base and returns the rate of quote.
// Failures are returned as [*money.RateError].
func (p *Provider) ExchangeRate(ctx context.Context, base, quote money.Currency) (money.ExchangeRate, error) {
	rates, err := p.fetch(ctx, base)
	if err != nil {
		return money.ExchangeRate{}, p.unavailable(base, quote, err)
	}
	d, ok := rates[quote.Code()]
	if !ok {
		return money.ExchangeRate{}, p.unavailable(base, quote, fmt.Errorf("%w: no rate for %v", ErrBadResponse, quote))
	}
	r, err := money.NewExchRate(base, quote, d, p.name)
	if err != nil {
		return money.ExchangeRate{}, p.unavailable(base, quote, err)
	}
	return r, nil
}

// fetch loads the rate table of base.
func (p *Provider) fetch(ctx context.Context, base money.Currency) (map[string]money.Decimal, error) {
	u := p.url + "/latest/" + url.PathEscape(base.Code())
	level.Debug(p.logger).Log("msg", "fetching rates", "base", base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		level.Warn(p.logger).Log("msg", "unexpected status", "base", base, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d: %s", ErrBadResponse, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	if r.Result != "" && r.Result != "success" {
		return nil, fmt.Errorf("%w: result %q: %v", ErrBadResponse, r.Result, r.ErrorType)
	}
	if !strings.EqualFold(r.BaseCode, base.Code()) {
		return nil, fmt.Errorf("%w: base %q, want %v", ErrBadResponse, r.BaseCode, base)
	}
	level.Debug(p.logger).Log("msg", "rates fetched", "base", base, "count", len(r.ConversionRates))
	return r.ConversionRates, nil
}

func (p *Provider) unavailable(base, quote money.Currency, err error) error {
	return &money.RateError{Provider: p.name, Base: base.Code(), Quote: quote.Code(), Err: err}
}
