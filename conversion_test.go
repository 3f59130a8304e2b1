package money

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"
)

// tableProvider quotes rates from a map keyed by "BASE/QUOTE".
func tableProvider(name string, rates map[string]string) RateProvider {
	return NewRateProvider(name, func(_ context.Context, base, quote Currency) (ExchangeRate, error) {
		s, ok := rates[base.Code()+"/"+quote.Code()]
		if !ok {
			return ExchangeRate{}, errors.New("no quote")
		}
		return NewExchRate(base, quote, MustParseDecimal(s), "")
	})
}

func newTestSet(t *testing.T, timeout time.Duration, providers ...RateProvider) *ProviderSet {
	t.Helper()
	s, err := NewProviderSet(ISO(), timeout, providers...)
	if err != nil {
		t.Fatalf("NewProviderSet() failed: %v", err)
	}
	return s
}

func TestNewProviderSet(t *testing.T) {
	ecb := tableProvider("ECB", nil)
	imf := tableProvider("IMF", nil)

	t.Run("success", func(t *testing.T) {
		s := newTestSet(t, time.Second, ecb, imf)
		if got, want := s.Names(), []string{"ECB", "IMF"}; !slices.Equal(got, want) {
			t.Errorf("Names() = %v, want %v", got, want)
		}
		if got := s.Default().Name(); got != "ECB" {
			t.Errorf("Default().Name() = %q, want \"ECB\"", got)
		}
		names := s.Names()
		names[0] = "changed"
		if s.Names()[0] != "ECB" {
			t.Errorf("Names() shares its slice with the set")
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			reg       *Registry
			providers []RateProvider
		}{
			"nil registry": {nil, []RateProvider{ecb}},
			"no providers": {ISO(), nil},
			"duplicate":    {ISO(), []RateProvider{ecb, imf, tableProvider("ECB", nil)}},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewProviderSet(tt.reg, time.Second, tt.providers...)
				if err == nil {
					t.Errorf("NewProviderSet() did not fail")
				}
			})
		}
	})
}

func TestProviderSet_GetRate(t *testing.T) {
	ecb := tableProvider("ECB", map[string]string{"USD/BRL": "5.00", "EUR/USD": "1.08"})
	imf := tableProvider("IMF", map[string]string{"USD/BRL": "5.02"})
	s := newTestSet(t, time.Second, ecb, imf)
	ctx := context.Background()

	t.Run("default", func(t *testing.T) {
		got, err := s.GetRate(ctx, "USD", "BRL")
		if err != nil {
			t.Fatalf("GetRate(USD, BRL) failed: %v", err)
		}
		if got.String() != "USD/BRL 5.00" || got.Provider() != "ECB" {
			t.Errorf("GetRate(USD, BRL) = %v from %q, want USD/BRL 5.00 from \"ECB\"", got, got.Provider())
		}
	})

	t.Run("named", func(t *testing.T) {
		got, err := s.GetRateFrom(ctx, "IMF", "usd", "brl")
		if err != nil {
			t.Fatalf("GetRateFrom(IMF, usd, brl) failed: %v", err)
		}
		if got.String() != "USD/BRL 5.02" || got.Provider() != "IMF" {
			t.Errorf("GetRateFrom(IMF, usd, brl) = %v from %q, want USD/BRL 5.02 from \"IMF\"", got, got.Provider())
		}
	})

	t.Run("not merged", func(t *testing.T) {
		_, err := s.GetRateFrom(ctx, "IMF", "EUR", "USD")
		if !errors.Is(err, ErrRateUnavailable) {
			t.Errorf("GetRateFrom(IMF, EUR, USD) error = %v, want %v", err, ErrRateUnavailable)
		}
	})

	t.Run("miss", func(t *testing.T) {
		_, err := s.GetRate(ctx, "USD", "JPY")
		if !errors.Is(err, ErrRateUnavailable) {
			t.Fatalf("GetRate(USD, JPY) error = %v, want %v", err, ErrRateUnavailable)
		}
		var rerr *RateError
		if !errors.As(err, &rerr) {
			t.Fatalf("GetRate(USD, JPY) error = %T, want *RateError", err)
		}
		if rerr.Provider != "ECB" || rerr.Base != "USD" || rerr.Quote != "JPY" {
			t.Errorf("GetRate(USD, JPY) error = %+v", rerr)
		}
	})

	t.Run("unknown currency", func(t *testing.T) {
		_, err := s.GetRate(ctx, "USD", "XXX_BOGUS")
		if !errors.Is(err, ErrUnknownCurrency) {
			t.Errorf("GetRate(USD, XXX_BOGUS) error = %v, want %v", err, ErrUnknownCurrency)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := s.GetRateFrom(ctx, "BIS", "USD", "BRL")
		var rerr *RateError
		if !errors.As(err, &rerr) {
			t.Fatalf("GetRateFrom(BIS, USD, BRL) error = %T, want *RateError", err)
		}
		if rerr.Provider != "BIS" || rerr.Base != "USD" || rerr.Quote != "BRL" {
			t.Errorf("GetRateFrom(BIS, USD, BRL) error = %+v", rerr)
		}
		if want := `provider "BIS": rate USD/BRL: rate unavailable: provider not registered`; err.Error() != want {
			t.Errorf("GetRateFrom(BIS, USD, BRL) error = %q, want %q", err, want)
		}

		_, err = s.Provider("BIS")
		if !errors.As(err, &rerr) || !errors.Is(err, ErrRateUnavailable) {
			t.Fatalf("Provider(\"BIS\") error = %v, want *RateError", err)
		}
		if want := `provider "BIS": rate unavailable: provider not registered`; err.Error() != want {
			t.Errorf("Provider(\"BIS\") error = %q, want %q", err, want)
		}
	})
}

func TestProviderSet_Timeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	stuck := NewRateProvider("STUCK", func(context.Context, Currency, Currency) (ExchangeRate, error) {
		<-release
		return ExchangeRate{}, nil
	})
	s := newTestSet(t, 10*time.Millisecond, stuck)

	start := time.Now()
	_, err := s.GetRate(context.Background(), "USD", "BRL")
	if !errors.Is(err, ErrRateUnavailable) {
		t.Errorf("GetRate() error = %v, want %v", err, ErrRateUnavailable)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("GetRate() error = %v, want %v", err, context.DeadlineExceeded)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("GetRate() took %v, want about 10ms", elapsed)
	}
}

func TestProviderSet_Cancel(t *testing.T) {
	p := NewRateProvider("CTX", func(ctx context.Context, _, _ Currency) (ExchangeRate, error) {
		<-ctx.Done()
		return ExchangeRate{}, ctx.Err()
	})
	s := newTestSet(t, 0, p)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.GetRate(ctx, "USD", "BRL")
	if !errors.Is(err, context.Canceled) || !errors.Is(err, ErrRateUnavailable) {
		t.Errorf("GetRate() error = %v, want %v and %v", err, context.Canceled, ErrRateUnavailable)
	}
}

func TestProviderSet_ProviderErrors(t *testing.T) {
	t.Run("rate error", func(t *testing.T) {
		own := &RateError{Provider: "UPSTREAM", Base: "USD", Quote: "BRL"}
		p := NewRateProvider("PROXY", func(context.Context, Currency, Currency) (ExchangeRate, error) {
			return ExchangeRate{}, own
		})
		_, err := newTestSet(t, time.Second, p).GetRate(context.Background(), "USD", "BRL")
		var rerr *RateError
		if !errors.As(err, &rerr) || rerr != own {
			t.Errorf("GetRate() error = %v, want %v", err, own)
		}
	})

	t.Run("wrong pair", func(t *testing.T) {
		p := NewRateProvider("WRONG", func(context.Context, Currency, Currency) (ExchangeRate, error) {
			return ISO().ParseExchRate("EUR", "BRL", "6")
		})
		_, err := newTestSet(t, time.Second, p).GetRate(context.Background(), "USD", "BRL")
		if !errors.Is(err, ErrRateUnavailable) {
			t.Errorf("GetRate() error = %v, want %v", err, ErrRateUnavailable)
		}
	})

	t.Run("keeps provider name", func(t *testing.T) {
		p := NewRateProvider("CACHE", func(_ context.Context, base, quote Currency) (ExchangeRate, error) {
			return NewExchRate(base, quote, NewDecimal(5, 0), "ECB")
		})
		got, err := newTestSet(t, time.Second, p).GetRate(context.Background(), "USD", "BRL")
		if err != nil {
			t.Fatalf("GetRate() failed: %v", err)
		}
		if got.Provider() != "ECB" {
			t.Errorf("GetRate().Provider() = %q, want \"ECB\"", got.Provider())
		}
	})
}

func TestProviderSet_Convert(t *testing.T) {
	s := newTestSet(t, time.Second, tableProvider("ECB", map[string]string{"USD/BRL": "5.00"}))
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		a := ISO().MustParseAmount("USD", "100")
		got, err := s.Convert(ctx, a, "BRL")
		if err != nil {
			t.Fatalf("Convert(%v, BRL) failed: %v", a, err)
		}
		want := ISO().MustParseAmount("BRL", "500.00")
		if !got.Equal(want) {
			t.Errorf("Convert(%v, BRL) = %v, want %v", a, got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		a := ISO().MustParseAmount("BRL", "100")
		_, err := s.Convert(ctx, a, "USD")
		if !errors.Is(err, ErrRateUnavailable) {
			t.Errorf("Convert(%v, USD) error = %v, want %v", a, err, ErrRateUnavailable)
		}
	})
}

func TestProviderSet_Conversion(t *testing.T) {
	s := newTestSet(t, time.Second, tableProvider("ECB", map[string]string{"USD/BRL": "5.00"}))
	op := Chain(s.Conversion(context.Background(), "BRL"), DefaultRounding())

	tests := []struct {
		code, amount, want string
	}{
		{"USD", "19.999", "100.00"},
		{"BRL", "12.345", "12.34"},
	}
	for _, tt := range tests {
		a := ISO().MustParseAmount(tt.code, tt.amount)
		got, err := a.With(op)
		if err != nil {
			t.Errorf("%v.With(Conversion(BRL)) failed: %v", a, err)
			continue
		}
		want := ISO().MustParseAmount("BRL", tt.want)
		if !got.Equal(want) {
			t.Errorf("%v.With(Conversion(BRL)) = %v, want %v", a, got, want)
		}
	}

	_, err := ISO().MustParseAmount("USD", "1").With(s.Conversion(context.Background(), "XXX_BOGUS"))
	if !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("Conversion(XXX_BOGUS) error = %v, want %v", err, ErrUnknownCurrency)
	}
}
