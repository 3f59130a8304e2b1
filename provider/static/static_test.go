package static

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valuekit/money"
)

func TestNew(t *testing.T) {
	reg := money.ISO()

	t.Run("success", func(t *testing.T) {
		p, err := New("ECB",
			reg.MustParseExchRate("USD", "BRL", "5.00"),
			reg.MustParseExchRate("EUR", "USD", "1.08"),
		)
		require.NoError(t, err)
		assert.Equal(t, "ECB", p.Name())
		assert.Equal(t, 2, p.Len())
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			name  string
			rates []money.ExchangeRate
		}{
			"empty name": {"", nil},
			"duplicate": {"ECB", []money.ExchangeRate{
				reg.MustParseExchRate("USD", "BRL", "5.00"),
				reg.MustParseExchRate("USD", "BRL", "5.10"),
			}},
			"inverted": {"ECB", []money.ExchangeRate{
				reg.MustParseExchRate("USD", "BRL", "5.00"),
				reg.MustParseExchRate("BRL", "USD", "0.20"),
			}},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := New(tt.name, tt.rates...)
				assert.Error(t, err)
			})
		}
	})

	t.Run("panic", func(t *testing.T) {
		assert.Panics(t, func() { MustNew("") })
	})
}

func TestProvider_ExchangeRate(t *testing.T) {
	reg := money.ISO()
	p := MustNew("ECB",
		reg.MustParseExchRate("USD", "BRL", "5.00"),
		reg.MustParseExchRate("USD", "JPY", "3"),
	)
	ctx := context.Background()

	tests := []struct {
		name, base, quote, want string
	}{
		{"direct", "USD", "BRL", "USD/BRL 5.00"},
		{"inverse exact", "BRL", "USD", "BRL/USD 0.2"},
		{"inverse rounded", "JPY", "USD", "JPY/USD 0.33333333"},
		{"identity", "EUR", "EUR", "EUR/EUR 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ExchangeRate(ctx, reg.MustLookup(tt.base), reg.MustLookup(tt.quote))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, "ECB", got.Provider())
		})
	}

	t.Run("inverse rounding", func(t *testing.T) {
		q := p.WithInverseRounding(money.MustNewRounding(4, money.Up))
		got, err := q.ExchangeRate(ctx, reg.MustLookup("JPY"), reg.MustLookup("USD"))
		require.NoError(t, err)
		assert.Equal(t, "JPY/USD 0.3334", got.String())
	})

	t.Run("miss", func(t *testing.T) {
		_, err := p.ExchangeRate(ctx, reg.MustLookup("EUR"), reg.MustLookup("BRL"))
		require.ErrorIs(t, err, money.ErrRateUnavailable)
		var rerr *money.RateError
		require.True(t, errors.As(err, &rerr))
		assert.Equal(t, "ECB", rerr.Provider)
		assert.Equal(t, "EUR", rerr.Base)
		assert.Equal(t, "BRL", rerr.Quote)
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := p.ExchangeRate(ctx, reg.MustLookup("USD"), reg.MustLookup("BRL"))
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, err, money.ErrRateUnavailable)
	})
}

func TestProvider_ProviderSet(t *testing.T) {
	reg := money.ISO()
	p := MustNew("ECB", reg.MustParseExchRate("USD", "BRL", "5.00"))
	s, err := money.NewProviderSet(reg, 0, p)
	require.NoError(t, err)

	got, err := s.Convert(context.Background(), reg.MustParseAmount("BRL", "100.00"), "USD")
	require.NoError(t, err)
	assert.Equal(t, "USD 20.000", got.String())
}
