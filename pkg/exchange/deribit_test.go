package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Checker-Finance/normify/pkg/model"
)

func TestDeribit_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected model.InstrumentType
	}{
		{
			name:     "future",
			input:    "BTC-28MAR25",
			expected: model.Future{Base: model.BTC, Quote: model.USD, Expiry: "20250328"},
		},
		{
			name:     "future with unpadded day",
			input:    "ETH-7MAR25",
			expected: model.Future{Base: model.ETH, Quote: model.USD, Expiry: "20250307"},
		},
		{
			name:     "option",
			input:    "BTC-28MAR25-100000-C",
			expected: model.Option{Base: model.BTC, Quote: model.USD, Expiry: "20250328", Strike: 100000, Type: model.Call},
		},
		{
			name:     "put option with word kind",
			input:    "ETH-27JUN25-3000-put",
			expected: model.Option{Base: model.ETH, Quote: model.USD, Expiry: "20250627", Strike: 3000, Type: model.Put},
		},
		{
			name:     "linear option",
			input:    "SOL_USDC-28MAR25-150-P",
			expected: model.Option{Base: model.SOL, Quote: model.USDC, Expiry: "20250328", Strike: 150, Type: model.Put},
		},
		{
			name:     "perpetual",
			input:    "BTC-PERPETUAL",
			expected: model.Perpetual{Base: model.BTC, Quote: model.USD},
		},
		{
			name:     "lowercase perpetual keyword",
			input:    "BTC-perpetual",
			expected: model.Perpetual{Base: model.BTC, Quote: model.USD},
		},
		{
			name:     "perpetual with non default quote",
			input:    "SOL_USDC-PERPETUAL",
			expected: model.Perpetual{Base: model.SOL, Quote: model.USDC},
		},
		{
			name:     "spot",
			input:    "BTC_USD",
			expected: model.Spot{Base: model.BTC, Quote: model.USD},
		},
		{
			name:     "spot with lowercase input",
			input:    "eth_usdc",
			expected: model.Spot{Base: model.ETH, Quote: model.USDC},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := deribit.Normalize(model.OrderBook, tt.input)
			require.True(t, ok)
			assert.Equal(t, model.NewInstrument(model.Deribit, model.OrderBook, tt.expected), got)
		})
	}
}

func TestDeribit_NormalizeRejects(t *testing.T) {
	tests := []struct {
		name       string
		marketType model.MarketType
		input      string
	}{
		{"three tokens", model.OrderBook, "BTC-USD-20250528"},
		{"canonical date in future", model.OrderBook, "BTC-20250328"},
		{"canonical date in option", model.OrderBook, "BTC-20250328-100000-C"},
		{"bad strike", model.OrderBook, "BTC-28MAR25-1e5-C"},
		{"fractional strike", model.OrderBook, "BTC-28MAR25-2.5-C"},
		{"negative strike", model.OrderBook, "BTC-28MAR25--5-C"},
		{"bad option kind", model.OrderBook, "BTC-28MAR25-100000-X"},
		{"invalid calendar date", model.OrderBook, "BTC-31FEB25"},
		{"spot without quote", model.OrderBook, "BTC"},
		{"spot with empty quote", model.OrderBook, "BTC_"},
		{"empty base perpetual", model.OrderBook, "-PERPETUAL"},
		{"empty", model.OrderBook, ""},
		{"funding unsupported", model.Funding, "BTC-PERPETUAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := deribit.Normalize(tt.marketType, tt.input)
			assert.False(t, ok)
			assert.True(t, got.IsZero())
		})
	}
}

func TestDeribit_Denormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    model.InstrumentType
		expected string
	}{
		{"future", model.Future{Base: model.BTC, Quote: model.USD, Expiry: "20250328"}, "BTC-28MAR25"},
		{"future zero pads day", model.Future{Base: model.ETH, Quote: model.USD, Expiry: "20250307"}, "ETH-07MAR25"},
		{"option", model.Option{Base: model.BTC, Quote: model.USD, Expiry: "20250328", Strike: 100000, Type: model.Call}, "BTC-28MAR25-100000-C"},
		{"linear option", model.Option{Base: model.SOL, Quote: model.USDC, Expiry: "20250328", Strike: 150, Type: model.Put}, "SOL_USDC-28MAR25-150-P"},
		{"perpetual", model.Perpetual{Base: model.BTC, Quote: model.USD}, "BTC-PERPETUAL"},
		{"perpetual with non default quote", model.Perpetual{Base: model.SOL, Quote: model.USDC}, "SOL_USDC-PERPETUAL"},
		{"spot keeps default quote", model.Spot{Base: model.BTC, Quote: model.USD}, "BTC_USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := deribit.Denormalize(model.NewInstrument(model.Deribit, model.OrderBook, tt.input))
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// Unpadded days are accepted on input but always rendered zero-padded, so the
// venue string does not survive a round trip while the instrument does.
func TestDeribit_UnpaddedDayRoundTrip(t *testing.T) {
	tests := []struct {
		input    string
		rendered string
	}{
		{"BTC-7MAR25", "BTC-07MAR25"},
		{"ETH-7MAR25-3000-P", "ETH-07MAR25-3000-P"},
		{"SOL_USDC-1APR25", "SOL_USDC-01APR25"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			inst, ok := deribit.Normalize(model.OrderBook, tt.input)
			require.True(t, ok)

			got, ok := deribit.Denormalize(inst)
			require.True(t, ok)
			assert.Equal(t, tt.rendered, got)
			assert.NotEqual(t, tt.input, got)

			again, ok := deribit.Normalize(model.OrderBook, got)
			require.True(t, ok)
			assert.Equal(t, inst, again)
		})
	}
}

func TestDeribit_DenormalizeRejects(t *testing.T) {
	tests := []struct {
		name       string
		instrument model.Instrument
	}{
		{"other exchange", model.NewInstrument(model.Derive, model.OrderBook, model.Perpetual{Base: model.BTC, Quote: model.USD})},
		{"unsupported market type", model.NewInstrument(model.Deribit, model.Funding, model.Perpetual{Base: model.BTC, Quote: model.USD})},
		{"non canonical expiry", model.NewInstrument(model.Deribit, model.OrderBook, model.Future{Base: model.BTC, Quote: model.USD, Expiry: "28MAR25"})},
		{"currency with separator", model.NewInstrument(model.Deribit, model.OrderBook, model.Perpetual{Base: model.NewCurrency("SOL_X"), Quote: model.USD})},
		{"missing kind", model.NewInstrument(model.Deribit, model.OrderBook, model.Option{Base: model.BTC, Quote: model.USD, Expiry: "20250328", Strike: 1})},
		{"nil type", model.NewInstrument(model.Deribit, model.OrderBook, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := deribit.Denormalize(tt.instrument)
			assert.False(t, ok)
			assert.Empty(t, got)
		})
	}
}

func TestDeribit_Support(t *testing.T) {
	assert.True(t, deribit.SupportsMarketType(model.OrderBook))
	assert.True(t, deribit.SupportsMarketType(model.PublicTrade))
	assert.True(t, deribit.SupportsMarketType(model.Ticker))
	assert.False(t, deribit.SupportsMarketType(model.Funding))

	assert.True(t, deribit.SupportsInstrumentType(model.Spot{}))
	assert.True(t, deribit.SupportsInstrumentType(model.Future{}))
	assert.True(t, deribit.SupportsInstrumentType(model.Option{}))
	assert.True(t, deribit.SupportsInstrumentType(model.Perpetual{}))
	assert.False(t, deribit.SupportsInstrumentType(nil))
}
