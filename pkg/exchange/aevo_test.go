package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Checker-Finance/normify/pkg/model"
)

func TestAevo_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected model.InstrumentType
	}{
		{"option", "BTC-28MAR25-100000-C", model.Option{Base: model.BTC, Quote: model.USDC, Expiry: "20250328", Strike: 100000, Type: model.Call}},
		{"perpetual", "BTC-PERP", model.Perpetual{Base: model.BTC, Quote: model.USDC}},
		{"lowercase perpetual keyword", "eth-perp", model.Perpetual{Base: model.ETH, Quote: model.USDC}},
		{"perpetual with explicit quote", "SOL_USD-PERP", model.Perpetual{Base: model.SOL, Quote: model.USD}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := aevo.Normalize(model.Ticker, tt.input)
			require.True(t, ok)
			assert.Equal(t, model.NewInstrument(model.Aevo, model.Ticker, tt.expected), got)
		})
	}
}

func TestAevo_NormalizeRejects(t *testing.T) {
	tests := []struct {
		name       string
		marketType model.MarketType
		input      string
	}{
		{"three tokens", model.OrderBook, "BTC-USD-20250528"},
		{"future shape", model.OrderBook, "BTC-28MAR25"},
		{"canonical date", model.OrderBook, "BTC-20250328-100000-C"},
		{"public trades unsupported", model.PublicTrade, "BTC-PERP"},
		{"funding unsupported", model.Funding, "BTC-PERP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := aevo.Normalize(tt.marketType, tt.input)
			assert.False(t, ok)
		})
	}
}

func TestAevo_Denormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    model.InstrumentType
		expected string
	}{
		{"option", model.Option{Base: model.BTC, Quote: model.USDC, Expiry: "20250328", Strike: 100000, Type: model.Call}, "BTC-28MAR25-100000-C"},
		{"perpetual", model.Perpetual{Base: model.BTC, Quote: model.USDC}, "BTC-PERP"},
		{"perpetual with explicit quote", model.Perpetual{Base: model.SOL, Quote: model.USD}, "SOL_USD-PERP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := aevo.Denormalize(model.NewInstrument(model.Aevo, model.OrderBook, tt.input))
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, ok := aevo.Denormalize(model.NewInstrument(model.Aevo, model.OrderBook, model.Spot{Base: model.BTC, Quote: model.USDC}))
	assert.False(t, ok)
	_, ok = aevo.Denormalize(model.NewInstrument(model.Aevo, model.PublicTrade, model.Perpetual{Base: model.BTC, Quote: model.USDC}))
	assert.False(t, ok)
}
