package model

import "strings"

// Currency is an asset symbol held in its canonical uppercase form.
// The zero value is the empty symbol.
type Currency struct {
	symbol string
}

var (
	BTC  = Currency{symbol: "BTC"}
	ETH  = Currency{symbol: "ETH"}
	SOL  = Currency{symbol: "SOL"}
	USD  = Currency{symbol: "USD"}
	USDC = Currency{symbol: "USDC"}
)

// NewCurrency canonicalizes s. Any casing of the same symbol yields an equal value.
func NewCurrency(s string) Currency {
	symbol := strings.ToUpper(strings.TrimSpace(s))
	switch symbol {
	case "BTC":
		return BTC
	case "ETH":
		return ETH
	case "SOL":
		return SOL
	case "USD":
		return USD
	case "USDC":
		return USDC
	}
	return Currency{symbol: symbol}
}

func (c Currency) String() string { return c.symbol }

// IsZero reports whether c holds no symbol.
func (c Currency) IsZero() bool { return c.symbol == "" }

// MarshalText implements encoding.TextMarshaler.
func (c Currency) MarshalText() ([]byte, error) { return []byte(c.symbol), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Currency) UnmarshalText(b []byte) error {
	*c = NewCurrency(string(b))
	return nil
}
