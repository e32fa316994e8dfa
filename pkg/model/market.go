package model

import (
	"fmt"
	"strings"
)

// MarketType is the data feed an instrument identifier refers to.
type MarketType int

const (
	OrderBook MarketType = iota + 1
	PublicTrade
	Ticker
	Funding
)

// MarketTypes returns every market type in declaration order.
func MarketTypes() []MarketType {
	return []MarketType{OrderBook, PublicTrade, Ticker, Funding}
}

// Code returns the single-letter code used in the canonical format.
func (m MarketType) Code() string {
	switch m {
	case OrderBook:
		return "o"
	case PublicTrade:
		return "p"
	case Ticker:
		return "t"
	case Funding:
		return "f"
	default:
		return ""
	}
}

func (m MarketType) String() string {
	switch m {
	case OrderBook:
		return "orderbook"
	case PublicTrade:
		return "publictrade"
	case Ticker:
		return "ticker"
	case Funding:
		return "funding"
	default:
		return fmt.Sprintf("markettype(%d)", int(m))
	}
}

// ParseMarketType accepts the single-letter code or one of its word synonyms.
func ParseMarketType(s string) (MarketType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "o", "orderbook", "order_book", "book":
		return OrderBook, nil
	case "p", "pt", "publictrade", "public_trade", "publictrades", "trade", "trades":
		return PublicTrade, nil
	case "t", "ticker":
		return Ticker, nil
	case "f", "funding":
		return Funding, nil
	default:
		return 0, fmt.Errorf("unknown market type %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m MarketType) MarshalText() ([]byte, error) {
	if m.Code() == "" {
		return nil, fmt.Errorf("invalid market type %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MarketType) UnmarshalText(b []byte) error {
	v, err := ParseMarketType(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
