package model

import (
	"fmt"
	"strings"
)

// Exchange identifies one of the supported trading venues.
type Exchange int

const (
	Deribit Exchange = iota + 1
	Dydx
	Derive
	Paradex
	Aevo
)

var exchangeNames = map[Exchange]string{
	Deribit: "deribit",
	Dydx:    "dydx",
	Derive:  "derive",
	Paradex: "paradex",
	Aevo:    "aevo",
}

// Exchanges returns every supported venue in declaration order.
func Exchanges() []Exchange {
	return []Exchange{Deribit, Dydx, Derive, Paradex, Aevo}
}

// String returns the lowercase venue name used in the canonical format.
func (e Exchange) String() string {
	if name, ok := exchangeNames[e]; ok {
		return name
	}
	return fmt.Sprintf("exchange(%d)", int(e))
}

// Valid reports whether e is one of the declared venues.
func (e Exchange) Valid() bool {
	_, ok := exchangeNames[e]
	return ok
}

// ParseExchange resolves a venue name, ignoring case and surrounding whitespace.
func ParseExchange(s string) (Exchange, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for e, n := range exchangeNames {
		if n == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown exchange %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (e Exchange) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("invalid exchange %d", int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Exchange) UnmarshalText(b []byte) error {
	v, err := ParseExchange(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
