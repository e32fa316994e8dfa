package model

import (
	"fmt"
	"strconv"
	"strings"
)

// OptionKind distinguishes calls from puts.
type OptionKind int

const (
	Call OptionKind = iota + 1
	Put
)

// Code returns "C" or "P".
func (k OptionKind) Code() string {
	switch k {
	case Call:
		return "C"
	case Put:
		return "P"
	default:
		return ""
	}
}

func (k OptionKind) String() string {
	switch k {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return fmt.Sprintf("optionkind(%d)", int(k))
	}
}

// ParseOptionKind accepts c, call, p or put in any case.
func ParseOptionKind(s string) (OptionKind, error) {
	switch strings.ToLower(s) {
	case "c", "call":
		return Call, nil
	case "p", "put":
		return Put, nil
	default:
		return 0, fmt.Errorf("unknown option kind %q", s)
	}
}

// Kind is the shape of an instrument: future, option, spot or perpetual.
type Kind int

const (
	KindFuture Kind = iota + 1
	KindOption
	KindSpot
	KindPerpetual
)

// Code returns the single-letter code used in the canonical format.
func (k Kind) Code() string {
	switch k {
	case KindFuture:
		return "f"
	case KindOption:
		return "o"
	case KindSpot:
		return "s"
	case KindPerpetual:
		return "p"
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case KindFuture:
		return "future"
	case KindOption:
		return "option"
	case KindSpot:
		return "spot"
	case KindPerpetual:
		return "perpetual"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind accepts the single-letter code or one of its word synonyms.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f", "future", "futures":
		return KindFuture, nil
	case "o", "option", "options":
		return KindOption, nil
	case "s", "spot":
		return KindSpot, nil
	case "p", "perp", "perpetual", "perpetuals":
		return KindPerpetual, nil
	default:
		return 0, fmt.Errorf("unknown instrument kind %q", s)
	}
}

// InstrumentType is one of Future, Option, Spot or Perpetual.
type InstrumentType interface {
	Kind() Kind
	// Currencies returns the base and quote currency.
	Currencies() (base, quote Currency)
	// Name renders the venue-independent inner name, e.g. BTC-USD-20250328-100000-C.
	Name() string

	isInstrumentType()
}

// Future is a dated contract. Expiry is always YYYYMMDD.
type Future struct {
	Base   Currency
	Quote  Currency
	Expiry string
}

// Option is a dated contract with a strike. Expiry is always YYYYMMDD.
type Option struct {
	Base   Currency
	Quote  Currency
	Expiry string
	Strike uint64
	Type   OptionKind
}

type Spot struct {
	Base  Currency
	Quote Currency
}

type Perpetual struct {
	Base  Currency
	Quote Currency
}

func (Future) Kind() Kind    { return KindFuture }
func (Option) Kind() Kind    { return KindOption }
func (Spot) Kind() Kind      { return KindSpot }
func (Perpetual) Kind() Kind { return KindPerpetual }

func (f Future) Currencies() (Currency, Currency)    { return f.Base, f.Quote }
func (o Option) Currencies() (Currency, Currency)    { return o.Base, o.Quote }
func (s Spot) Currencies() (Currency, Currency)      { return s.Base, s.Quote }
func (p Perpetual) Currencies() (Currency, Currency) { return p.Base, p.Quote }

func (f Future) Name() string {
	return f.Base.String() + "-" + f.Quote.String() + "-" + f.Expiry
}

func (o Option) Name() string {
	return strings.Join([]string{
		o.Base.String(),
		o.Quote.String(),
		o.Expiry,
		strconv.FormatUint(o.Strike, 10),
		o.Type.Code(),
	}, "-")
}

func (s Spot) Name() string      { return s.Base.String() + "-" + s.Quote.String() }
func (p Perpetual) Name() string { return p.Base.String() + "-" + p.Quote.String() }

func (Future) isInstrumentType()    {}
func (Option) isInstrumentType()    {}
func (Spot) isInstrumentType()      {}
func (Perpetual) isInstrumentType() {}

// Instrument is the canonical, venue-independent view of a venue identifier.
// Values are comparable with ==.
type Instrument struct {
	Exchange   Exchange
	MarketType MarketType
	Type       InstrumentType
}

// NewInstrument assembles an Instrument. It does not validate the combination;
// handlers and the standard codec do.
func NewInstrument(exchange Exchange, marketType MarketType, instrumentType InstrumentType) Instrument {
	return Instrument{
		Exchange:   exchange,
		MarketType: marketType,
		Type:       instrumentType,
	}
}

// IsZero reports whether i was never populated.
func (i Instrument) IsZero() bool {
	return i.Exchange == 0 && i.MarketType == 0 && i.Type == nil
}

// Expiry returns the canonical expiry for futures and options.
func (i Instrument) Expiry() (string, bool) {
	switch t := i.Type.(type) {
	case Future:
		return t.Expiry, true
	case Option:
		return t.Expiry, true
	default:
		return "", false
	}
}

// String renders the canonical format, e.g. o.o.BTC-USD-20250328-100000-C.deribit.
func (i Instrument) String() string {
	if i.Type == nil {
		return ""
	}
	return i.MarketType.Code() + "." + i.Type.Kind().Code() + "." + i.Type.Name() + "." + i.Exchange.String()
}
