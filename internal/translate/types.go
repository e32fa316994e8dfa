package translate

import "github.com/Checker-Finance/normify/pkg/model"

// Operations understood by Service.Handle.
const (
	OpNormalize   = "normalize"
	OpDenormalize = "denormalize"
	OpParse       = "parse"
	OpExpired     = "expired"
)

// Error kinds reported in Response.ErrorKind. The first four mirror
// standard.Kind.
const (
	KindInvalidFormat         = "invalid_format"
	KindInvalidDate           = "invalid_date"
	KindParse                 = "parse_error"
	KindUnsupportedByExchange = "unsupported_by_exchange"
	KindRejected              = "rejected"
	KindBadRequest            = "bad_request"
	KindCanceled              = "canceled"
)

// Request is the transport-neutral translation request shared by the HTTP API,
// the NATS responder and the AMQP consumer.
type Request struct {
	Op            string `json:"op"`
	CorrelationID string `json:"correlation_id,omitempty"`

	// normalize
	Exchange   string `json:"exchange,omitempty"`
	MarketType string `json:"market_type,omitempty"`
	Name       string `json:"name,omitempty"`

	// denormalize, parse, expired
	Instrument string `json:"instrument,omitempty"`
}

// Response carries the outcome of one Request. Only the fields relevant to the
// operation are populated.
type Response struct {
	ID            string `json:"id"`
	CorrelationID string `json:"correlation_id,omitempty"`
	Op            string `json:"op"`
	OK            bool   `json:"ok"`

	Instrument string          `json:"instrument,omitempty"`
	Name       string          `json:"name,omitempty"`
	Details    *InstrumentView `json:"details,omitempty"`
	Expiry     string          `json:"expiry,omitempty"`
	Expired    *bool           `json:"expired,omitempty"`

	Error     string `json:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
}

// InstrumentView is the structured form of a canonical instrument.
type InstrumentView struct {
	Canonical  string `json:"canonical"`
	Exchange   string `json:"exchange"`
	MarketType string `json:"market_type"`
	Kind       string `json:"kind"`
	Base       string `json:"base"`
	Quote      string `json:"quote"`
	Expiry     string `json:"expiry,omitempty"`
	Strike     uint64 `json:"strike,omitempty"`
	OptionType string `json:"option_type,omitempty"`
}

func viewOf(i model.Instrument) *InstrumentView {
	base, quote := i.Type.Currencies()
	v := &InstrumentView{
		Canonical:  i.String(),
		Exchange:   i.Exchange.String(),
		MarketType: i.MarketType.String(),
		Kind:       i.Type.Kind().String(),
		Base:       base.String(),
		Quote:      quote.String(),
	}
	switch t := i.Type.(type) {
	case model.Future:
		v.Expiry = t.Expiry
	case model.Option:
		v.Expiry = t.Expiry
		v.Strike = t.Strike
		v.OptionType = t.Type.String()
	}
	return v
}

// Venue describes what one exchange handler accepts.
type Venue struct {
	Exchange    string   `json:"exchange"`
	MarketTypes []string `json:"market_types"`
	Kinds       []string `json:"kinds"`
}
