package exchange

import (
	"strings"

	"github.com/Checker-Finance/normify/pkg/expiry"
	"github.com/Checker-Finance/normify/pkg/model"
)

const derivePerpetual = "PERP"

// DeriveHandler speaks Derive names: BTC-PERP and BTC-20250328-100000-C.
// Derive quotes everything in USD and lists no futures or spot.
type DeriveHandler struct{ venue }

var derive = DeriveHandler{venue{
	exchange:    model.Derive,
	quote:       model.USD,
	pattern:     expiry.YYYYMMDD,
	marketTypes: model.MarketTypes(),
	kinds:       []model.Kind{model.KindOption, model.KindPerpetual},
}}

func (h DeriveHandler) Normalize(marketType model.MarketType, name string) (model.Instrument, bool) {
	if !h.SupportsMarketType(marketType) {
		return h.reject(name, marketType, "unsupported market type")
	}

	parts := strings.Split(name, delimiter)
	switch {
	case len(parts) == 2 && strings.EqualFold(parts[1], derivePerpetual):
		perp, err := h.perpetual(parts[0])
		if err != nil {
			return h.reject(name, marketType, err.Error())
		}
		return h.accept(name, marketType, perp)

	case len(parts) == 4:
		option, err := h.option(parts)
		if err != nil {
			return h.reject(name, marketType, err.Error())
		}
		return h.accept(name, marketType, option)
	}

	return h.reject(name, marketType, "unexpected instrument format")
}

func (h DeriveHandler) Denormalize(instrument model.Instrument) (string, bool) {
	if !h.admits(instrument) {
		return "", false
	}

	var (
		name string
		ok   bool
	)
	switch t := instrument.Type.(type) {
	case model.Perpetual:
		name, ok = h.pairToken(t.Base, t.Quote)
		name += delimiter + derivePerpetual
	case model.Option:
		name, ok = h.optionName(t)
	}
	if !ok {
		return h.refuse(instrument, "fields cannot be expressed in derive grammar")
	}
	return name, true
}
