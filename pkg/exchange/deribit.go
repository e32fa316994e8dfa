package exchange

import (
	"strings"

	"github.com/Checker-Finance/normify/pkg/expiry"
	"github.com/Checker-Finance/normify/pkg/model"
)

const deribitPerpetual = "PERPETUAL"

// DeribitHandler speaks Deribit names:
//
//	BTC-PERPETUAL, SOL_USDC-PERPETUAL  perpetual
//	BTC-28MAR25                        future
//	BTC-28MAR25-100000-C               option
//	BTC_USDC                           spot
type DeribitHandler struct{ venue }

var deribit = DeribitHandler{venue{
	exchange:    model.Deribit,
	quote:       model.USD,
	splitQuote:  true,
	pattern:     expiry.DayMonthYY,
	marketTypes: []model.MarketType{model.OrderBook, model.PublicTrade, model.Ticker},
	kinds:       []model.Kind{model.KindFuture, model.KindOption, model.KindSpot, model.KindPerpetual},
}}

func (h DeribitHandler) Normalize(marketType model.MarketType, name string) (model.Instrument, bool) {
	if !h.SupportsMarketType(marketType) {
		return h.reject(name, marketType, "unsupported market type")
	}

	parts := strings.Split(name, delimiter)
	switch {
	case len(parts) == 2 && strings.EqualFold(parts[1], deribitPerpetual):
		perp, err := h.perpetual(parts[0])
		if err != nil {
			return h.reject(name, marketType, err.Error())
		}
		return h.accept(name, marketType, perp)

	case len(parts) == 2:
		future, err := h.future(parts)
		if err != nil {
			return h.reject(name, marketType, err.Error())
		}
		return h.accept(name, marketType, future)

	case len(parts) == 4:
		option, err := h.option(parts)
		if err != nil {
			return h.reject(name, marketType, err.Error())
		}
		return h.accept(name, marketType, option)

	case len(parts) == 1:
		b, q, found := strings.Cut(parts[0], quoteSeparator)
		if !found {
			return h.reject(name, marketType, "spot name needs BASE_QUOTE")
		}
		base, quote, err := explicitPair(b, q)
		if err != nil {
			return h.reject(name, marketType, err.Error())
		}
		return h.accept(name, marketType, model.Spot{Base: base, Quote: quote})
	}

	return h.reject(name, marketType, "unexpected instrument format")
}

func (h DeribitHandler) Denormalize(instrument model.Instrument) (string, bool) {
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
		name += delimiter + deribitPerpetual
	case model.Future:
		name, ok = h.futureName(t)
	case model.Option:
		name, ok = h.optionName(t)
	case model.Spot:
		ok = symbolOK(t.Base.String()) && symbolOK(t.Quote.String())
		name = t.Base.String() + quoteSeparator + t.Quote.String()
	}
	if !ok {
		return h.refuse(instrument, "fields cannot be expressed in deribit grammar")
	}
	return name, true
}
