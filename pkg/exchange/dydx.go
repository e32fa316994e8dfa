package exchange

import (
	"strings"

	"github.com/Checker-Finance/normify/pkg/model"
)

// DydxHandler speaks dYdX market names, which are always BASE-QUOTE perpetuals.
type DydxHandler struct{ venue }

var dydx = DydxHandler{venue{
	exchange:    model.Dydx,
	marketTypes: []model.MarketType{model.OrderBook},
	kinds:       []model.Kind{model.KindPerpetual},
}}

// perpKeyword is refused as a dYdX quote so names from PERP-suffixed venues
// are not mistaken for markets.
const perpKeyword = "PERP"

func (h DydxHandler) Normalize(marketType model.MarketType, name string) (model.Instrument, bool) {
	if !h.SupportsMarketType(marketType) {
		return h.reject(name, marketType, "unsupported market type")
	}

	parts := strings.Split(name, delimiter)
	if len(parts) != 2 || strings.EqualFold(parts[1], perpKeyword) {
		return h.reject(name, marketType, "unexpected instrument format")
	}
	base, quote, err := explicitPair(parts[0], parts[1])
	if err != nil {
		return h.reject(name, marketType, err.Error())
	}
	return h.accept(name, marketType, model.Perpetual{Base: base, Quote: quote})
}

func (h DydxHandler) Denormalize(instrument model.Instrument) (string, bool) {
	if !h.admits(instrument) {
		return "", false
	}

	perp, _ := instrument.Type.(model.Perpetual)
	if !symbolOK(perp.Base.String()) || !symbolOK(perp.Quote.String()) || perp.Quote.String() == perpKeyword {
		return h.refuse(instrument, "fields cannot be expressed in dydx grammar")
	}
	return perp.Base.String() + delimiter + perp.Quote.String(), true
}
