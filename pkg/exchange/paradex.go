package exchange

import (
	"strings"

	"github.com/Checker-Finance/normify/pkg/model"
)

// ParadexHandler speaks Paradex names, BASE-QUOTE-PERP.
type ParadexHandler struct{ venue }

var paradex = ParadexHandler{venue{
	exchange:    model.Paradex,
	marketTypes: []model.MarketType{model.OrderBook},
	kinds:       []model.Kind{model.KindPerpetual},
}}

func (h ParadexHandler) Normalize(marketType model.MarketType, name string) (model.Instrument, bool) {
	if !h.SupportsMarketType(marketType) {
		return h.reject(name, marketType, "unsupported market type")
	}

	parts := strings.Split(name, delimiter)
	if len(parts) != 3 || !strings.EqualFold(parts[2], perpKeyword) {
		return h.reject(name, marketType, "unexpected instrument format")
	}
	base, quote, err := explicitPair(parts[0], parts[1])
	if err != nil {
		return h.reject(name, marketType, err.Error())
	}
	return h.accept(name, marketType, model.Perpetual{Base: base, Quote: quote})
}

func (h ParadexHandler) Denormalize(instrument model.Instrument) (string, bool) {
	if !h.admits(instrument) {
		return "", false
	}

	perp, _ := instrument.Type.(model.Perpetual)
	if !symbolOK(perp.Base.String()) || !symbolOK(perp.Quote.String()) {
		return h.refuse(instrument, "fields cannot be expressed in paradex grammar")
	}
	return strings.Join([]string{perp.Base.String(), perp.Quote.String(), perpKeyword}, delimiter), true
}
