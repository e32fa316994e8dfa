package exchange

import (
	"strings"

	"github.com/Checker-Finance/normify/pkg/expiry"
	"github.com/Checker-Finance/normify/pkg/model"
)

const aevoPerpetual = "PERP"

// AevoHandler speaks Aevo names: BTC-PERP, SOL_USD-PERP and
// BTC-28MAR25-100000-C. The default quote is USDC.
type AevoHandler struct{ venue }

var aevo = AevoHandler{venue{
	exchange:    model.Aevo,
	quote:       model.USDC,
	splitQuote:  true,
	pattern:     expiry.DayMonthYY,
	marketTypes: []model.MarketType{model.OrderBook, model.Ticker},
	kinds:       []model.Kind{model.KindOption, model.KindPerpetual},
}}

func (h AevoHandler) Normalize(marketType model.MarketType, name string) (model.Instrument, bool) {
	if !h.SupportsMarketType(marketType) {
		return h.reject(name, marketType, "unsupported market type")
	}

	parts := strings.Split(name, delimiter)
	switch {
	case len(parts) == 2 && strings.EqualFold(parts[1], aevoPerpetual):
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

func (h AevoHandler) Denormalize(instrument model.Instrument) (string, bool) {
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
		name += delimiter + aevoPerpetual
	case model.Option:
		name, ok = h.optionName(t)
	}
	if !ok {
		return h.refuse(instrument, "fields cannot be expressed in aevo grammar")
	}
	return name, true
}
