// Package exchange holds the per-venue grammars that translate native
// instrument names to model.Instrument and back.
package exchange

import (
	"slices"

	"go.uber.org/zap"

	"github.com/Checker-Finance/normify/pkg/expiry"
	"github.com/Checker-Finance/normify/pkg/logger"
	"github.com/Checker-Finance/normify/pkg/model"
)

// Handler translates between one venue's native names and canonical instruments.
// Implementations are stateless and safe for concurrent use.
type Handler interface {
	// Exchange is the venue this handler speaks for.
	Exchange() model.Exchange

	// Normalize parses a native name. It reports false for any name the venue
	// could not have emitted under marketType.
	Normalize(marketType model.MarketType, name string) (model.Instrument, bool)

	// Denormalize renders the native name. It reports false when the instrument
	// belongs to another venue or uses a market type, instrument type or quote
	// the venue cannot express.
	Denormalize(instrument model.Instrument) (string, bool)

	SupportsMarketType(marketType model.MarketType) bool
	SupportsInstrumentType(instrumentType model.InstrumentType) bool
}

// delimiter separates tokens in every current venue's names.
const delimiter = "-"

// venue carries what differs between handlers apart from token shapes.
type venue struct {
	exchange model.Exchange

	// quote is applied when a name carries no explicit quote. Zero for venues
	// that always spell the quote out.
	quote model.Currency
	// splitQuote allows BASE_QUOTE tokens for non-default quotes.
	splitQuote bool
	pattern    expiry.Pattern

	marketTypes []model.MarketType
	kinds       []model.Kind
}

func (v venue) Exchange() model.Exchange { return v.exchange }

func (v venue) SupportsMarketType(marketType model.MarketType) bool {
	return slices.Contains(v.marketTypes, marketType)
}

func (v venue) SupportsInstrumentType(instrumentType model.InstrumentType) bool {
	return instrumentType != nil && slices.Contains(v.kinds, instrumentType.Kind())
}

func (v venue) log() *zap.Logger {
	return logger.Named("exchange." + v.exchange.String())
}

// reject logs why name was refused and returns the absence signal.
func (v venue) reject(name string, marketType model.MarketType, reason string) (model.Instrument, bool) {
	v.log().Debug("normify."+v.exchange.String()+".normalize.rejected",
		zap.String("name", name),
		zap.Stringer("market_type", marketType),
		zap.String("reason", reason),
	)
	return model.Instrument{}, false
}

// accept builds the instrument once the grammar matched.
func (v venue) accept(name string, marketType model.MarketType, instrumentType model.InstrumentType) (model.Instrument, bool) {
	if !v.SupportsInstrumentType(instrumentType) {
		return v.reject(name, marketType, "unsupported instrument type")
	}
	return model.NewInstrument(v.exchange, marketType, instrumentType), true
}

// refuse logs why an instrument cannot be rendered and returns the absence signal.
func (v venue) refuse(instrument model.Instrument, reason string) (string, bool) {
	v.log().Debug("normify."+v.exchange.String()+".denormalize.rejected",
		zap.Stringer("instrument", instrument),
		zap.Stringer("exchange", instrument.Exchange),
		zap.String("reason", reason),
	)
	return "", false
}

// admits runs the checks every Denormalize performs before rendering tokens.
func (v venue) admits(instrument model.Instrument) bool {
	reason := ""
	switch {
	case instrument.Exchange != v.exchange:
		reason = "instrument belongs to another exchange"
	case !v.SupportsInstrumentType(instrument.Type):
		reason = "unsupported instrument type"
	case !v.SupportsMarketType(instrument.MarketType):
		reason = "unsupported market type"
	default:
		return true
	}
	v.refuse(instrument, reason)
	return false
}
