// Package standard parses and renders the canonical instrument format
//
//	<market-type>.<kind>.<inner-name>.<exchange>
//
// e.g. o.o.BTC-USD-20250328-100000-C.deribit.
package standard

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Checker-Finance/normify/pkg/exchange"
	"github.com/Checker-Finance/normify/pkg/expiry"
	"github.com/Checker-Finance/normify/pkg/logger"
	"github.com/Checker-Finance/normify/pkg/model"
)

const (
	fieldSeparator = "."
	tokenSeparator = "-"
	fieldCount     = 4
)

// arity is the inner-name token count per instrument kind.
var arity = map[model.Kind]int{
	model.KindOption:    5,
	model.KindFuture:    3,
	model.KindSpot:      2,
	model.KindPerpetual: 2,
}

// Format renders i in the canonical format.
func Format(i model.Instrument) string {
	return i.String()
}

// Parse reads a canonical string and validates the result against the
// exchange's own grammar, so the returned instrument is one the venue could
// have emitted.
func Parse(text string) (model.Instrument, error) {
	fields := strings.Split(strings.TrimSpace(text), fieldSeparator)
	if len(fields) != fieldCount {
		return model.Instrument{}, fail(text, ErrInvalidFormat, "expected %d dot-separated fields, got %d", fieldCount, len(fields))
	}

	ex, err := model.ParseExchange(fields[3])
	if err != nil {
		return model.Instrument{}, fail(text, ErrParse, "%v", err)
	}
	marketType, err := model.ParseMarketType(fields[0])
	if err != nil {
		return model.Instrument{}, fail(text, ErrParse, "%v", err)
	}
	kind, err := model.ParseKind(fields[1])
	if err != nil {
		return model.Instrument{}, fail(text, ErrParse, "%v", err)
	}
	instrumentType, err := parseInner(text, kind, fields[2])
	if err != nil {
		return model.Instrument{}, err
	}

	candidate := model.NewInstrument(ex, marketType, instrumentType)
	h, ok := exchange.For(ex)
	if !ok {
		return model.Instrument{}, fail(text, ErrParse, "no handler for %s", ex)
	}
	if _, ok := h.Denormalize(candidate); !ok {
		return model.Instrument{}, fail(text, ErrUnsupportedByExchange, "%s cannot list %s %s", ex, marketType, kind)
	}
	return candidate, nil
}

// parseInner splits the inner name by the fixed arity of kind. Unlike the venue
// grammars, the quote and a YYYYMMDD expiry are always present.
func parseInner(text string, kind model.Kind, inner string) (model.InstrumentType, error) {
	tokens := strings.Split(inner, tokenSeparator)
	if len(tokens) != arity[kind] {
		return nil, fail(text, ErrInvalidFormat, "%s needs %d tokens in %q, got %d", kind, arity[kind], inner, len(tokens))
	}
	for _, tok := range tokens {
		if tok == "" {
			return nil, fail(text, ErrInvalidFormat, "empty token in %q", inner)
		}
	}

	base, quote := model.NewCurrency(tokens[0]), model.NewCurrency(tokens[1])
	switch kind {
	case model.KindSpot:
		return model.Spot{Base: base, Quote: quote}, nil
	case model.KindPerpetual:
		return model.Perpetual{Base: base, Quote: quote}, nil
	}

	date, err := expiry.Canonical(tokens[2], expiry.YYYYMMDD)
	if err != nil {
		return nil, fail(text, ErrInvalidDate, "expiry %q is not YYYYMMDD", tokens[2])
	}
	if kind == model.KindFuture {
		return model.Future{Base: base, Quote: quote, Expiry: date}, nil
	}

	strike, err := strconv.ParseUint(tokens[3], 10, 64)
	if err != nil {
		return nil, fail(text, ErrParse, "invalid strike %q", tokens[3])
	}
	optionKind, err := model.ParseOptionKind(tokens[4])
	if err != nil {
		return nil, fail(text, ErrParse, "%v", err)
	}
	return model.Option{Base: base, Quote: quote, Expiry: date, Strike: strike, Type: optionKind}, nil
}

// ToExchangeFormat converts a canonical string to the venue's native name.
// Every failure is logged and collapsed into false.
func ToExchangeFormat(text string) (string, bool) {
	inst, err := Parse(text)
	if err != nil {
		logger.Named("standard").Warn("normify.standard.to_exchange_format.failed",
			zap.String("input", text),
			zap.String("kind", Kind(err)),
			zap.Error(err),
		)
		return "", false
	}
	h, _ := exchange.For(inst.Exchange)
	return h.Denormalize(inst)
}
