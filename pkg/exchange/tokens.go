package exchange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Checker-Finance/normify/pkg/expiry"
	"github.com/Checker-Finance/normify/pkg/model"
)

// quoteSeparator joins base and quote inside a single token, as in SOL_USDC.
const quoteSeparator = "_"

var errQuoteNotAllowed = errors.New("explicit quote not allowed")

// symbolOK reports whether s is a non-empty ASCII alphanumeric symbol.
func symbolOK(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

func currency(token string) (model.Currency, error) {
	if !symbolOK(token) {
		return model.Currency{}, fmt.Errorf("invalid currency %q", token)
	}
	return model.NewCurrency(token), nil
}

// pair reads BASE, or BASE_QUOTE where the venue allows an explicit quote.
func (v venue) pair(token string) (model.Currency, model.Currency, error) {
	b, q, found := strings.Cut(token, quoteSeparator)
	if !found {
		base, err := currency(token)
		return base, v.quote, err
	}
	if !v.splitQuote {
		return model.Currency{}, model.Currency{}, errQuoteNotAllowed
	}
	base, err := currency(b)
	if err != nil {
		return model.Currency{}, model.Currency{}, err
	}
	quote, err := currency(q)
	if err != nil {
		return model.Currency{}, model.Currency{}, err
	}
	return base, quote, nil
}

// pairToken is the inverse of pair: the quote is omitted when it is the default.
func (v venue) pairToken(base, quote model.Currency) (string, bool) {
	if !symbolOK(base.String()) || !symbolOK(quote.String()) {
		return "", false
	}
	if quote == v.quote {
		return base.String(), true
	}
	if !v.splitQuote {
		return "", false
	}
	return base.String() + quoteSeparator + quote.String(), true
}

func parseStrike(token string) (uint64, error) {
	strike, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid strike %q", token)
	}
	return strike, nil
}

// option reads BASE[_QUOTE]-EXPIRY-STRIKE-KIND.
func (v venue) option(tokens []string) (model.Option, error) {
	base, quote, err := v.pair(tokens[0])
	if err != nil {
		return model.Option{}, err
	}
	date, err := expiry.Canonical(tokens[1], v.pattern)
	if err != nil {
		return model.Option{}, err
	}
	strike, err := parseStrike(tokens[2])
	if err != nil {
		return model.Option{}, err
	}
	kind, err := model.ParseOptionKind(tokens[3])
	if err != nil {
		return model.Option{}, err
	}
	return model.Option{Base: base, Quote: quote, Expiry: date, Strike: strike, Type: kind}, nil
}

func (v venue) optionName(o model.Option) (string, bool) {
	pair, ok := v.pairToken(o.Base, o.Quote)
	if !ok {
		return "", false
	}
	date, err := expiry.Denormalize(o.Expiry, v.pattern)
	if err != nil || o.Type.Code() == "" {
		return "", false
	}
	return strings.Join([]string{pair, date, strconv.FormatUint(o.Strike, 10), o.Type.Code()}, delimiter), true
}

// future reads BASE[_QUOTE]-EXPIRY.
func (v venue) future(tokens []string) (model.Future, error) {
	base, quote, err := v.pair(tokens[0])
	if err != nil {
		return model.Future{}, err
	}
	date, err := expiry.Canonical(tokens[1], v.pattern)
	if err != nil {
		return model.Future{}, err
	}
	return model.Future{Base: base, Quote: quote, Expiry: date}, nil
}

func (v venue) futureName(f model.Future) (string, bool) {
	pair, ok := v.pairToken(f.Base, f.Quote)
	if !ok {
		return "", false
	}
	date, err := expiry.Denormalize(f.Expiry, v.pattern)
	if err != nil {
		return "", false
	}
	return pair + delimiter + date, true
}

// perpetual reads the BASE[_QUOTE] token in front of a perpetual keyword.
func (v venue) perpetual(token string) (model.Perpetual, error) {
	base, quote, err := v.pair(token)
	if err != nil {
		return model.Perpetual{}, err
	}
	return model.Perpetual{Base: base, Quote: quote}, nil
}

// explicitPair reads separate BASE and QUOTE tokens for venues without a default quote.
func explicitPair(baseToken, quoteToken string) (model.Currency, model.Currency, error) {
	base, err := currency(baseToken)
	if err != nil {
		return model.Currency{}, model.Currency{}, err
	}
	quote, err := currency(quoteToken)
	if err != nil {
		return model.Currency{}, model.Currency{}, err
	}
	return base, quote, nil
}
