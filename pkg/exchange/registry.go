package exchange

import "github.com/Checker-Finance/normify/pkg/model"

var handlers = map[model.Exchange]Handler{
	model.Deribit: deribit,
	model.Dydx:    dydx,
	model.Derive:  derive,
	model.Paradex: paradex,
	model.Aevo:    aevo,
}

// For returns the handler for e. It reports false only for values outside the
// declared exchanges.
func For(e model.Exchange) (Handler, bool) {
	h, ok := handlers[e]
	return h, ok
}

// All returns every handler in exchange declaration order.
func All() []Handler {
	all := make([]Handler, 0, len(handlers))
	for _, e := range model.Exchanges() {
		all = append(all, handlers[e])
	}
	return all
}
