// Package translate exposes the instrument codecs as a request/response
// service shared by every transport.
package translate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Checker-Finance/normify/internal/metrics"
	"github.com/Checker-Finance/normify/pkg/exchange"
	"github.com/Checker-Finance/normify/pkg/expiry"
	"github.com/Checker-Finance/normify/pkg/model"
	"github.com/Checker-Finance/normify/pkg/standard"
)

// Service answers translation requests. It holds no mutable state and is safe
// for concurrent use.
type Service struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new Service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger, now: time.Now}
}

// Handle executes req and always returns a Response; failures are reported
// through OK, Error and ErrorKind.
func (s *Service) Handle(ctx context.Context, req Request) Response {
	start := time.Now()
	resp := Response{
		ID:            uuid.NewString(),
		CorrelationID: req.CorrelationID,
		Op:            req.Op,
	}
	venue := "unknown"

	switch {
	case ctx.Err() != nil:
		s.fail(&resp, KindCanceled, ctx.Err())
	case req.Op == OpNormalize:
		venue = s.normalize(req, &resp)
	case req.Op == OpDenormalize:
		venue = s.denormalize(req, &resp)
	case req.Op == OpParse:
		venue = s.parse(req, &resp)
	case req.Op == OpExpired:
		venue = s.expired(req, &resp)
	default:
		s.fail(&resp, KindBadRequest, fmt.Errorf("unknown op %q", req.Op))
	}

	result := "ok"
	if !resp.OK {
		result = resp.ErrorKind
		s.logger.Debug("normify.translate.failed",
			zap.String("op", req.Op),
			zap.String("correlation_id", req.CorrelationID),
			zap.String("exchange", venue),
			zap.String("error_kind", resp.ErrorKind),
			zap.String("error", resp.Error),
		)
	}
	op := opLabel(req.Op)
	metrics.IncTranslation(op, venue, result)
	metrics.ObserveDuration(metrics.TranslationDuration, start, op)
	return resp
}

// opLabel bounds the metric label set; op arrives unchecked from broker bodies.
func opLabel(op string) string {
	switch op {
	case OpNormalize, OpDenormalize, OpParse, OpExpired:
		return op
	default:
		return "unknown"
	}
}

func (s *Service) normalize(req Request, resp *Response) string {
	ex, err := model.ParseExchange(req.Exchange)
	if err != nil {
		s.fail(resp, KindBadRequest, err)
		return "unknown"
	}
	mt, err := model.ParseMarketType(req.MarketType)
	if err != nil {
		s.fail(resp, KindBadRequest, err)
		return ex.String()
	}
	if req.Name == "" {
		s.fail(resp, KindBadRequest, fmt.Errorf("name is required"))
		return ex.String()
	}

	h, _ := exchange.For(ex)
	inst, ok := h.Normalize(mt, req.Name)
	if !ok {
		s.fail(resp, KindRejected, fmt.Errorf("%s does not recognise %q as %s", ex, req.Name, mt))
		return ex.String()
	}
	resp.OK = true
	resp.Instrument = inst.String()
	resp.Details = viewOf(inst)
	return ex.String()
}

// denormalize repeats standard.ToExchangeFormat step by step to keep the typed
// parse error for ErrorKind.
func (s *Service) denormalize(req Request, resp *Response) string {
	inst, ok := s.canonical(req, resp)
	if !ok {
		return "unknown"
	}
	h, _ := exchange.For(inst.Exchange)
	name, ok := h.Denormalize(inst)
	if !ok {
		s.fail(resp, KindUnsupportedByExchange, fmt.Errorf("%s cannot render %s", inst.Exchange, inst))
		return inst.Exchange.String()
	}
	resp.OK = true
	resp.Instrument = inst.String()
	resp.Name = name
	return inst.Exchange.String()
}

func (s *Service) parse(req Request, resp *Response) string {
	inst, ok := s.canonical(req, resp)
	if !ok {
		return "unknown"
	}
	resp.OK = true
	resp.Instrument = inst.String()
	resp.Details = viewOf(inst)
	return inst.Exchange.String()
}

// expired reports false for instruments without an expiry.
func (s *Service) expired(req Request, resp *Response) string {
	inst, ok := s.canonical(req, resp)
	if !ok {
		return "unknown"
	}
	resp.Instrument = inst.String()

	expired := false
	if date, dated := inst.Expiry(); dated {
		var err error
		if expired, err = expiry.IsExpiredAt(date, s.now()); err != nil {
			s.fail(resp, KindInvalidDate, err)
			return inst.Exchange.String()
		}
		resp.Expiry = date
	}
	resp.OK = true
	resp.Expired = &expired
	return inst.Exchange.String()
}

func (s *Service) canonical(req Request, resp *Response) (model.Instrument, bool) {
	if req.Instrument == "" {
		s.fail(resp, KindBadRequest, fmt.Errorf("instrument is required"))
		return model.Instrument{}, false
	}
	inst, err := standard.Parse(req.Instrument)
	if err != nil {
		s.fail(resp, standard.Kind(err), err)
		return model.Instrument{}, false
	}
	return inst, true
}

func (s *Service) fail(resp *Response, kind string, err error) {
	resp.OK = false
	resp.ErrorKind = kind
	resp.Error = err.Error()
}

// Venues lists every exchange with the market types and instrument kinds its
// handler accepts.
func Venues() []Venue {
	probes := []model.InstrumentType{model.Future{}, model.Option{}, model.Spot{}, model.Perpetual{}}

	var out []Venue
	for _, h := range exchange.All() {
		v := Venue{Exchange: h.Exchange().String()}
		for _, mt := range model.MarketTypes() {
			if h.SupportsMarketType(mt) {
				v.MarketTypes = append(v.MarketTypes, mt.String())
			}
		}
		for _, p := range probes {
			if h.SupportsInstrumentType(p) {
				v.Kinds = append(v.Kinds, p.Kind().String())
			}
		}
		out = append(out, v)
	}
	return out
}
