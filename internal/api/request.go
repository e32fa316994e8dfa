package api

import (
	"fmt"

	"github.com/Checker-Finance/normify/internal/translate"
)

// NormalizeRequest is the payload for POST /api/v1/normalize.
type NormalizeRequest struct {
	CorrelationID string `json:"correlation_id"`
	Exchange      string `json:"exchange"`
	MarketType    string `json:"market_type"`
	Name          string `json:"name"`
}

// InstrumentRequest is the payload for the endpoints taking a canonical instrument.
type InstrumentRequest struct {
	CorrelationID string `json:"correlation_id"`
	Instrument    string `json:"instrument"`
}

// Validate checks that NormalizeRequest has all required fields.
func (r *NormalizeRequest) Validate() error {
	if r.Exchange == "" {
		return fmt.Errorf("exchange is required")
	}
	if r.MarketType == "" {
		return fmt.Errorf("market_type is required")
	}
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// Validate checks that InstrumentRequest has all required fields.
func (r *InstrumentRequest) Validate() error {
	if r.Instrument == "" {
		return fmt.Errorf("instrument is required")
	}
	return nil
}

func (r NormalizeRequest) toTranslate() translate.Request {
	return translate.Request{
		Op:            translate.OpNormalize,
		CorrelationID: r.CorrelationID,
		Exchange:      r.Exchange,
		MarketType:    r.MarketType,
		Name:          r.Name,
	}
}

func (r InstrumentRequest) toTranslate(op string) translate.Request {
	return translate.Request{
		Op:            op,
		CorrelationID: r.CorrelationID,
		Instrument:    r.Instrument,
	}
}
