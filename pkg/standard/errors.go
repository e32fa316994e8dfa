package standard

import (
	"errors"
	"fmt"

	"github.com/Checker-Finance/normify/pkg/expiry"
)

var (
	// ErrInvalidFormat marks a wrong field or token count.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrInvalidDate marks an expiry that is not a canonical YYYYMMDD date.
	ErrInvalidDate = expiry.ErrInvalidDate
	// ErrParse marks an unparseable exchange, market type, kind, strike or option kind.
	ErrParse = errors.New("parse error")
	// ErrUnsupportedByExchange marks a well-formed instrument the exchange cannot list.
	ErrUnsupportedByExchange = errors.New("unsupported by exchange")
)

// InstrumentError reports why a canonical string was refused. Match the cause
// with errors.Is against the sentinel errors above.
type InstrumentError struct {
	Input  string
	Reason string
	Err    error
}

func (e *InstrumentError) Error() string {
	return fmt.Sprintf("%s: %s (input %q)", e.Err, e.Reason, e.Input)
}

func (e *InstrumentError) Unwrap() error { return e.Err }

func fail(input string, cause error, format string, args ...any) error {
	return &InstrumentError{Input: input, Reason: fmt.Sprintf(format, args...), Err: cause}
}

// Kind returns a stable snake_case name for err's cause, for transports that
// report errors as strings. Unknown errors yield "".
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidFormat):
		return "invalid_format"
	case errors.Is(err, ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, ErrParse):
		return "parse_error"
	case errors.Is(err, ErrUnsupportedByExchange):
		return "unsupported_by_exchange"
	default:
		return ""
	}
}
