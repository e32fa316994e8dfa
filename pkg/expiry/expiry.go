// Package expiry converts contract expiry tokens between venue styles and the
// canonical YYYYMMDD form.
package expiry

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Pattern is a Go reference layout describing a venue's date style.
type Pattern string

const (
	// DayMonthYY renders 28MAR25.
	DayMonthYY Pattern = "02Jan06"
	// YYYYMMDD is the canonical form, e.g. 20250328.
	YYYYMMDD Pattern = "20060102"
	// DayMonthYYYY renders 28MAR2025.
	DayMonthYYYY Pattern = "02Jan2006"
)

// ErrInvalidDate is returned when a token matches none of the accepted patterns.
var ErrInvalidDate = errors.New("invalid date")

// accepted is the order Normalize tries patterns in.
var accepted = []Pattern{DayMonthYY, YYYYMMDD, DayMonthYYYY}

// endOfDay is the offset from midnight of the last instant a contract still trades.
const endOfDay = 24*time.Hour - time.Millisecond

// parseLayout relaxes the zero-padded day so 7MAR25 parses like 07MAR25.
// Month abbreviations are matched case-insensitively by the time package.
func (p Pattern) parseLayout() string {
	return strings.Replace(string(p), "02Jan", "2Jan", 1)
}

// Parse reads text strictly in pattern p and returns midnight UTC of that day.
func Parse(text string, p Pattern) (time.Time, error) {
	t, err := time.Parse(p.parseLayout(), text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q does not match %s", ErrInvalidDate, text, p)
	}
	return t.UTC(), nil
}

// Canonical parses text in pattern p and returns its YYYYMMDD form.
func Canonical(text string, p Pattern) (string, error) {
	t, err := Parse(text, p)
	if err != nil {
		return "", err
	}
	return t.Format(string(YYYYMMDD)), nil
}

// Normalize returns the canonical YYYYMMDD form of text, trying each accepted
// pattern in order and keeping the first that parses.
func Normalize(text string) (string, error) {
	for _, p := range accepted {
		if canonical, err := Canonical(text, p); err == nil {
			return canonical, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, text)
}

// Denormalize renders a canonical date in pattern p, uppercased.
func Denormalize(canonical string, p Pattern) (string, error) {
	t, err := Parse(canonical, YYYYMMDD)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(t.Format(string(p))), nil
}

// IsExpired reports whether the current time is past the end of the canonical date.
func IsExpired(canonical string) (bool, error) {
	return IsExpiredAt(canonical, time.Now())
}

// IsExpiredAt reports whether now is strictly after 23:59:59.999 UTC of the
// canonical date.
func IsExpiredAt(canonical string, now time.Time) (bool, error) {
	t, err := Parse(canonical, YYYYMMDD)
	if err != nil {
		return false, err
	}
	return now.UTC().After(t.Add(endOfDay)), nil
}
