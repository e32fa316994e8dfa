package expiry

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"day month short year", "28MAR25", "20250328"},
		{"lowercase month", "28mar25", "20250328"},
		{"unpadded day", "7MAR25", "20250307"},
		{"canonical", "20250328", "20250328"},
		{"day month long year", "28MAR2025", "20250328"},
		{"leap day", "29FEB24", "20240229"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalize_Invalid(t *testing.T) {
	for _, input := range []string{"", "PERPETUAL", "31FEB25", "29FEB25", "20251301", "2025-03-28", "28MARCH25", "28MAR255", "100000"} {
		t.Run(input, func(t *testing.T) {
			_, err := Normalize(input)
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestCanonical_RequiresPattern(t *testing.T) {
	got, err := Canonical("28MAR25", DayMonthYY)
	require.NoError(t, err)
	assert.Equal(t, "20250328", got)

	_, err = Canonical("20250328", DayMonthYY)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = Canonical("28MAR25", YYYYMMDD)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDenormalize(t *testing.T) {
	tests := []struct {
		pattern  Pattern
		expected string
	}{
		{DayMonthYY, "28MAR25"},
		{YYYYMMDD, "20250328"},
		{DayMonthYYYY, "28MAR2025"},
	}

	for _, tt := range tests {
		t.Run(string(tt.pattern), func(t *testing.T) {
			got, err := Denormalize("20250328", tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	got, err := Denormalize("20250307", DayMonthYY)
	require.NoError(t, err)
	assert.Equal(t, "07MAR25", got)
}

func TestDenormalize_InvalidCanonical(t *testing.T) {
	for _, input := range []string{"", "28MAR25", "20250230"} {
		_, err := Denormalize(input, DayMonthYY)
		assert.ErrorIs(t, err, ErrInvalidDate, input)
	}
}

func TestExpiryRoundTrip(t *testing.T) {
	inputs := map[string]string{
		"28MAR25":   "20250328",
		"20250328":  "20250328",
		"28MAR2025": "20250328",
		"05JAN26":   "20260105",
	}
	for input, canonical := range inputs {
		normalized, err := Normalize(input)
		require.NoError(t, err)
		require.Equal(t, canonical, normalized)

		day, err := Parse(canonical, YYYYMMDD)
		require.NoError(t, err)
		for _, p := range []Pattern{DayMonthYY, YYYYMMDD, DayMonthYYYY} {
			rendered, err := Denormalize(normalized, p)
			require.NoError(t, err)
			assert.Equal(t, strings.ToUpper(day.Format(string(p))), rendered, input)
			again, err := Canonical(rendered, p)
			require.NoError(t, err)
			assert.Equal(t, canonical, again, input)
		}
	}
}

func TestIsExpiredAt(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{"day before", time.Date(2025, 3, 27, 12, 0, 0, 0, time.UTC), false},
		{"midnight of expiry", time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC), false},
		{"last millisecond", time.Date(2025, 3, 28, 23, 59, 59, 999_000_000, time.UTC), false},
		{"just after end of day", time.Date(2025, 3, 28, 23, 59, 59, 999_000_001, time.UTC), true},
		{"next day", time.Date(2025, 3, 29, 0, 0, 0, 0, time.UTC), true},
		{"offset zone still before end", time.Date(2025, 3, 29, 0, 30, 0, 0, time.FixedZone("CET", 3600)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsExpiredAt("20250328", tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIsExpired(t *testing.T) {
	expired, err := IsExpired("20000101")
	require.NoError(t, err)
	assert.True(t, expired)

	expired, err = IsExpired("29991231")
	require.NoError(t, err)
	assert.False(t, expired)

	_, err = IsExpired("28MAR25")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
