package timeutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock_Valid(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
	}{
		{"0:00", 0},
		{"8:00", 480},
		{"08:00", 480},
		{"8:10", 490},
		{"8:11", 491},
		{"12:30", 750},
		{"17:00", 1020},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.minutes, got, "input %q", tt.input)
	}
}

func TestParseClock_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"8",
		"8:0",
		"8:5",
		"24:00",
		"8:60",
		"-1:00",
		"8:00 AM",
		"08:00:00",
		"abc",
		" 8:00",
	}

	for _, input := range inputs {
		_, err := ParseClock(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrInvalidClock, "input %q", input)
	}
}

func TestIsValidClock(t *testing.T) {
	assert.True(t, IsValidClock("8:00"))
	assert.True(t, IsValidClock("17:00"))
	assert.False(t, IsValidClock("25:00"))
	assert.False(t, IsValidClock("8-00"))
}

func TestMinutesToHours(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0"},
		{480, "8"},
		{470, "7.83"},
		{465, "7.75"},
		{530, "8.83"},
		{120, "2"},
		{210, "3.5"},
	}

	for _, tt := range tests {
		got := MinutesToHours(tt.minutes)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
			"minutes %d: want %s, got %s", tt.minutes, tt.want, got)
	}
}
