package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
)

// ErrInvalidClock is returned when a clock string does not match the
// 24-hour "H:MM" shape used by the attendance feed.
var ErrInvalidClock = errors.New("invalid clock string")

// Clock strings carry a 1-2 digit hour (0-23) and exactly two minute digits.
// No seconds, no AM/PM, no timezone.
var clockRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

var minutesPerHour = decimal.NewFromInt(60)

// ParseClock parses a 24-hour "H:MM" clock string into whole minutes
// since midnight.
func ParseClock(s string) (int, error) {
	m := clockRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return hour*60 + minute, nil
}

// IsValidClock reports whether s parses as an "H:MM" clock string.
func IsValidClock(s string) bool {
	_, err := ParseClock(s)
	return err == nil
}

// MinutesToHours converts whole minutes into decimal hours rounded to
// two places.
func MinutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(minutesPerHour).Round(2)
}
