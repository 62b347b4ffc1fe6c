package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Accepted textual layouts for query parameters.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	MonthLayout    = "2006-01"
)

var (
	ErrInvalidTimeBound = errors.New("invalid time bound, use YYYY-MM-DD or YYYY-MM-DD HH:MM:SS")
	ErrInvalidMonth     = errors.New("invalid month")
	ErrInvalidNumber    = errors.New("invalid number")
)

// StationMode selects which end of a trip is matched against a station name.
type StationMode int

const (
	ModeNone StationMode = iota
	ModeStart
	ModeEnd
	ModeBoth
)

// ParseStationMode maps "start", "end" or "both" (trimmed, any case) to a mode.
// Anything else yields ModeNone, which matches no trips.
func ParseStationMode(mode string) StationMode {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "start":
		return ModeStart
	case "end":
		return ModeEnd
	case "both":
		return ModeBoth
	default:
		return ModeNone
	}
}

// MatchesStart reports whether start stations are considered.
func (m StationMode) MatchesStart() bool {
	return m == ModeStart || m == ModeBoth
}

// MatchesEnd reports whether end stations are considered.
func (m StationMode) MatchesEnd() bool {
	return m == ModeEnd || m == ModeBoth
}

func (m StationMode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModeEnd:
		return "end"
	case ModeBoth:
		return "both"
	default:
		return "none"
	}
}

// ParseTimeBound parses a date-only token (local midnight) or a date-time token
// in loc. Surrounding whitespace is ignored.
func ParseTimeBound(value string, loc *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(value)

	layout := DateTimeLayout
	if len(trimmed) == len(DateLayout) {
		layout = DateLayout
	}

	t, err := time.ParseInLocation(layout, trimmed, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeBound, value)
	}

	return t, nil
}

// ParseTimeRange parses both bounds of an inclusive interval and returns them
// as epoch milliseconds.
func ParseTimeRange(start, end string, loc *time.Location) (int64, int64, error) {
	from, err := ParseTimeBound(start, loc)
	if err != nil {
		return 0, 0, fmt.Errorf("start bound: %w", err)
	}

	to, err := ParseTimeBound(end, loc)
	if err != nil {
		return 0, 0, fmt.Errorf("end bound: %w", err)
	}

	return from.UnixMilli(), to.UnixMilli(), nil
}

// ValidateMonthToken checks a "YYYY-MM" token.
func ValidateMonthToken(month string) error {
	if _, err := time.Parse(MonthLayout, month); err != nil {
		return fmt.Errorf("%w: %q, use YYYY-MM", ErrInvalidMonth, month)
	}
	return nil
}

// ParseMonthNumber parses a calendar month between 1 and 12.
func ParseMonthNumber(value string) (int, error) {
	month, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, value)
	}

	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: %d is not between 1 and 12", ErrInvalidMonth, month)
	}

	return month, nil
}

// ParseInt parses a whole number typed by the user.
func ParseInt(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, value)
	}
	return n, nil
}

// ParseFloat parses a decimal number typed by the user.
func ParseFloat(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, value)
	}
	return f, nil
}

// SanitizeInput trims whitespace around a free-text answer.
func SanitizeInput(input string) string {
	return strings.TrimSpace(input)
}
