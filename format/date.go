package format

import (
	"fmt"
	"time"
)

// Canonical layouts used across the application's forms and APIs.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	TimeLayout     = "15:04"
)

// ToDate renders t as a canonical YYYY-MM-DD string.
func ToDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a canonical YYYY-MM-DD string. Parsing is strict: values
// that only normalize into a valid date, like "2023-02-30", are rejected.
func ParseDate(value string) (time.Time, error) {
	return parseStrict(DateLayout, value)
}

// ToDateTime renders t as YYYY-MM-DD HH:MM:SS.
func ToDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// ParseDateTime parses a YYYY-MM-DD HH:MM:SS string, strictly.
func ParseDateTime(value string) (time.Time, error) {
	return parseStrict(DateTimeLayout, value)
}

// ToTime renders the time-of-day part of t as HH:MM.
func ToTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTime parses an HH:MM time-of-day string, strictly.
func ParseTime(value string) (time.Time, error) {
	return parseStrict(TimeLayout, value)
}

func parseStrict(layout, value string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	if t.Format(layout) != value {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}
