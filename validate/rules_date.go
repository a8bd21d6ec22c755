package validate

import (
	"fmt"
	"time"
)

// parseStrict parses value against layout and rejects values that Go's
// lenient normalization would otherwise accept, e.g. "2023-02-30".
func parseStrict(layout, value string) (time.Time, bool) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, false
	}
	if t.Format(layout) != value {
		return time.Time{}, false
	}
	return t, true
}

// DateFormat checks that the value parses strictly against layout. The
// layout is a Go reference layout, e.g. "2006-01-02" for dates,
// "2006-01-02 15:04:05" for datetimes or "15:04" for times of day.
func DateFormat(field Field, layout string) Rule {
	return Rule{
		Field: field,
		Name:  "date_format",
		Check: func() bool {
			_, ok := parseStrict(layout, field.Value())
			return ok
		},
		Message: fmt.Sprintf("must be a valid date in the format %s", layout),
	}
}

// DateMin checks that the value parses against layout to a date no earlier
// than min. An unparseable value fails regardless of min.
func DateMin(field Field, layout string, min time.Time) Rule {
	return Rule{
		Field: field,
		Name:  "date_min",
		Check: func() bool {
			t, ok := parseStrict(layout, field.Value())
			return ok && !t.Before(min)
		},
		Message: fmt.Sprintf("must not be before %s", min.Format(layout)),
	}
}

// DateMax checks that the value parses against layout to a date no later
// than max. An unparseable value fails regardless of max.
func DateMax(field Field, layout string, max time.Time) Rule {
	return Rule{
		Field: field,
		Name:  "date_max",
		Check: func() bool {
			t, ok := parseStrict(layout, field.Value())
			return ok && !t.After(max)
		},
		Message: fmt.Sprintf("must not be after %s", max.Format(layout)),
	}
}

// DateRange checks that the value parses against layout to a date within
// [min, max], bounds inclusive.
func DateRange(field Field, layout string, min, max time.Time) Rule {
	return Rule{
		Field: field,
		Name:  "date_range",
		Check: func() bool {
			t, ok := parseStrict(layout, field.Value())
			return ok && !t.Before(min) && !t.After(max)
		},
		Message: fmt.Sprintf("must be between %s and %s", min.Format(layout), max.Format(layout)),
	}
}
