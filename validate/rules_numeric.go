package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseNumber parses the field value as a float. Unparseable input and NaN
// both report false: a value that is not a number satisfies no bound.
func parseNumber(value string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// MinValue checks that the value parses as a number >= min.
func MinValue(field Field, min float64) Rule {
	return Rule{
		Field: field,
		Name:  "min_value",
		Check: func() bool {
			n, ok := parseNumber(field.Value())
			return ok && n >= min
		},
		Message: fmt.Sprintf("must be at least %v", min),
	}
}

// MaxValue checks that the value parses as a number <= max.
func MaxValue(field Field, max float64) Rule {
	return Rule{
		Field: field,
		Name:  "max_value",
		Check: func() bool {
			n, ok := parseNumber(field.Value())
			return ok && n <= max
		},
		Message: fmt.Sprintf("must be at most %v", max),
	}
}

// Range checks that the value parses as a number within [min, max], bounds
// inclusive.
func Range(field Field, min, max float64) Rule {
	return Rule{
		Field: field,
		Name:  "range",
		Check: func() bool {
			n, ok := parseNumber(field.Value())
			return ok && n >= min && n <= max
		},
		Message: fmt.Sprintf("must be between %v and %v", min, max),
	}
}
