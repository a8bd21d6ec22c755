package validate

import (
	"fmt"
	"regexp"
)

var (
	alphaRegex         = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// MinLen checks that the value is at least min characters long.
// Length is counted in runes, matching what a user sees typed.
func MinLen(field Field, min int) Rule {
	return Rule{
		Field: field,
		Name:  "min_len",
		Check: func() bool {
			return len([]rune(field.Value())) >= min
		},
		Message: fmt.Sprintf("must be at least %d characters long", min),
	}
}

// MaxLen checks that the value is at most max characters long.
func MaxLen(field Field, max int) Rule {
	return Rule{
		Field: field,
		Name:  "max_len",
		Check: func() bool {
			return len([]rune(field.Value())) <= max
		},
		Message: fmt.Sprintf("must be at most %d characters long", max),
	}
}

// Alpha checks that the value contains only letters.
func Alpha(field Field) Rule {
	return Rule{
		Field: field,
		Name:  "alpha",
		Check: func() bool {
			return alphaRegex.MatchString(field.Value())
		},
		Message: "must contain only letters",
	}
}

// Alphanumeric checks that the value contains only letters and digits.
func Alphanumeric(field Field) Rule {
	return Rule{
		Field: field,
		Name:  "alphanumeric",
		Check: func() bool {
			return alphanumericRegex.MatchString(field.Value())
		},
		Message: "must contain only letters and numbers",
	}
}

// NumericString checks that the value contains only digits.
func NumericString(field Field) Rule {
	return Rule{
		Field: field,
		Name:  "numeric",
		Check: func() bool {
			return numericStringRegex.MatchString(field.Value())
		},
		Message: "must contain only digits",
	}
}

// Pattern checks the value against a caller-compiled regular expression.
func Pattern(field Field, pattern *regexp.Regexp) Rule {
	return Rule{
		Field: field,
		Name:  "pattern",
		Check: func() bool {
			return pattern.MatchString(field.Value())
		},
		Message: "has an invalid format",
	}
}
