package validate

import (
	"fmt"
	"strings"
)

// Required checks that the field is non-empty. What "empty" means follows
// the field's kind: a Text field must have a non-blank value, a Choice field
// at least one selected value, a File field at least one attached file.
func Required(field Field) Rule {
	return Rule{
		Field: field,
		Name:  "required",
		Check: func() bool {
			switch field.Kind() {
			case KindChoice:
				return len(field.Values()) > 0
			case KindFile:
				return len(field.Files()) > 0
			default:
				return strings.TrimSpace(field.Value()) != ""
			}
		},
		Message: "field is required",
	}
}

// RequiredIf applies the Required check only while the other field's value
// equals expected; otherwise the rule passes unconditionally.
func RequiredIf(field Field, other Field, expected string) Rule {
	required := Required(field)
	return Rule{
		Field: field,
		Name:  "required_if",
		Check: func() bool {
			if other.Value() != expected {
				return true
			}
			return required.Check()
		},
		Message: fmt.Sprintf("field is required when %s is %q", other.ID(), expected),
	}
}

// EqualsField checks that the field's value equals the other field's value,
// e.g. a password confirmation.
func EqualsField(field Field, other Field) Rule {
	return Rule{
		Field: field,
		Name:  "equals_field",
		Check: func() bool {
			return field.Value() == other.Value()
		},
		Message: fmt.Sprintf("must match %s", other.ID()),
	}
}

// Boolean checks that the value belongs to the boolean domain:
// true/false, 1/0, on/off, yes/no (case-insensitive).
func Boolean(field Field) Rule {
	return Rule{
		Field: field,
		Name:  "boolean",
		Check: func() bool {
			switch strings.ToLower(strings.TrimSpace(field.Value())) {
			case "true", "false", "1", "0", "on", "off", "yes", "no":
				return true
			default:
				return false
			}
		},
		Message: "must be a boolean value",
	}
}

// In checks that the value is one of the allowed values.
func In(field Field, allowed []string) Rule {
	return Rule{
		Field: field,
		Name:  "in",
		Check: func() bool {
			value := field.Value()
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
	}
}
