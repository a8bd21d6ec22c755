package validate

// Rule pairs a field with a single boolean predicate and the message shown
// when the predicate fails. Rule constructors in this package capture the
// field's value lazily: the predicate reads the field when the rule is
// checked, so the same Rule value can be re-checked after the field changes.
type Rule struct {
	// Field the rule applies to.
	Field Field

	// Name identifies the predicate family, e.g. "required" or "range".
	Name string

	// Check evaluates the predicate against the field's current value.
	Check func() bool

	// Message is the resolved failure message, parameters already
	// interpolated by the constructor.
	Message string
}

// WithMessage returns a copy of the rule with the failure message replaced.
// An empty message keeps the rule's default.
func (r Rule) WithMessage(message string) Rule {
	if message != "" {
		r.Message = message
	}
	return r
}

// Custom wraps an arbitrary predicate over the field's scalar value.
func Custom(field Field, name string, predicate func(value string) bool, message string) Rule {
	if message == "" {
		message = "invalid value"
	}
	return Rule{
		Field: field,
		Name:  name,
		Check: func() bool {
			return predicate(field.Value())
		},
		Message: message,
	}
}
