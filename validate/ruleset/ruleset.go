package ruleset

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Redwolfer/satkit/validate"
)

// FieldSource resolves field IDs referenced by rule specs. form.FieldSet
// satisfies it.
type FieldSource interface {
	Field(id string) (validate.Field, bool)
}

// Spec is one declared rule: which field, which predicate, and the
// predicate's parameters. Unused parameters are simply left unset in the
// YAML document.
type Spec struct {
	Field   string `yaml:"field"`
	Rule    string `yaml:"rule"`
	Message string `yaml:"message"`

	Min     *float64 `yaml:"min"`
	Max     *float64 `yaml:"max"`
	MinLen  *int     `yaml:"min_len"`
	MaxLen  *int     `yaml:"max_len"`
	Pattern string   `yaml:"pattern"`
	Layout  string   `yaml:"layout"`
	Other   string   `yaml:"other"`
	Equals  string   `yaml:"equals"`
	Values  []string `yaml:"values"`
	MaxSize *int64   `yaml:"max_size"`
	After   string   `yaml:"after"`
	Before  string   `yaml:"before"`
}

// RuleSet is an ordered list of rule specs for one form.
type RuleSet struct {
	Rules []Spec `yaml:"rules"`
}

// Parse decodes a YAML rule set:
//
//	rules:
//	  - {field: email, rule: required}
//	  - {field: email, rule: email}
//	  - {field: age, rule: range, min: 18, max: 99}
func Parse(r io.Reader) (*RuleSet, error) {
	var rs RuleSet
	if err := yaml.NewDecoder(r).Decode(&rs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if len(rs.Rules) == 0 {
		return nil, fmt.Errorf("%w: no rules declared", ErrInvalidDocument)
	}
	return &rs, nil
}

// ParseFile reads and parses a YAML rule set from disk.
func ParseFile(path string) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	defer f.Close()
	return Parse(f)
}

// Compile resolves every spec against the field source and builds the
// executable rule list, in declaration order. Compilation fails on the
// first unknown rule, unresolved field or missing parameter; a rule set
// that compiles can always be run.
func (rs *RuleSet) Compile(fields FieldSource) ([]validate.Rule, error) {
	rules := make([]validate.Rule, 0, len(rs.Rules))
	for i, spec := range rs.Rules {
		rule, err := compile(spec, fields)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s on %q): %w", i, spec.Rule, spec.Field, err)
		}
		rules = append(rules, rule.WithMessage(spec.Message))
	}
	return rules, nil
}

// Run compiles the rule set and executes it as one batch on the session.
// The returned error is either a compile error or the session's aggregated
// *validate.ValidationFailure.
func (rs *RuleSet) Run(sess *validate.Session, fields FieldSource) error {
	rules, err := rs.Compile(fields)
	if err != nil {
		return err
	}
	return sess.Batch(rules...)
}

func compile(spec Spec, fields FieldSource) (validate.Rule, error) {
	var zero validate.Rule

	field, ok := fields.Field(spec.Field)
	if !ok {
		return zero, ErrUnknownField
	}

	layout := spec.Layout
	if layout == "" {
		layout = "2006-01-02"
	}

	switch spec.Rule {
	case "required":
		return validate.Required(field), nil

	case "required_if":
		other, err := otherField(spec, fields)
		if err != nil {
			return zero, err
		}
		return validate.RequiredIf(field, other, spec.Equals), nil

	case "equals_field":
		other, err := otherField(spec, fields)
		if err != nil {
			return zero, err
		}
		return validate.EqualsField(field, other), nil

	case "boolean":
		return validate.Boolean(field), nil

	case "in":
		if len(spec.Values) == 0 {
			return zero, fmt.Errorf("%w: values", ErrMissingParam)
		}
		return validate.In(field, spec.Values), nil

	case "min_len":
		if spec.MinLen == nil {
			return zero, fmt.Errorf("%w: min_len", ErrMissingParam)
		}
		return validate.MinLen(field, *spec.MinLen), nil

	case "max_len":
		if spec.MaxLen == nil {
			return zero, fmt.Errorf("%w: max_len", ErrMissingParam)
		}
		return validate.MaxLen(field, *spec.MaxLen), nil

	case "alpha":
		return validate.Alpha(field), nil

	case "alphanumeric":
		return validate.Alphanumeric(field), nil

	case "numeric":
		return validate.NumericString(field), nil

	case "pattern":
		if spec.Pattern == "" {
			return zero, fmt.Errorf("%w: pattern", ErrMissingParam)
		}
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return zero, fmt.Errorf("%w: pattern: %v", ErrBadParam, err)
		}
		return validate.Pattern(field, re), nil

	case "min":
		if spec.Min == nil {
			return zero, fmt.Errorf("%w: min", ErrMissingParam)
		}
		return validate.MinValue(field, *spec.Min), nil

	case "max":
		if spec.Max == nil {
			return zero, fmt.Errorf("%w: max", ErrMissingParam)
		}
		return validate.MaxValue(field, *spec.Max), nil

	case "range":
		if spec.Min == nil || spec.Max == nil {
			return zero, fmt.Errorf("%w: min, max", ErrMissingParam)
		}
		return validate.Range(field, *spec.Min, *spec.Max), nil

	case "email":
		return validate.Email(field), nil

	case "url":
		return validate.URL(field), nil

	case "phone":
		return validate.Phone(field), nil

	case "date":
		return validate.DateFormat(field, layout), nil

	case "date_min":
		min, err := parseBound(layout, spec.After, "after")
		if err != nil {
			return zero, err
		}
		return validate.DateMin(field, layout, min), nil

	case "date_max":
		max, err := parseBound(layout, spec.Before, "before")
		if err != nil {
			return zero, err
		}
		return validate.DateMax(field, layout, max), nil

	case "date_range":
		min, err := parseBound(layout, spec.After, "after")
		if err != nil {
			return zero, err
		}
		max, err := parseBound(layout, spec.Before, "before")
		if err != nil {
			return zero, err
		}
		return validate.DateRange(field, layout, min, max), nil

	case "file_types":
		if len(spec.Values) == 0 {
			return zero, fmt.Errorf("%w: values", ErrMissingParam)
		}
		return validate.FileTypes(field, spec.Values), nil

	case "file_max_size":
		if spec.MaxSize == nil {
			return zero, fmt.Errorf("%w: max_size", ErrMissingParam)
		}
		return validate.FileMaxSize(field, *spec.MaxSize), nil

	case "file_extensions":
		if len(spec.Values) == 0 {
			return zero, fmt.Errorf("%w: values", ErrMissingParam)
		}
		return validate.FileExtensions(field, spec.Values), nil

	default:
		return zero, ErrUnknownRule
	}
}

// otherField resolves the cross-field reference of required_if and
// equals_field. An absent other key is a missing parameter; a key naming a
// field outside the source is an unknown field.
func otherField(spec Spec, fields FieldSource) (validate.Field, error) {
	if spec.Other == "" {
		return nil, fmt.Errorf("%w: other", ErrMissingParam)
	}
	other, ok := fields.Field(spec.Other)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, spec.Other)
	}
	return other, nil
}

func parseBound(layout, value, name string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s", ErrMissingParam, name)
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %v", ErrBadParam, name, err)
	}
	return t, nil
}
