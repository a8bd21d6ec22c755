package ruleset

import "errors"

var (
	// ErrInvalidDocument is returned when the YAML document cannot be
	// decoded or declares no rules.
	ErrInvalidDocument = errors.New("ruleset: invalid document")

	// ErrUnknownRule is returned for a rule name outside the catalogue.
	ErrUnknownRule = errors.New("ruleset: unknown rule")

	// ErrUnknownField is returned when a spec references a field the
	// field source cannot resolve.
	ErrUnknownField = errors.New("ruleset: unknown field")

	// ErrMissingParam is returned when a rule's required parameter is
	// absent from the spec.
	ErrMissingParam = errors.New("ruleset: missing parameter")

	// ErrBadParam is returned when a parameter is present but unusable,
	// e.g. an uncompilable pattern or unparseable date bound.
	ErrBadParam = errors.New("ruleset: bad parameter")
)
