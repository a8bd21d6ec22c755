package validate

import (
	"errors"
	"fmt"
	"strings"
)

// asyncFailureMessage is shown when an async predicate returns an error
// instead of a verdict.
const asyncFailureMessage = "error during validation"

// FieldError records one failed check: the field it belongs to and the
// resolved, ready-to-display message. Entries are immutable; a re-check of
// the same field replaces its entry rather than mutating it.
type FieldError struct {
	Field   string
	Message string
}

// ValidationFailure is the aggregated failure raised by ReportIfFailed and
// Batch when at least one check in the pass failed. It carries the full
// ordered error list; callers abort the dependent workflow when they
// receive it.
type ValidationFailure struct {
	Message string
	Errors  []FieldError
}

func (e *ValidationFailure) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "validation failed"
	}
	if len(e.Errors) == 0 {
		return msg
	}

	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return msg + ": " + strings.Join(parts, "; ")
}

// AsValidationFailure unwraps err into a *ValidationFailure if one is in
// its chain.
func AsValidationFailure(err error) (*ValidationFailure, bool) {
	var vf *ValidationFailure
	if errors.As(err, &vf) {
		return vf, true
	}
	return nil, false
}
