// Package validate implements a field-level validation engine for
// server-rendered and API form handling.
//
// The engine separates three concerns. A Field is the engine's read-only
// view of one bindable input, classified once at construction as text,
// choice or file. A Rule pairs a field with a single boolean predicate and
// a failure message; the constructors in this package form a catalogue of
// common predicates (presence, length bounds, numeric and date ranges,
// pattern and format checks, file constraints). A Session accumulates the
// outcome of one validation pass and reports the aggregated failure.
//
// # Usage
//
//	fields, _ := form.FromRequest(r)
//	sess := validate.NewSession(nil)
//
//	err := sess.Batch(
//		validate.Required(fields.MustGet("email")),
//		validate.Email(fields.MustGet("email")),
//		validate.Range(fields.MustGet("age"), 18, 99),
//	)
//	if err != nil {
//		// err is a *ValidationFailure carrying every failed field in
//		// rule order; abort the workflow and render the errors.
//	}
//
// Individual checks never return errors: a failed predicate is recorded in
// the session and reported to the injected Sink, and only ReportIfFailed
// (or Batch, which ends with it) produces a *ValidationFailure. Re-checking
// a field replaces its previous entry, so the error list always holds one
// up-to-date entry per failing field.
//
// CheckAsync covers predicates that need I/O, such as uniqueness lookups.
// It returns a future resolving to the verdict; a predicate error counts as
// a failed check with a generic message and is never propagated.
//
// Sessions are cheap; create one per validation pass and do not share them
// across concurrent passes.
package validate
