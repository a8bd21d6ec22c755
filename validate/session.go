package validate

import (
	"context"
	"slices"
	"sync"

	"github.com/Redwolfer/satkit/pkg/async"
)

// Session accumulates the error state of one validation pass. Create a fresh
// session per pass (per submit attempt, per request); sessions must not be
// shared across independently validated forms.
//
// A session is owned by a single goroutine. The internal mutex only exists
// so that a completing CheckAsync predicate can record its outcome while the
// owner keeps running synchronous checks.
type Session struct {
	mu       sync.Mutex
	sink     Sink
	errors   []FieldError
	recorder map[string]string
	recheck  map[string]func()
	watched  map[string]bool
}

// NewSession creates an empty session reporting check outcomes to sink.
// A nil sink is replaced with NopSink.
func NewSession(sink Sink) *Session {
	if sink == nil {
		sink = NopSink{}
	}
	return &Session{
		sink:     sink,
		recorder: make(map[string]string),
		recheck:  make(map[string]func()),
		watched:  make(map[string]bool),
	}
}

// Check evaluates the rule against the field's current value and returns
// whether it passed.
//
// On failure the session records a FieldError (replacing any earlier entry
// for the same field), notifies the sink, and arms a re-check on the next
// field change so the invalid marker clears as soon as the value passes
// again. On success the field's error is removed and the sink's invalid
// state cleared, but only when this rule is the one that recorded it: a
// passing rule never erases another rule's failure on the same field.
func (s *Session) Check(rule Rule) bool {
	ok := rule.Check()
	s.record(rule.Field, rule.Name, ok, rule.Message, func() { s.Check(rule) })
	return ok
}

// CheckAsync runs predicate off the calling goroutine and applies Check
// semantics to its outcome once it resolves. A predicate error is treated as
// a failed check with a generic message; it is never surfaced as an error to
// the caller, so the returned future only reports the verdict.
//
// Await the future before the next dependent rule when strict sequencing
// matters; the session makes no ordering promise between an in-flight async
// check and checks started after it.
func (s *Session) CheckAsync(ctx context.Context, field Field, predicate func(context.Context) (bool, error), message string) *async.Future[bool] {
	if message == "" {
		message = "invalid value"
	}
	return async.Run(ctx, func(ctx context.Context) (bool, error) {
		ok, err := predicate(ctx)
		msg := message
		if err != nil {
			ok = false
			msg = asyncFailureMessage
		}
		s.record(field, asyncRuleName, ok, msg, func() {
			s.CheckAsync(ctx, field, predicate, message)
		})
		return ok, nil
	})
}

// Batch evaluates every rule in order, without short-circuiting on failures,
// then reports as ReportIfFailed does. Guarding dependent rules behind a
// prior Check result stays a caller pattern.
func (s *Session) Batch(rules ...Rule) error {
	for _, rule := range rules {
		s.Check(rule)
	}
	return s.ReportIfFailed("")
}

// ReportIfFailed returns a *ValidationFailure carrying the ordered error
// list if any check in the pass failed, and nil otherwise. It has no side
// effects; re-running checks is the only way the error state changes.
func (s *Session) ReportIfFailed(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.errors) == 0 {
		return nil
	}
	return &ValidationFailure{
		Message: message,
		Errors:  slices.Clone(s.errors),
	}
}

// ErrorCount returns the number of fields currently failing.
func (s *Session) ErrorCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.errors)
}

// Errors returns a copy of the current error list in check invocation order,
// one entry per failing field.
func (s *Session) Errors() []FieldError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.errors)
}

// Failed reports whether any check in the pass has failed.
func (s *Session) Failed() bool {
	return s.ErrorCount() > 0
}

// asyncRuleName records which rule owns a field's error entry when the
// failure came through CheckAsync rather than a named catalogue rule.
const asyncRuleName = "async"

// record updates the session state with one check outcome and keeps the
// sink and the per-field re-check hook in line with it. A field's error
// entry is owned by the rule that recorded it: a different rule passing on
// the same field leaves the entry, the recorder, and the armed re-check
// untouched.
func (s *Session) record(field Field, name string, ok bool, message string, recheckFn func()) {
	id := field.ID()

	s.mu.Lock()
	if ok {
		if s.recorder[id] != name {
			s.mu.Unlock()
			return
		}
		s.removeLocked(id)
		delete(s.recorder, id)
		delete(s.recheck, id)
		s.mu.Unlock()

		s.sink.Valid(id)
		return
	}

	s.upsertLocked(id, message)
	s.recorder[id] = name
	s.recheck[id] = recheckFn
	subscribe := !s.watched[id]
	s.watched[id] = true
	s.mu.Unlock()

	s.sink.Invalid(id, message)

	// One subscription per field for the session's lifetime; the hook it
	// runs is swapped out by whichever rule failed last.
	if subscribe {
		field.OnChange(func() {
			s.mu.Lock()
			fn := s.recheck[id]
			s.mu.Unlock()
			if fn != nil {
				fn()
			}
		})
	}
}

func (s *Session) upsertLocked(id, message string) {
	for i, fe := range s.errors {
		if fe.Field == id {
			s.errors[i] = FieldError{Field: id, Message: message}
			return
		}
	}
	s.errors = append(s.errors, FieldError{Field: id, Message: message})
}

func (s *Session) removeLocked(id string) {
	for i, fe := range s.errors {
		if fe.Field == id {
			s.errors = slices.Delete(s.errors, i, i+1)
			return
		}
	}
}
