package validate

// Sink receives the visible outcome of each check so the owning layer can
// render inline messages and invalid markers. The session calls Invalid when
// a check fails and Valid when a previously failing field passes again.
type Sink interface {
	Invalid(fieldID, message string)
	Valid(fieldID string)
}

// NopSink discards all notifications. Useful for headless validation such as
// API request handling, and as the default when no sink is supplied.
type NopSink struct{}

func (NopSink) Invalid(string, string) {}
func (NopSink) Valid(string)           {}
