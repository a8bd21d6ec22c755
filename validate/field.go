package validate

// FieldKind classifies a field once at construction time so presence and
// file rules do not have to re-derive the category on every check.
type FieldKind int

const (
	// KindText covers single-value inputs: text, number, date, hidden.
	KindText FieldKind = iota
	// KindChoice covers multi-choice inputs: selects, checkbox groups, radios.
	KindChoice
	// KindFile covers file inputs.
	KindFile
)

func (k FieldKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindChoice:
		return "choice"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// FileInfo describes one attached file on a KindFile field.
type FileInfo struct {
	Name     string
	MIMEType string
	Size     int64
}

// Field is the engine's view of a bindable input. The owning layer controls
// the field's lifecycle; the engine only reads values and subscribes to
// change notifications. Implementations live in the form package, but any
// type satisfying the interface can be validated.
type Field interface {
	// ID identifies the field within one validation pass. Error entries
	// and sink calls are keyed by it.
	ID() string

	// Kind reports the category resolved when the field was constructed.
	Kind() FieldKind

	// Value returns the field's current scalar value. For KindChoice it
	// returns the first selected value, for KindFile the empty string.
	Value() string

	// Values returns all selected values of a KindChoice field. Other
	// kinds return a single-element or empty slice.
	Values() []string

	// Files returns the attached files of a KindFile field. Other kinds
	// return nil.
	Files() []FileInfo

	// OnChange registers fn to run after the field's value changes.
	// Implementations that cannot observe changes may ignore fn.
	OnChange(fn func())
}
