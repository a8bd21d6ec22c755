package form

import (
	"sync"

	"github.com/Redwolfer/satkit/validate"
)

// TextField is a single-value input: text, number, date, hidden.
type TextField struct {
	id string

	mu        sync.Mutex
	value     string
	listeners []func()
}

// NewText creates a text field with an initial value.
func NewText(id, value string) *TextField {
	return &TextField{id: id, value: value}
}

func (f *TextField) ID() string                 { return f.id }
func (f *TextField) Kind() validate.FieldKind   { return validate.KindText }
func (f *TextField) Files() []validate.FileInfo { return nil }

func (f *TextField) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

func (f *TextField) Values() []string {
	return []string{f.Value()}
}

func (f *TextField) OnChange(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
}

// Set replaces the field's value and fires change listeners.
func (f *TextField) Set(value string) {
	f.mu.Lock()
	f.value = value
	listeners := append([]func(){}, f.listeners...)
	f.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// ChoiceField is a multi-choice input: select, checkbox group, radio group.
type ChoiceField struct {
	id string

	mu        sync.Mutex
	selected  []string
	listeners []func()
}

// NewChoice creates a choice field with the given initial selections.
func NewChoice(id string, selected ...string) *ChoiceField {
	return &ChoiceField{id: id, selected: selected}
}

func (f *ChoiceField) ID() string                 { return f.id }
func (f *ChoiceField) Kind() validate.FieldKind   { return validate.KindChoice }
func (f *ChoiceField) Files() []validate.FileInfo { return nil }

func (f *ChoiceField) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.selected) == 0 {
		return ""
	}
	return f.selected[0]
}

func (f *ChoiceField) Values() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.selected...)
}

func (f *ChoiceField) OnChange(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
}

// SetSelected replaces the selection and fires change listeners.
func (f *ChoiceField) SetSelected(values ...string) {
	f.mu.Lock()
	f.selected = values
	listeners := append([]func(){}, f.listeners...)
	f.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// FileField is a file input holding the metadata of attached files.
type FileField struct {
	id string

	mu        sync.Mutex
	files     []validate.FileInfo
	listeners []func()
}

// NewFile creates a file field with the given attachments.
func NewFile(id string, files ...validate.FileInfo) *FileField {
	return &FileField{id: id, files: files}
}

func (f *FileField) ID() string               { return f.id }
func (f *FileField) Kind() validate.FieldKind { return validate.KindFile }
func (f *FileField) Value() string            { return "" }
func (f *FileField) Values() []string         { return nil }

func (f *FileField) Files() []validate.FileInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]validate.FileInfo{}, f.files...)
}

func (f *FileField) OnChange(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
}

// SetFiles replaces the attachments and fires change listeners.
func (f *FileField) SetFiles(files ...validate.FileInfo) {
	f.mu.Lock()
	f.files = files
	listeners := append([]func(){}, f.listeners...)
	f.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
