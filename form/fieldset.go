package form

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Redwolfer/satkit/validate"
)

// DefaultMaxMemory bounds the in-memory part of multipart form parsing (10MB).
const DefaultMaxMemory = 10 << 20

// FieldSet holds the fields of one form keyed by ID, preserving a stable
// iteration order.
type FieldSet struct {
	fields map[string]validate.Field
	order  []string
}

// NewFieldSet builds a field set from the given fields. A later field with
// a duplicate ID replaces the earlier one but keeps its position.
func NewFieldSet(fields ...validate.Field) *FieldSet {
	fs := &FieldSet{fields: make(map[string]validate.Field)}
	for _, f := range fields {
		fs.Add(f)
	}
	return fs
}

// Add inserts or replaces a field.
func (fs *FieldSet) Add(field validate.Field) {
	id := field.ID()
	if _, exists := fs.fields[id]; !exists {
		fs.order = append(fs.order, id)
	}
	fs.fields[id] = field
}

// Field returns the field with the given ID.
func (fs *FieldSet) Field(id string) (validate.Field, bool) {
	f, ok := fs.fields[id]
	return f, ok
}

// MustGet returns the field with the given ID and panics if it is absent.
// Intended for handler code where a missing field is a programming error.
func (fs *FieldSet) MustGet(id string) validate.Field {
	f, ok := fs.fields[id]
	if !ok {
		panic(fmt.Sprintf("form: no field %q in set", id))
	}
	return f
}

// IDs returns the field IDs in insertion order.
func (fs *FieldSet) IDs() []string {
	return append([]string{}, fs.order...)
}

// Len returns the number of fields in the set.
func (fs *FieldSet) Len() int {
	return len(fs.fields)
}

// FromValues builds a field set from decoded form values. Keys with a
// trailing "[]" or with multiple values become choice fields; everything
// else becomes a text field. Keys are processed in sorted order so the
// resulting set is deterministic.
func FromValues(values url.Values) *FieldSet {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fs := NewFieldSet()
	for _, key := range keys {
		vals := values[key]
		if id, ok := strings.CutSuffix(key, "[]"); ok {
			fs.Add(NewChoice(id, vals...))
			continue
		}
		if len(vals) > 1 {
			fs.Add(NewChoice(key, vals...))
			continue
		}
		value := ""
		if len(vals) == 1 {
			value = vals[0]
		}
		fs.Add(NewText(key, value))
	}
	return fs
}

// FromRequest parses the request body and builds a field set from it.
// Regular and multipart forms are supported; uploaded files become file
// fields carrying name, MIME type and size, with the file content left in
// the request for the handler to consume.
func FromRequest(r *http.Request) (*FieldSet, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedForm, err)
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedForm, err)
		}
	}

	fs := FromValues(r.Form)

	if r.MultipartForm != nil {
		names := make([]string, 0, len(r.MultipartForm.File))
		for name := range r.MultipartForm.File {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			headers := r.MultipartForm.File[name]
			files := make([]validate.FileInfo, 0, len(headers))
			for _, h := range headers {
				files = append(files, validate.FileInfo{
					Name:     h.Filename,
					MIMEType: fileContentType(h.Header.Get("Content-Type"), h.Filename),
					Size:     h.Size,
				})
			}
			fs.Add(NewFile(strings.TrimSuffix(name, "[]"), files...))
		}
	}

	return fs, nil
}

// fileContentType resolves a file's MIME type from its part header, falling
// back to the filename extension.
func fileContentType(header, filename string) string {
	if header != "" {
		if mediaType, _, err := mime.ParseMediaType(header); err == nil {
			return mediaType
		}
	}
	return mime.TypeByExtension(filepath.Ext(filename))
}
