// Package form provides concrete validate.Field implementations and
// builders that turn an HTTP request into a FieldSet ready for validation.
//
// Text, choice and file fields resolve their kind once at construction;
// the validation engine never re-derives a field's category. Each field
// type exposes a setter (Set, SetSelected, SetFiles) that fires registered
// change listeners, which is what lets a validation session re-check a
// failing field when its value changes.
//
// FromRequest parses regular and multipart form bodies:
//
//	fields, err := form.FromRequest(r)
//	if err != nil { ... }
//	age, ok := fields.Field("age")
//
// The package also carries small helpers for populating select boxes
// (OptionsFromMap, WithPlaceholder) shared by server-rendered views.
package form
