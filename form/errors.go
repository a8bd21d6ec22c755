package form

import "errors"

var (
	// ErrMalformedForm is returned by FromRequest when the request body
	// cannot be parsed as a form.
	ErrMalformedForm = errors.New("form: malformed form data")
)
