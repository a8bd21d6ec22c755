package format

import "errors"

var (
	// ErrInvalidDate is returned when a value does not parse strictly
	// against the expected layout.
	ErrInvalidDate = errors.New("format: invalid date")

	// ErrInvalidNumber is returned when a value is not a readable number.
	ErrInvalidNumber = errors.New("format: invalid number")

	// ErrInvalidRoman is returned for malformed roman numerals.
	ErrInvalidRoman = errors.New("format: invalid roman numeral")

	// ErrRomanRange is returned when a number falls outside the
	// representable roman range of 1 to 3999.
	ErrRomanRange = errors.New("format: number out of roman range")
)
