// Package format holds the formatting and parsing helpers shared by forms
// and views: canonical date/datetime/time strings, locale-aware number
// rendering backed by golang.org/x/text, and roman numerals.
//
// Parsing is deliberately strict. ParseDate("2023-02-30") and
// ParseRoman("IIII") fail rather than normalize, so formatted values always
// round-trip: ParseDate(ToDate(t)) recovers t's date for any valid date.
package format
