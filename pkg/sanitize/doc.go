// Package sanitize provides text anonymization and masking helpers for
// showing user data in logs, audit trails, and acknowledgement screens
// without exposing it verbatim.
//
// MaskString, MaskEmail and MaskPhone keep just enough of a value for the
// owner to recognize it; Anonymize reduces free text to initials. The
// Apply/Compose helpers chain transforms into reusable pipelines:
//
//	clean := sanitize.Compose(sanitize.Trim, sanitize.CollapseWhitespace)
//	display := sanitize.Anonymize(clean(fullName))
//
// All functions are stateless and safe for concurrent use.
package sanitize
