package validate

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

// Phone shape: optional leading +, then 6 to 15 digits once the usual
// separators are stripped. Deliberately loose; strict carrier validation is
// out of scope.
var (
	phoneSeparators = regexp.MustCompile(`[\s().-]`)
	phoneRegex      = regexp.MustCompile(`^\+?[0-9]{6,15}$`)
)

// Email checks that the value is a plausible email address: it must parse
// per RFC 5322 and carry a dotted, non-empty domain.
func Email(field Field) Rule {
	return Rule{
		Field: field,
		Name:  "email",
		Check: func() bool {
			value := field.Value()
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" {
				return false
			}
			if !strings.Contains(domain, ".") ||
				strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}
			for _, part := range strings.Split(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
		Message: "must be a valid email address",
	}
}

// URL checks that the value is an absolute URL with a scheme and host.
func URL(field Field) Rule {
	return Rule{
		Field: field,
		Name:  "url",
		Check: func() bool {
			value := field.Value()
			if strings.TrimSpace(value) == "" {
				return false
			}
			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}
			return u.Scheme != "" && u.Host != ""
		},
		Message: "must be a valid URL",
	}
}

// Phone checks that the value looks like a phone number: digits with the
// usual separator characters and an optional leading country-code plus.
func Phone(field Field) Rule {
	return Rule{
		Field: field,
		Name:  "phone",
		Check: func() bool {
			cleaned := phoneSeparators.ReplaceAllString(field.Value(), "")
			return phoneRegex.MatchString(cleaned)
		},
		Message: "must be a valid phone number",
	}
}
