package sanitize

import (
	"regexp"
	"strings"
	"unicode"
)

var nonDigitRegex = regexp.MustCompile(`[^0-9]`)

// MaskString hides the middle of s while keeping visible leading and
// trailing characters for recognition. Strings too short to keep anything
// hidden are masked entirely.
func MaskString(s string, visible int) string {
	if visible < 0 {
		visible = 1
	}

	runes := []rune(s)
	length := len(runes)

	if length <= visible*2 {
		return strings.Repeat("*", length)
	}

	return string(runes[:visible]) +
		strings.Repeat("*", length-visible*2) +
		string(runes[length-visible:])
}

// MaskEmail hides the local part except for its first character, keeping
// the full domain recognizable. Values that are not shaped like an email
// are returned unchanged.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}

	if len(local) == 1 {
		return "*@" + domain
	}
	return string(local[0]) + strings.Repeat("*", len(local)-1) + "@" + domain
}

// MaskPhone keeps only the last four digits of a phone number visible.
func MaskPhone(phone string) string {
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// Anonymize reduces free text to initials: the first letter of each word
// followed by asterisks, so "Jane Doe" becomes "J*** D**". Whitespace
// between words is preserved as a single space.
func Anonymize(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		if len(runes) <= 1 {
			continue
		}
		first := runes[0]
		if !unicode.IsLetter(first) && !unicode.IsDigit(first) {
			words[i] = strings.Repeat("*", len(runes))
			continue
		}
		words[i] = string(first) + strings.Repeat("*", len(runes)-1)
	}
	return strings.Join(words, " ")
}
