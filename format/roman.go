package format

import (
	"fmt"
	"strings"
)

var romanNumerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"},
	{1, "I"},
}

// ToRoman renders n as an uppercase roman numeral. The representable range
// is 1 to 3999.
func ToRoman(n int) (string, error) {
	if n < 1 || n > 3999 {
		return "", fmt.Errorf("%w: %d", ErrRomanRange, n)
	}

	var b strings.Builder
	for _, r := range romanNumerals {
		for n >= r.value {
			b.WriteString(r.symbol)
			n -= r.value
		}
	}
	return b.String(), nil
}

// ParseRoman reads an uppercase roman numeral back to its integer value.
// Malformed numerals such as "IIII" or "VX" are rejected: the input must be
// the canonical spelling ToRoman produces.
func ParseRoman(value string) (int, error) {
	if value == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidRoman)
	}

	n := 0
	rest := value
	for _, r := range romanNumerals {
		for strings.HasPrefix(rest, r.symbol) {
			n += r.value
			rest = rest[len(r.symbol):]
		}
	}
	if rest != "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRoman, value)
	}

	// Greedy matching accepts some non-canonical spellings; a round-trip
	// comparison rules them out.
	canonical, err := ToRoman(n)
	if err != nil || canonical != value {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRoman, value)
	}
	return n, nil
}
