package format

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberFormatter renders numbers with locale-aware digit grouping.
type NumberFormatter struct {
	printer *message.Printer
}

// NewNumberFormatter creates a formatter for the given locale.
func NewNumberFormatter(tag language.Tag) *NumberFormatter {
	return &NumberFormatter{printer: message.NewPrinter(tag)}
}

// Format renders n with grouped integer digits and exactly the given number
// of fraction digits, e.g. 1234567.5 with 2 decimals as "1,234,567.50" in
// English locales.
func (f *NumberFormatter) Format(n float64, decimals int) string {
	return f.printer.Sprint(number.Decimal(n,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

// FormatInt renders n with grouped digits and no fraction part.
func (f *NumberFormatter) FormatInt(n int64) string {
	return f.printer.Sprint(number.Decimal(n))
}

// ParseNumber reads a number that may carry group separators (commas,
// spaces, apostrophes) and a dot decimal point, the inverse of what Format
// produces for en-style locales.
func ParseNumber(value string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ',', ' ', ' ', '\'':
			return -1
		default:
			return r
		}
	}, strings.TrimSpace(value))

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, value)
	}
	return n, nil
}
