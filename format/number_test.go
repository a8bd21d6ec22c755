package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/language"

	"github.com/Redwolfer/satkit/format"
)

func TestNumberFormatter(t *testing.T) {
	t.Parallel()

	f := format.NewNumberFormatter(language.English)

	assert.Equal(t, "1,234,567.50", f.Format(1234567.5, 2))
	assert.Equal(t, "0.00", f.Format(0, 2))
	assert.Equal(t, "1,000", f.FormatInt(1000))
	assert.Equal(t, "-42", f.FormatInt(-42))
}

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  float64
	}{
		{"1,234,567.50", 1234567.5},
		{"1 000", 1000},
		{"42", 42},
		{"-3.14", -3.14},
	}
	for _, tt := range tests {
		got, err := format.ParseNumber(tt.value)
		require.NoError(t, err, tt.value)
		assert.InDelta(t, tt.want, got, 1e-9, tt.value)
	}

	for _, bad := range []string{"", "abc", "1,2,3x"} {
		_, err := format.ParseNumber(bad)
		assert.ErrorIs(t, err, format.ErrInvalidNumber, bad)
	}
}

func TestNumberRoundTrip(t *testing.T) {
	t.Parallel()

	f := format.NewNumberFormatter(language.English)

	for _, n := range []float64{0, 1, 999.99, 1234567.89, -50000} {
		parsed, err := format.ParseNumber(f.Format(n, 2))
		require.NoError(t, err)
		assert.InDelta(t, n, parsed, 0.005)
	}
}
