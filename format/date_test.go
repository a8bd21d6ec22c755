package format_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Redwolfer/satkit/format"
)

func TestDateRoundTrip(t *testing.T) {
	t.Parallel()

	// Every formatted date between 1900 and 2099 must parse back to the
	// same string. Walking in 13-day steps crosses every month boundary
	// and leap-year configuration without visiting all ~73k days.
	start := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2099, 12, 31, 0, 0, 0, 0, time.UTC)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 13) {
		formatted := format.ToDate(d)
		parsed, err := format.ParseDate(formatted)
		require.NoError(t, err, formatted)
		assert.Equal(t, formatted, format.ToDate(parsed))
	}

	for _, d := range []time.Time{start, end, time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)} {
		parsed, err := format.ParseDate(format.ToDate(d))
		require.NoError(t, err)
		assert.True(t, parsed.Equal(d))
	}
}

func TestParseDateStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		ok    bool
	}{
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2023-02-30", false},
		{"2023-13-01", false},
		{"2023-1-01", false},
		{"01/02/2023", false},
		{"", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%q", tt.value), func(t *testing.T) {
			t.Parallel()
			_, err := format.ParseDate(tt.value)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, format.ErrInvalidDate)
			}
		})
	}
}

func TestDateTimeAndTime(t *testing.T) {
	t.Parallel()

	moment := time.Date(2024, 6, 15, 13, 45, 30, 0, time.UTC)

	assert.Equal(t, "2024-06-15 13:45:30", format.ToDateTime(moment))
	parsed, err := format.ParseDateTime("2024-06-15 13:45:30")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(moment))

	assert.Equal(t, "13:45", format.ToTime(moment))
	tod, err := format.ParseTime("13:45")
	require.NoError(t, err)
	assert.Equal(t, 13, tod.Hour())
	assert.Equal(t, 45, tod.Minute())

	_, err = format.ParseTime("24:00")
	assert.ErrorIs(t, err, format.ErrInvalidDate)
}
