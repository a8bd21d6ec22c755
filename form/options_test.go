package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Redwolfer/satkit/form"
)

func TestOptionsFromMap(t *testing.T) {
	t.Parallel()

	options := form.OptionsFromMap(map[string]string{
		"id": "Indonesian",
		"en": "English",
		"fr": "French",
	})

	require.Len(t, options, 3)
	assert.Equal(t, form.Option{Value: "en", Label: "English"}, options[0])
	assert.Equal(t, form.Option{Value: "fr", Label: "French"}, options[1])
	assert.Equal(t, form.Option{Value: "id", Label: "Indonesian"}, options[2])
}

func TestOptionsFromSlice(t *testing.T) {
	t.Parallel()

	type country struct {
		Code string
		Name string
	}
	countries := []country{{"ID", "Indonesia"}, {"SG", "Singapore"}}

	options := form.OptionsFromSlice(countries, func(c country) form.Option {
		return form.Option{Value: c.Code, Label: c.Name}
	})

	require.Len(t, options, 2)
	assert.Equal(t, "ID", options[0].Value)
	assert.Equal(t, "Singapore", options[1].Label)
}

func TestWithPlaceholder(t *testing.T) {
	t.Parallel()

	options := form.WithPlaceholder([]form.Option{{Value: "a", Label: "A"}}, "-- choose --")

	require.Len(t, options, 2)
	assert.Equal(t, form.Option{Value: "", Label: "-- choose --"}, options[0])
	assert.Equal(t, "a", options[1].Value)
}

func TestSelectedValues(t *testing.T) {
	t.Parallel()

	field := form.NewChoice("colors", "red", "blue")
	selected := form.SelectedValues(field)

	assert.True(t, selected["red"])
	assert.True(t, selected["blue"])
	assert.False(t, selected["green"])
}
