package form

import "sort"

// Option is one entry of a select box: the submitted value and the label
// shown to the user.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionsFromMap turns a value→label map into an option list sorted by
// label, so rendered select boxes are stable across requests.
func OptionsFromMap(m map[string]string) []Option {
	options := make([]Option, 0, len(m))
	for value, label := range m {
		options = append(options, Option{Value: value, Label: label})
	}
	sort.Slice(options, func(i, j int) bool {
		if options[i].Label == options[j].Label {
			return options[i].Value < options[j].Value
		}
		return options[i].Label < options[j].Label
	})
	return options
}

// OptionsFromSlice maps arbitrary items onto options, preserving slice order.
func OptionsFromSlice[T any](items []T, fn func(T) Option) []Option {
	options := make([]Option, len(items))
	for i, item := range items {
		options[i] = fn(item)
	}
	return options
}

// WithPlaceholder prepends an empty-value option, the usual
// "-- choose one --" entry.
func WithPlaceholder(options []Option, label string) []Option {
	result := make([]Option, 0, len(options)+1)
	result = append(result, Option{Value: "", Label: label})
	return append(result, options...)
}

// SelectedValues reports which option values are currently selected on a
// choice field, as a set usable directly in templates.
func SelectedValues(field *ChoiceField) map[string]bool {
	selected := make(map[string]bool)
	for _, v := range field.Values() {
		selected[v] = true
	}
	return selected
}
