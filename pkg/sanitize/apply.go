package sanitize

import "strings"

// Apply runs value through each transform in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose builds a reusable pipeline from the given transforms.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// CollapseWhitespace folds runs of whitespace into single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ToLower lowercases the string.
func ToLower(s string) string {
	return strings.ToLower(s)
}
