package validate

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileTypes checks that every attached file's MIME type is in the allow
// list. A field with no files passes; combine with Required to demand one.
func FileTypes(field Field, allowed []string) Rule {
	return Rule{
		Field: field,
		Name:  "file_types",
		Check: func() bool {
			for _, f := range field.Files() {
				if !containsFold(allowed, f.MIMEType) {
					return false
				}
			}
			return true
		},
		Message: fmt.Sprintf("file type must be one of: %s", strings.Join(allowed, ", ")),
	}
}

// FileMaxSize checks that no attached file exceeds maxBytes.
func FileMaxSize(field Field, maxBytes int64) Rule {
	return Rule{
		Field: field,
		Name:  "file_max_size",
		Check: func() bool {
			for _, f := range field.Files() {
				if f.Size > maxBytes {
					return false
				}
			}
			return true
		},
		Message: fmt.Sprintf("file must not exceed %d bytes", maxBytes),
	}
}

// FileExtensions checks that every attached file's name carries one of the
// allowed extensions. Extensions are matched case-insensitively, with or
// without the leading dot in the allow list.
func FileExtensions(field Field, allowed []string) Rule {
	normalized := make([]string, len(allowed))
	for i, ext := range allowed {
		normalized[i] = "." + strings.TrimPrefix(strings.ToLower(ext), ".")
	}
	return Rule{
		Field: field,
		Name:  "file_extensions",
		Check: func() bool {
			for _, f := range field.Files() {
				ext := strings.ToLower(filepath.Ext(f.Name))
				if !containsFold(normalized, ext) {
					return false
				}
			}
			return true
		},
		Message: fmt.Sprintf("file extension must be one of: %s", strings.Join(allowed, ", ")),
	}
}

func containsFold(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}
