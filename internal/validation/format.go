// Package validation holds helpers for input-boundary error messages.
package validation

import "strings"

// FormatValidValues renders the allowed values of a string-backed enum as
// a comma-separated list for error messages.
func FormatValidValues[T ~string](values []T) string {
	var builder strings.Builder
	for i, value := range values {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(string(value))
	}
	return builder.String()
}
