// Package strutil provides small string helpers shared across taskflow.
package strutil

import (
	"strings"
	"unicode"
)

// Ellipsis is appended by Truncate when text is cut.
const Ellipsis = "..."

// NormalizeWhitespace collapses runs of whitespace into single spaces.
func NormalizeWhitespace(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}

// NormalizeLowerTrimSpace trims surrounding whitespace and lowercases the input.
func NormalizeLowerTrimSpace(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// NormalizeNewlines replaces CRLF and CR with LF.
func NormalizeNewlines(value string) string {
	if value == "" {
		return value
	}
	value = strings.ReplaceAll(value, "\r\n", "\n")
	return strings.ReplaceAll(value, "\r", "\n")
}

// TrimTrailingNewlines removes trailing CR/LF characters.
func TrimTrailingNewlines(value string) string {
	return strings.TrimRight(value, "\r\n")
}

// Truncate returns the first max runes of text followed by an ellipsis
// when the text is longer than max; shorter text is returned unchanged.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + Ellipsis
}

// Initials returns the upper-cased first character of each
// whitespace-separated token in name, truncated to two characters.
func Initials(name string) string {
	var initials []rune
	for _, field := range strings.Fields(name) {
		runes := []rune(field)
		initials = append(initials, unicode.ToUpper(runes[0]))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// FormatThousands renders n with comma separators for display.
func FormatThousands(n int64) string {
	negative := n < 0
	if negative {
		n = -n
	}

	digits := []byte(formatUint(n))
	var builder strings.Builder
	if negative {
		builder.WriteByte('-')
	}
	for i, digit := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteByte(digit)
	}
	return builder.String()
}

func formatUint(n int64) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
