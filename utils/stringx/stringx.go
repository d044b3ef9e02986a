// File: stringx.go
// Title: Extended String Utilities
// Description: Small string helpers shared across the fcall packages for
//              validation and log-friendly truncation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-07-20

package stringx

import (
	"strings"
	"unicode/utf8"
)

// IsEmpty returns true if the string has zero length
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotBlank returns true if the string contains at least one
// non-whitespace character
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate shortens a string to at most maxLen runes, appending the
// ellipsis when truncation happens. The ellipsis counts against maxLen.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		runes := []rune(ellipsis)
		return string(runes[:maxLen])
	}

	runes := []rune(s)
	return string(runes[:maxLen-ellipsisLen]) + ellipsis
}

// FirstNonBlank returns the first argument that is not blank, or the
// empty string when all are blank
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if IsNotBlank(v) {
			return v
		}
	}
	return ""
}
