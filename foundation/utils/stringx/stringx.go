// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements string operations that extend the Go standard library.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-19 v0.2.0: NormalizeSpace for command keys

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Truncate truncates a string to maxLen runes, adding an ellipsis if truncated.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// PadRight pads s to width runes with the given pad character.
// If the string is already longer than width, it returns the original string.
func PadRight(s string, width int, pad rune) string {
	count := utf8.RuneCountInString(s)
	if count >= width {
		return s
	}
	return s + strings.Repeat(string(pad), width-count)
}

// PadLeft pads s on the left to width runes with the given pad character.
func PadLeft(s string, width int, pad rune) string {
	count := utf8.RuneCountInString(s)
	if count >= width {
		return s
	}
	return strings.Repeat(string(pad), width-count) + s
}

// SplitLines splits a string into lines, handling \n, \r\n, and \r line endings.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// NormalizeSpace lowercases s, trims it, and collapses every whitespace run into
// a single space. "Wait   KEY" and "wait key" normalize to the same value.
func NormalizeSpace(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
