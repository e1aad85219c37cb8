package transcode

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isSpace reports whether r separates tokens in codec input.
// The set includes U+FEFF and excludes U+0085.
func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// fields splits s around runs of whitespace.
func fields(s string) []string {
	return strings.FieldsFunc(s, isSpace)
}

// collapseSpace replaces whitespace runs with one space and trims the ends.
func collapseSpace(s string) string {
	return strings.Join(fields(s), " ")
}

// stripSpace removes all whitespace.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if isSpace(r) {
			return -1
		}
		return r
	}, s)
}

// isBlank reports whether s is empty or whitespace only.
func isBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !isSpace(r) }) < 0
}

// runeCount returns the number of characters in s.
func runeCount(s string) int {
	return utf8.RuneCountInString(s)
}
