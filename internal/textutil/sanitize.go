package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// StripWhitespace removes every whitespace rune, including interior spaces and tabs.
func StripWhitespace(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
}

// NormalizeName converts a header name into the token used for directory and
// file names: NFC-normalized with all whitespace removed.
func NormalizeName(value string) string {
	return StripWhitespace(norm.NFC.String(value))
}

// IsPathSegment reports whether value can be used as a single path element
// without escaping or nesting below its parent directory. Empty strings are
// reported separately by the caller.
func IsPathSegment(value string) bool {
	if value == "." || value == ".." {
		return false
	}
	return !strings.ContainsAny(value, `/\`) && !strings.ContainsRune(value, 0)
}
