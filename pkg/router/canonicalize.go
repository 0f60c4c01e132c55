package router

import (
	"errors"
	"strings"
	"unicode"
)

// Pattern canonicalization errors.
var (
	// ErrEmptyPattern reports a nil, empty, or all-whitespace pattern at
	// registration. This is a caller-contract violation, not user input.
	ErrEmptyPattern = errors.New("router: empty pattern")

	// ErrControlCharacter reports a control character in a pattern.
	ErrControlCharacter = errors.New("router: control character in pattern")
)

// CanonicalizePattern returns the identity key used for duplicate detection:
// surrounding whitespace trimmed, interior whitespace runs collapsed to
// single spaces, and the result lowercased. Pattern identity is
// case-insensitive, so "Git Status" and "git  status" register as the same
// route.
func CanonicalizePattern(text string) (string, error) {
	for _, r := range text {
		if unicode.IsControl(r) && r != '\t' {
			return "", ErrControlCharacter
		}
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", ErrEmptyPattern
	}
	return strings.ToLower(strings.Join(fields, " ")), nil
}
