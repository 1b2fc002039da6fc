package domain

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Character name bounds
const (
	MinNameLength = 3
	MaxNameLength = 16
)

// FoldName returns the case-insensitive lookup key of a character name
func FoldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// ValidateName checks length in runes and that the name holds only letters,
// digits and underscores
func ValidateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < MinNameLength || n > MaxNameLength {
		return fmt.Errorf("%w: must be %d-%d characters", ErrInvalidName, MinNameLength, MaxNameLength)
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return fmt.Errorf("%w: %q is not allowed", ErrInvalidName, r)
		}
	}
	return nil
}
