package translation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxInputRunes is the longest input text accepted for translation.
const MaxInputRunes = 5000

// ValidateIrishText validates that the input is plausible Irish text:
// non-empty, valid UTF-8, bounded length and containing at least one letter.
func ValidateIrishText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}

	if !utf8.ValidString(text) {
		return fmt.Errorf("text is not valid UTF-8")
	}

	if utf8.RuneCountInString(text) > MaxInputRunes {
		return fmt.Errorf("text too long: maximum is %d characters", MaxInputRunes)
	}

	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}

	if !hasLetter {
		return fmt.Errorf("text must contain at least one letter")
	}

	return nil
}
