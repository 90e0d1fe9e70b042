// Package commitmsg checks commit messages before they reach git.
package commitmsg

import (
	"strings"
	"unicode/utf8"

	"github.com/penwyp/project-switch/internal/errors"
)

// MaxLength is the longest accepted message, in characters.
const MaxLength = 40

const forbiddenWord = "claude"

// Validate returns an ErrTypeValidation error describing the first rule the
// message breaks.
func Validate(message string) error {
	if strings.TrimSpace(message) == "" {
		return errors.New(errors.ErrTypeValidation, "Commit message cannot be empty")
	}
	if strings.Contains(strings.ToLower(message), forbiddenWord) {
		return errors.Newf(errors.ErrTypeValidation, "Commit message must not contain %q", forbiddenWord)
	}
	if n := utf8.RuneCountInString(message); n > MaxLength {
		return errors.Newf(errors.ErrTypeValidation,
			"Commit message is %d characters, the limit is %d", n, MaxLength).
			WithSuggestion("Shorten the summary line")
	}
	return nil
}
