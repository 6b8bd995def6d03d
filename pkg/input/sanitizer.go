// Package input prepares raw user messages before they reach the menu engine.
package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultMaxSize is 4KB. Menu options are a few bytes long.
const DefaultMaxSize = 4096

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// Normalize trims surrounding whitespace and lowercases the message.
// Option keys are authored in this normalized form.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Sanitizer enforces transport-level hygiene on incoming messages.
// The zero value uses DefaultMaxSize.
type Sanitizer struct {
	MaxSize int
}

// Sanitize rejects oversized or invalid UTF-8 input. Accepted input is
// returned unchanged, control characters included, so matching only ever
// sees what Normalize does to it.
func (s Sanitizer) Sanitize(raw string) (string, error) {
	limit := s.MaxSize
	if limit <= 0 {
		limit = DefaultMaxSize
	}
	if len(raw) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(raw), limit)
	}

	if !utf8.ValidString(raw) {
		return "", ErrInvalidUTF8
	}
	return raw, nil
}
