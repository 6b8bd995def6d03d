package input_test

import (
	"strings"
	"testing"

	"github.com/aretw0/minerva/pkg/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		" SI ":     "si",
		"si":       "si",
		"Sí":       "sí",
		"\tSÍ\n":   "sí",
		"  NO  ":   "no",
		"5":        "5",
		"":         "",
		"   ":      "",
		"Hola Bot": "hola bot",
	}

	for raw, want := range tests {
		assert.Equal(t, want, input.Normalize(raw), "Normalize(%q)", raw)
	}
}

func TestSanitize(t *testing.T) {
	var s input.Sanitizer

	t.Run("passthrough", func(t *testing.T) {
		out, err := s.Sanitize("sí\n")
		require.NoError(t, err)
		assert.Equal(t, "sí\n", out)
	})

	t.Run("keeps control characters", func(t *testing.T) {
		out, err := s.Sanitize("1\x1b[31m\x00")
		require.NoError(t, err)
		assert.Equal(t, "1\x1b[31m\x00", out)
	})

	t.Run("rejects invalid utf8", func(t *testing.T) {
		_, err := s.Sanitize("\xff\xfe")
		assert.ErrorIs(t, err, input.ErrInvalidUTF8)
	})

	t.Run("rejects oversized input", func(t *testing.T) {
		_, err := s.Sanitize(strings.Repeat("a", input.DefaultMaxSize+1))
		assert.ErrorIs(t, err, input.ErrInputTooLarge)
	})

	t.Run("custom limit", func(t *testing.T) {
		_, err := input.Sanitizer{MaxSize: 2}.Sanitize("abc")
		assert.ErrorIs(t, err, input.ErrInputTooLarge)
	})
}
