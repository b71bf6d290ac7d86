package stego

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"Hi",
		"Hello, world!",
		"0123456789",
		"`~!@#$%^&*()-_=+[]{}\\|/?;:<>,.'\"",
		"mixed 1 and ! and six 6 and quotes 'q' \"dq\"",
		"héllo wörld 42",
		"(one)",
		"'and'",
		"\"at\"",
		"[plus]",
		"-two-",
		"{seven}.period.",
		"x(sxdxone)x",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			require.Equal(t, text, Unescape(Escape(text)))
		})
	}
}

func TestEscapeRemovesReservedCharacters(t *testing.T) {
	text := "`~!@#$%^&*()-_=+[]{}\\|/?;:<>,.'\" 0123456789 plain"
	escaped := Escape(text)

	for _, s := range substitutions {
		require.NotContains(t, escaped, s.char)
	}
	require.Contains(t, escaped, " plain")
}

func TestEscapePunctuationTokens(t *testing.T) {
	escaped := Escape("wait, what!")

	require.Equal(t, "waitxxxsxdxcommaxxxsxdx whatxxxsxdxexclamxxxsxdx", escaped)
	require.NotContains(t, escaped, ",")
	require.NotContains(t, escaped, "!")
	require.Equal(t, "wait, what!", Unescape(escaped))
}

func TestSubstitutionTokensAreDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range substitutions {
		require.Len(t, s.char, 1)
		require.False(t, seen[s.char], "duplicate character %q", s.char)
		seen[s.char] = true

		for _, other := range substitutions {
			if other.token == s.token {
				continue
			}
			require.False(t, strings.Contains(other.token, s.token),
				"token %q is contained in %q", s.token, other.token)
		}
	}
	require.Len(t, substitutions, 42)
}
