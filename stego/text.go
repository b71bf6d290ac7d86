package stego

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// printable reports whether r may appear in a message. Line breaks and tabs
// are the only control characters allowed.
func printable(r rune) bool {
	switch r {
	case '\n', '\r', '\t':
		return true
	}
	return unicode.IsPrint(r)
}

// escapedRune reports whether r may appear in an escaped payload, which never
// carries a reserved character.
func escapedRune(r rune) bool {
	return printable(r) && !strings.ContainsRune(reserved, r)
}

// checkText validates p[from:] rune by rune against allow and returns the
// offset it got to. Unless final is set, an incomplete rune at the end is left
// for a later call once more bytes have arrived.
func checkText(p []byte, from int, final bool, allow func(rune) bool) (int, bool) {
	for from < len(p) {
		rest := p[from:]
		if !final && !utf8.FullRune(rest) {
			break
		}
		r, size := utf8.DecodeRune(rest)
		if r == utf8.RuneError && size == 1 {
			return from, false
		}
		if !allow(r) {
			return from, false
		}
		from += size
	}
	return from, true
}

func validText(text string) bool {
	_, ok := checkText([]byte(text), 0, true, printable)
	return ok
}
