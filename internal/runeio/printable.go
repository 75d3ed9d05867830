// Package runeio renders runes that a terminal would otherwise act on.
package runeio

import (
	"strings"
	"unicode/utf8"
)

// CaretForm computes the ^-escaped printable form of a C0 or C1 control rune,
// e.g. "^C" for ETX, "^?" for DEL, and "^[[" for CSI. It returns "" for any
// other rune.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	} else if 0x80 <= r && r <= 0x9f {
		return "^[" + string(r^0xc0)
	}
	return ""
}

// Printable replaces every control rune in s with its caret form, and every
// invalid utf8 byte with its \x escape. Strings that need no replacement are
// returned as is.
func Printable(s string) string {
	i := strings.IndexFunc(s, needsEscape)
	if i < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	sb.WriteString(s[:i])
	for s = s[i:]; len(s) > 0; {
		r, n := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && n == 1 {
			const hex = "0123456789abcdef"
			sb.WriteString(`\x`)
			sb.WriteByte(hex[s[0]>>4])
			sb.WriteByte(hex[s[0]&0xf])
		} else if caret := CaretForm(r); caret != "" {
			sb.WriteString(caret)
		} else {
			sb.WriteString(s[:n])
		}
		s = s[n:]
	}
	return sb.String()
}

func needsEscape(r rune) bool {
	return r == utf8.RuneError || CaretForm(r) != ""
}
