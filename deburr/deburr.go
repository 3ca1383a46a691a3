package deburr

import (
	"strings"
	"unicode/utf8"
)

//go:generate go run ../internal/codegen/foldtable

// Fold returns s with every decorated Latin letter replaced by its ASCII
// base letter. Unmapped runes and invalid UTF-8 bytes are copied unchanged.
func Fold(s string) string {
	if isASCII(s) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteByte(s[i])
			i++
			continue
		}
		if base, ok := foldTable[r]; ok {
			sb.WriteRune(base)
		} else {
			sb.WriteString(s[i : i+size])
		}
		i += size
	}
	return sb.String()
}

// FoldRune returns the ASCII base letter for r, or r itself when r has no
// table entry.
func FoldRune(r rune) rune {
	if r < utf8.RuneSelf {
		return r
	}
	if base, ok := foldTable[r]; ok {
		return base
	}
	return r
}

// Lookup reports the base letter for r and whether r is in the table.
func Lookup(r rune) (rune, bool) {
	base, ok := foldTable[r]
	return base, ok
}

// Len returns the number of entries in the folding table.
func Len() int {
	return len(foldTable)
}

// isASCII reports whether s contains only ASCII bytes, none of which can
// carry a diacritic.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
