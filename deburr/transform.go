package deburr

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Transformer returns a transform.Transformer that applies FoldRune to every
// rune it reads. A Transformer keeps internal state, so callers that fold on
// several goroutines should ask for one Transformer each.
//
// Unlike Fold, the Transformer replaces invalid UTF-8 bytes with U+FFFD.
func Transformer() transform.Transformer {
	return runes.Map(FoldRune)
}

// FoldBytes is the []byte counterpart of Fold for callers that already hold
// raw input. Invalid UTF-8 bytes are copied unchanged.
func FoldBytes(b []byte) []byte {
	return []byte(Fold(string(b)))
}
