// Package deburr folds accented and otherwise decorated Latin letters to
// their unaccented ASCII base letter.
//
// Folding is a one-to-one rune lookup against a fixed table: "é" becomes
// "e", "Ø" becomes "O", "ǘ" becomes "u". Letter case is always preserved, and
// every rune without a table entry (digits, punctuation, whitespace, symbols,
// emoji, ligatures such as "æ" or "ß") passes through unchanged.
//
// # Usage
//
//	deburr.Fold("Thé Dûkęs")  // "The Dukes"
//	deburr.FoldRune('Ł')      // 'L'
//
// The table is generated from foldtable.yaml by internal/codegen/foldtable
// and is never modified at runtime, so every function in this package is
// safe for concurrent use.
//
// [Transformer] exposes the same mapping as a [transform.Transformer] for
// use in golang.org/x/text transform chains:
//
//	t := transform.Chain(norm.NFC, deburr.Transformer())
//	out, _, _ := transform.String(t, s)
package deburr
