package wordcase

import (
	"golang.org/x/text/unicode/norm"

	"github.com/erraggy/wordcase/casing"
	"github.com/erraggy/wordcase/deburr"
	"github.com/erraggy/wordcase/words"
)

// FoldDiacritics replaces accented and decorated Latin letters with their
// ASCII base letter, preserving case. Everything else is left unchanged.
func FoldDiacritics(text string) string {
	return deburr.Fold(text)
}

// TokenizeWords splits text into word tokens, discarding separators and
// punctuation. It does not fold diacritics.
func TokenizeWords(text string) []string {
	return words.Split(text)
}

// Convert folds, tokenizes and renders text under convention c.
func Convert(text string, c casing.Convention) string {
	return casing.RenderSeq(words.Seq(prepare(text, true)), c)
}

// ToCamelCase converts text to camelCase.
// Example: "MerryNEWYear!" -> "merryNewYear"
func ToCamelCase(text string) string {
	return Convert(text, casing.Camel)
}

// ToKebabCase converts text to kebab-case.
// Example: "MerryNEWYear!" -> "merry-new-year"
func ToKebabCase(text string) string {
	return Convert(text, casing.Kebab)
}

// ToSnakeCase converts text to snake_case.
// Example: "MerryNEWYear!" -> "merry_new_year"
func ToSnakeCase(text string) string {
	return Convert(text, casing.Snake)
}

// ToStartCase converts text to Start Case.
// Example: "...the sports-watch of the '80s." -> "The Sports Watch Of The 80S"
func ToStartCase(text string) string {
	return Convert(text, casing.Start)
}

// prepare composes decomposed accents and, when fold is set, folds them.
func prepare(text string, fold bool) string {
	if !fold {
		return text
	}
	return deburr.Fold(norm.NFC.String(text))
}
