package casing

import (
	"iter"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Render applies c's per-token casing to tokens and joins them with c's
// separator.
func Render(tokens []string, c Convention) string {
	return RenderSeq(slices.Values(tokens), c)
}

// RenderSeq is Render over a sequence. The sequence is ranged over once.
func RenderSeq(tokens iter.Seq[string], c Convention) string {
	var b strings.Builder
	sep := c.Separator()
	// A Caser keeps state between calls and must not be shared.
	lower := cases.Lower(language.Und)

	i := 0
	for token := range tokens {
		if i > 0 {
			b.WriteString(sep)
		}
		switch c {
		case Camel:
			if i == 0 {
				b.WriteString(lower.String(token))
			} else {
				b.WriteString(Capitalize(token))
			}
		case Start:
			b.WriteString(Capitalize(token))
		case Kebab, Snake:
			b.WriteString(lower.String(token))
		default:
			b.WriteString(token)
		}
		i++
	}
	return b.String()
}

// Capitalize uppercases the first letter of token and lowercases every
// other letter. Digits and any leading digits are left unchanged.
// Example: "dukes" -> "Dukes"
// Example: "NEW" -> "New"
// Example: "80s" -> "80S"
func Capitalize(token string) string {
	if token == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(token))
	seenLetter := false

	for _, r := range token {
		switch {
		case !unicode.IsLetter(r):
			result.WriteRune(r)
		case !seenLetter:
			result.WriteRune(unicode.ToUpper(r))
			seenLetter = true
		default:
			result.WriteRune(unicode.ToLower(r))
		}
	}

	return result.String()
}

// Lower lowercases every letter of token.
// Example: "NEW" -> "new"
func Lower(token string) string {
	return cases.Lower(language.Und).String(token)
}
