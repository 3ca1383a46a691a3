package words

import (
	"unicode"
	"unicode/utf8"
)

// Class is the tokenizer's view of a single rune.
type Class uint8

const (
	// Other runes separate tokens and never appear in one.
	Other Class = iota
	// Lower is a lowercase letter, or a letter without case.
	Lower
	// Upper is an uppercase letter.
	Upper
	// Digit is a decimal digit in any script.
	Digit
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	case Digit:
		return "digit"
	default:
		return "other"
	}
}

// Classify returns the Class of r.
func Classify(r rune) Class {
	if r < utf8.RuneSelf {
		switch {
		case 'a' <= r && r <= 'z':
			return Lower
		case 'A' <= r && r <= 'Z':
			return Upper
		case '0' <= r && r <= '9':
			return Digit
		default:
			return Other
		}
	}
	switch {
	case unicode.IsUpper(r):
		return Upper
	case unicode.IsLetter(r):
		return Lower
	case unicode.IsDigit(r):
		return Digit
	default:
		return Other
	}
}

// isCamelBoundary reports a split between a lowercase letter and the
// uppercase letter after it ("dollarAnd").
func isCamelBoundary(prev, cur Class) bool {
	return prev == Lower && cur == Upper
}

// isAcronymBoundary reports a split before cur when cur is the last
// uppercase letter of an uppercase run that continues into a lowercase
// letter ("NEWYear" splits before "Y").
func isAcronymBoundary(prev, cur, next Class) bool {
	return prev == Upper && cur == Upper && next == Lower
}

// isDigitWordBoundary reports a split between a digit and a capitalized
// word after it ("50Bucks").
func isDigitWordBoundary(prev, cur Class) bool {
	return prev == Digit && cur == Upper
}

// fusesDigitSuffix reports that a digit followed by a lowercase letter
// stays in one token ("80s", "1st"). It is the only digit/letter pairing
// that is explicitly kept together.
func fusesDigitSuffix(prev, cur Class) bool {
	return prev == Digit && cur == Lower
}

// isBoundary reports whether a token boundary falls between prev and cur.
// next is the class of the rune after cur, or Other at end of input.
func isBoundary(prev, cur, next Class) bool {
	if fusesDigitSuffix(prev, cur) {
		return false
	}
	return isCamelBoundary(prev, cur) ||
		isDigitWordBoundary(prev, cur) ||
		isAcronymBoundary(prev, cur, next)
}
