// Package words splits free-form text into word tokens.
//
// A token is a maximal run of letters and digits. Everything else
// (whitespace, punctuation, symbols, emoji, control characters) separates
// tokens and is discarded. Inside a run, a new token starts at:
//
//   - a lowercase letter followed by an uppercase letter: "dollarAnd" -> "dollar", "And"
//   - the last uppercase letter of an uppercase run that is followed by a
//     lowercase letter: "NEWYear" -> "NEW", "Year"
//   - a digit followed by an uppercase letter: "50Bucks" -> "50", "Bucks"
//
// A digit followed by a lowercase letter never splits, so "80s" and "1st"
// stay whole, and a letter followed by a digit never splits, so "v2" stays
// whole.
//
// # Usage
//
//	words.Split("The Dukes... ruined my life")  // ["The" "Dukes" "ruined" "my" "life"]
//	words.Split("DollarAndCent dollar-and-cent")  // ["Dollar" "And" "Cent" "dollar" "and" "cent"]
//
// [Tokenizer] walks the input exactly once. Its [Tokenizer.All] sequence is
// single-use: once drained, ranging over it again yields nothing.
//
// Tokens are substrings of the input. The tokenizer does not fold
// diacritics; see package deburr for that.
package words
