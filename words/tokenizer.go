package words

import (
	"iter"
	"unicode/utf8"
)

// Tokenizer yields the tokens of a string from left to right. It reads the
// input once and cannot be rewound. The zero value yields no tokens.
type Tokenizer struct {
	text string
	pos  int
}

// New returns a Tokenizer positioned at the start of text.
func New(text string) *Tokenizer {
	return &Tokenizer{text: text}
}

// Next returns the next token. ok is false once the input is exhausted.
func (t *Tokenizer) Next() (token string, ok bool) {
	text := t.text

	// Skip separators.
	for t.pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[t.pos:])
		if Classify(r) != Other {
			break
		}
		t.pos += size
	}
	if t.pos >= len(text) {
		return "", false
	}

	start := t.pos
	r, size := utf8.DecodeRuneInString(text[t.pos:])
	prev := Classify(r)
	t.pos += size

	for t.pos < len(text) {
		r, size = utf8.DecodeRuneInString(text[t.pos:])
		cur := Classify(r)
		if cur == Other {
			t.pos += size
			return text[start : t.pos-size], true
		}
		if isBoundary(prev, cur, t.peek(t.pos+size)) {
			return text[start:t.pos], true
		}
		prev = cur
		t.pos += size
	}
	return text[start:], true
}

// peek returns the class of the rune starting at byte offset i, or Other
// at end of input.
func (t *Tokenizer) peek(i int) Class {
	if i >= len(t.text) {
		return Other
	}
	r, _ := utf8.DecodeRuneInString(t.text[i:])
	return Classify(r)
}

// All returns a sequence over the remaining tokens. It shares the
// Tokenizer's position, so tokens consumed by one range loop are not seen
// again by the next.
func (t *Tokenizer) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			token, ok := t.Next()
			if !ok || !yield(token) {
				return
			}
		}
	}
}

// Seq returns a single-use sequence over the tokens of text.
func Seq(text string) iter.Seq[string] {
	return New(text).All()
}

// Split returns the tokens of text in order. It returns nil when text has
// no letters or digits.
func Split(text string) []string {
	var tokens []string
	t := New(text)
	for token, ok := t.Next(); ok; token, ok = t.Next() {
		tokens = append(tokens, token)
	}
	return tokens
}
