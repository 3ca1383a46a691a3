package sliceutil

import (
	"cmp"
	"slices"
)

// Get returns s[i], or false when i is out of range. Negative indexes are
// out of range; use Fetch to count from the end.
func Get[S ~[]E, E any](s S, i int) (E, bool) {
	if i < 0 || i >= len(s) {
		var zero E
		return zero, false
	}
	return s[i], true
}

// Fetch returns the element at index i, counting from the end when i is
// negative (-1 is the last element). It returns false when i is out of range.
func Fetch[S ~[]E, E any](s S, i int) (E, bool) {
	if i < 0 {
		i += len(s)
	}
	return Get(s, i)
}

// FetchOr is like Fetch but returns fallback when i is out of range.
func FetchOr[S ~[]E, E any](s S, i int, fallback E) E {
	if e, ok := Fetch(s, i); ok {
		return e
	}
	return fallback
}

// First returns the first element, or false for an empty slice.
func First[S ~[]E, E any](s S) (E, bool) {
	return Get(s, 0)
}

// Last returns the last element, or false for an empty slice.
func Last[S ~[]E, E any](s S) (E, bool) {
	return Get(s, len(s)-1)
}

// Initial returns all but the last n elements. The result shares s's
// backing array.
func Initial[S ~[]E, E any](s S, n int) S {
	n = max(0, min(n, len(s)))
	return s[:len(s)-n]
}

// Rest returns all but the first n elements. The result shares s's backing
// array.
func Rest[S ~[]E, E any](s S, n int) S {
	n = max(0, min(n, len(s)))
	return s[n:]
}

// IndexOf returns the index of the first occurrence of v, or -1.
func IndexOf[S ~[]E, E comparable](s S, v E) int {
	return slices.Index(s, v)
}

// FindIndex returns the index of the first element satisfying pred, or -1.
func FindIndex[S ~[]E, E any](s S, pred func(E) bool) int {
	return slices.IndexFunc(s, pred)
}

// Find returns the first element satisfying pred, or false when none does.
func Find[S ~[]E, E any](s S, pred func(E) bool) (E, bool) {
	return Get(s, FindIndex(s, pred))
}

// FindLastIndex returns the index of the last element satisfying pred, or -1.
func FindLastIndex[S ~[]E, E any](s S, pred func(E) bool) int {
	for i := len(s) - 1; i >= 0; i-- {
		if pred(s[i]) {
			return i
		}
	}
	return -1
}

// Contains reports whether v is present in s.
func Contains[S ~[]E, E comparable](s S, v E) bool {
	return slices.Contains(s, v)
}

// IsNotEmpty reports whether s has at least one element.
func IsNotEmpty[S ~[]E, E any](s S) bool {
	return len(s) > 0
}

// Min returns the smallest element, or false for an empty slice.
func Min[S ~[]E, E cmp.Ordered](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}
	return slices.Min(s), true
}

// Max returns the largest element, or false for an empty slice.
func Max[S ~[]E, E cmp.Ordered](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}
	return slices.Max(s), true
}

// InRange reports whether v lies in the closed interval [lo, hi].
func InRange[E cmp.Ordered](v, lo, hi E) bool {
	return lo <= v && v <= hi
}
