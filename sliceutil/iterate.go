package sliceutil

// Each calls fn for every element of s in order and returns s.
func Each[S ~[]E, E any](s S, fn func(E)) S {
	for _, e := range s {
		fn(e)
	}
	return s
}

// EachWhen calls fn for every element of s that satisfies when, in order,
// and returns s.
func EachWhen[S ~[]E, E any](s S, when func(E) bool, fn func(E)) S {
	for _, e := range s {
		if when(e) {
			fn(e)
		}
	}
	return s
}

// Cycle calls fn for every element of s, repeating the whole pass times
// times. A non-positive times does nothing.
func Cycle[S ~[]E, E any](s S, times int, fn func(E)) {
	for range times {
		for _, e := range s {
			fn(e)
		}
	}
}

// Filter returns a new slice holding the elements of s that satisfy pred,
// in order. s is not modified.
func Filter[S ~[]E, E any](s S, pred func(E) bool) S {
	out := make(S, 0, len(s))
	for _, e := range s {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// Every reports whether pred holds for every element. It is true for an
// empty slice.
func Every[S ~[]E, E any](s S, pred func(E) bool) bool {
	for _, e := range s {
		if !pred(e) {
			return false
		}
	}
	return true
}

// ReduceWithIndex folds s into a single value, passing each element's index
// to fn along with the accumulator.
func ReduceWithIndex[S ~[]E, E, A any](s S, initial A, fn func(acc A, i int, e E) A) A {
	acc := initial
	for i, e := range s {
		acc = fn(acc, i, e)
	}
	return acc
}

// ZipObject pairs keys with values by position. Extra keys or values beyond
// the shorter slice are ignored. A repeated key keeps its last value.
func ZipObject[K comparable, V any](keys []K, values []V) map[K]V {
	n := min(len(keys), len(values))
	m := make(map[K]V, n)
	for i := range n {
		m[keys[i]] = values[i]
	}
	return m
}
