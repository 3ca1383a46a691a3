// Package maputil provides generic helpers for maps.
package maputil

import (
	"cmp"
	"maps"
	"slices"
)

// Merge copies every entry of srcs into dst, left to right. When a key
// appears in more than one source the last one wins. Nil sources are
// skipped. dst is returned for chaining and must not be nil.
func Merge[M ~map[K]V, K comparable, V any](dst M, srcs ...M) M {
	for _, src := range srcs {
		maps.Copy(dst, src)
	}
	return dst
}

// Merged returns a new map holding the entries of srcs, left to right,
// with later sources overwriting earlier keys. The sources are not modified.
func Merged[M ~map[K]V, K comparable, V any](srcs ...M) M {
	size := 0
	for _, src := range srcs {
		size += len(src)
	}
	return Merge(make(M, size), srcs...)
}

// SortedKeys returns the keys of m in ascending order. It returns an empty,
// non-nil slice for an empty or nil map.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
