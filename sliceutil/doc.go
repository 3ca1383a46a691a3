// Package sliceutil provides generic helpers over slices that the standard
// slices package does not cover: callbacks over a subset, Filter and Find,
// fetching by negative index, reducing with an index, zipping into a map,
// and flattening arbitrarily nested slices. InRange tests a value against a
// closed interval.
//
// Lookups that can miss return a second boolean result rather than a
// sentinel value:
//
//	last, ok := sliceutil.Fetch([]int{1, 2, 3}, -1) // 3, true
//	_, ok = sliceutil.Fetch([]int{1, 2, 3}, 100)    // 0, false
package sliceutil
