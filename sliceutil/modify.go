package sliceutil

import (
	"reflect"
	"slices"
)

// Remove deletes the first occurrence of v from s and reports whether it
// was found. Like slices.Delete, it modifies s in place.
func Remove[S ~[]E, E comparable](s S, v E) (S, bool) {
	i := slices.Index(s, v)
	if i < 0 {
		return s, false
	}
	return slices.Delete(s, i, i+1), true
}

// Difference returns the elements of s that are not in exclude, keeping
// their order. s is not modified.
func Difference[S ~[]E, E comparable](s S, exclude ...E) S {
	skip := make(map[E]struct{}, len(exclude))
	for _, e := range exclude {
		skip[e] = struct{}{}
	}
	out := make(S, 0, len(s))
	for _, e := range s {
		if _, ok := skip[e]; !ok {
			out = append(out, e)
		}
	}
	return out
}

// Move exchanges the elements at from and to, so s[from] ends up at index
// to. It reports false and leaves s unchanged when either index is out of
// range.
func Move[S ~[]E, E any](s S, from, to int) bool {
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) {
		return false
	}
	s[from], s[to] = s[to], s[from]
	return true
}

// Flatten walks nested slices and arrays of any depth and returns every
// leaf of type E in order. Leaves of other types are dropped.
//
//	sliceutil.Flatten[string]([]any{"foo", []any{"bar"}, [][]string{{"spam"}}})
//	// []string{"foo", "bar", "spam"}
func Flatten[E any](nested any) []E {
	var out []E
	flattenInto(&out, reflect.ValueOf(nested))
	return out
}

func flattenInto[E any](out *[]E, v reflect.Value) {
	if !v.IsValid() {
		return
	}
	if e, ok := v.Interface().(E); ok && v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		*out = append(*out, e)
		return
	}
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if !v.IsNil() {
			flattenInto(out, v.Elem())
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			flattenInto(out, v.Index(i))
		}
	}
}
