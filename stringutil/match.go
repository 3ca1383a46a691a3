// Package stringutil provides a cached regular expression predicate and
// character-indexed substrings.
package stringutil

import (
	"regexp"
	"sync"
	"sync/atomic"

	"github.com/erraggy/wordcase/wcerrors"
)

// maxPatternCacheSize bounds the number of compiled patterns kept in memory.
const maxPatternCacheSize = 1000

var (
	// patternCache caches compiled patterns (sync.Map[string, *regexp.Regexp])
	patternCache sync.Map

	// patternCount tracks the approximate number of cached patterns
	patternCount atomic.Int32
)

// Matches reports whether subject contains a match of the regular
// expression pattern. An invalid pattern never matches.
//
//	stringutil.Matches("Dollar and Cent", `and Cent$`) // true
func Matches(subject, pattern string) bool {
	ok, err := Match(subject, pattern)
	return err == nil && ok
}

// Match is like Matches but reports an invalid pattern as a
// *wcerrors.PatternError.
func Match(subject, pattern string) (bool, error) {
	re, err := compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(subject), nil
}

// compile returns the cached compiled form of pattern.
func compile(pattern string) (*regexp.Regexp, error) {
	if cached, ok := patternCache.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &wcerrors.PatternError{Pattern: pattern, Cause: err}
	}

	// The count check and clear are not atomic. Concurrent callers may both
	// clear; the worst case is extra recompilation.
	if patternCount.Add(1) > maxPatternCacheSize {
		patternCache.Range(func(key, _ any) bool {
			patternCache.Delete(key)
			return true
		})
		patternCount.Store(1)
	}
	patternCache.Store(pattern, re)
	return re, nil
}
