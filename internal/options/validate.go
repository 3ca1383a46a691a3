// Package options provides shared utilities for option validation across packages.
package options

import (
	"io"
	"math"

	"github.com/erraggy/wordcase/wcerrors"
)

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// noSourceMsg is the error message when no source is specified.
// multiSourceMsg is the error message when multiple sources are specified.
// The returned error is a *wcerrors.ConfigError for the "input" option.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	if sourceCount == 0 {
		return &wcerrors.ConfigError{Option: "input", Message: noSourceMsg}
	}
	if sourceCount > 1 {
		return &wcerrors.ConfigError{Option: "input", Value: sourceCount, Message: multiSourceMsg}
	}

	return nil
}

// NonNegative rejects a negative limit. Zero means "use the default".
func NonNegative(option string, n int64) error {
	if n < 0 {
		return &wcerrors.ConfigError{Option: option, Value: n, Message: "must not be negative"}
	}
	return nil
}

// LimitReader returns a reader over r that stops one byte past limit, so a
// caller that reads more than limit bytes knows the input is oversized.
// At math.MaxInt64 there is no byte past the limit and r is returned as is.
func LimitReader(r io.Reader, limit int64) io.Reader {
	if limit >= math.MaxInt64 {
		return r
	}
	return io.LimitReader(r, limit+1)
}
