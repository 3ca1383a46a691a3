package wcerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates a configuration source could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid option, name or setting.
	ErrConfig = errors.New("configuration error")

	// ErrResourceLimit indicates input exceeded a configured limit.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrPattern indicates a regular expression failed to compile.
	ErrPattern = errors.New("invalid pattern")
)

// ParseError represents a failure to decode a configuration source.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where decoding failed (0 if unknown)
	Line int
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid option, name or setting.
type ConfigError struct {
	// Option is the name of the option, flag or variable
	Option string
	// Value is the rejected value (may be nil)
	Value any
	// Message describes what was expected
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ResourceLimitError reports input that is larger than a configured limit.
type ResourceLimitError struct {
	// ResourceType identifies the limit, e.g. "input_size"
	ResourceType string
	// Limit is the configured maximum
	Limit int64
	// Actual is the value that exceeded the limit. It is 0 when unknown,
	// as for streamed input, which is read only one byte past the limit.
	Actual int64
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// PatternError reports a regular expression that failed to compile.
type PatternError struct {
	// Pattern is the rejected expression
	Pattern string
	// Cause is the compile error
	Cause error
}

// Error returns a human-readable error message.
func (e *PatternError) Error() string {
	msg := fmt.Sprintf("invalid pattern %q", e.Pattern)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the compile error.
func (e *PatternError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PatternError) Is(target error) bool {
	return target == ErrPattern
}
