// Package wcerrors provides structured error types for wordcase.
//
// Import path: github.com/erraggy/wordcase/wcerrors
//
// Folding, tokenizing and rendering never fail. The errors in this package
// come from the edges of the library: option validation, convention and
// unit names, regular expressions, input size limits and configuration
// files. Each error type has a sentinel for use with [errors.Is]:
//
//   - [ParseError] matches [ErrParse]: a configuration file could not be decoded
//   - [ConfigError] matches [ErrConfig]: an invalid option, name or setting
//   - [ResourceLimitError] matches [ErrResourceLimit]: input larger than allowed
//   - [PatternError] matches [ErrPattern]: a regular expression failed to compile
//
// Extract details with [errors.As]:
//
//	var cfgErr *wcerrors.ConfigError
//	if errors.As(err, &cfgErr) {
//	    fmt.Printf("bad %s: %v\n", cfgErr.Option, cfgErr.Value)
//	}
package wcerrors
