package wordcase

import (
	"bytes"
	"fmt"
	"io"

	"github.com/erraggy/wordcase/casing"
	"github.com/erraggy/wordcase/internal/options"
	"github.com/erraggy/wordcase/wcerrors"
	"github.com/erraggy/wordcase/words"
)

// DefaultMaxInputSize is the input limit used when WithMaxInputSize is not
// given or is zero.
const DefaultMaxInputSize int64 = 1 << 20

// Option is a function that configures a conversion.
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion
type convertConfig struct {
	// Input source (exactly one must be set)
	text   *string
	reader io.Reader
	bytes  []byte

	convention   casing.Convention
	fold         bool
	maxInputSize int64 // 0 means DefaultMaxInputSize
	logger       Logger
}

// ConvertResult is the outcome of ConvertWithOptions.
type ConvertResult struct {
	// Output is the rendered identifier.
	Output string `json:"output" yaml:"output"`
	// Tokens are the words Output was rendered from, after folding.
	Tokens []string `json:"tokens" yaml:"tokens"`
	// Convention is the convention Output was rendered in.
	Convention casing.Convention `json:"convention" yaml:"convention"`
	// Folded reports whether diacritics were folded before tokenizing.
	Folded bool `json:"folded" yaml:"folded"`
	// InputSize is the input length in bytes.
	InputSize int64 `json:"input_size" yaml:"input_size"`
}

// ConvertWithOptions converts text using functional options.
//
// Example:
//
//	result, err := wordcase.ConvertWithOptions(
//	    wordcase.WithText("Crème Brûlée recipe"),
//	    wordcase.WithConvention(casing.Snake),
//	)
//	// result.Output == "creme_brulee_recipe"
func ConvertWithOptions(opts ...Option) (*ConvertResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("wordcase: invalid options: %w", err)
	}

	text, err := cfg.readInput()
	if err != nil {
		return nil, err
	}

	tokens := words.Split(prepare(text, cfg.fold))
	if tokens == nil {
		tokens = []string{}
	}
	result := &ConvertResult{
		Output:     casing.Render(tokens, cfg.convention),
		Tokens:     tokens,
		Convention: cfg.convention,
		Folded:     cfg.fold,
		InputSize:  int64(len(text)),
	}

	cfg.logger.Debug("converted text",
		"convention", cfg.convention.String(),
		"tokens", len(tokens),
		"input_size", result.InputSize,
		"folded", cfg.fold,
	)
	return result, nil
}

// readInput returns the input text, enforcing the size limit.
func (cfg *convertConfig) readInput() (string, error) {
	limit := cfg.maxInputSize
	switch {
	case cfg.text != nil:
		return checkSize(*cfg.text, limit)
	case cfg.bytes != nil:
		return checkSize(string(cfg.bytes), limit)
	case cfg.reader != nil:
		var buf bytes.Buffer
		// Read one byte past the limit to detect oversized input without
		// buffering all of it. The full size of streamed input is never
		// known, so the error leaves Actual unset.
		n, err := buf.ReadFrom(options.LimitReader(cfg.reader, limit))
		if err != nil {
			return "", fmt.Errorf("wordcase: reading input: %w", err)
		}
		if n > limit {
			cfg.logger.Warn("input exceeds limit", "limit", limit)
			return "", &wcerrors.ResourceLimitError{ResourceType: "input_size", Limit: limit}
		}
		return buf.String(), nil
	default:
		return "", fmt.Errorf("wordcase: no input source specified")
	}
}

func checkSize(text string, limit int64) (string, error) {
	if size := int64(len(text)); size > limit {
		return "", &wcerrors.ResourceLimitError{ResourceType: "input_size", Limit: limit, Actual: size}
	}
	return text, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		convention: casing.Camel,
		fold:       true,
		logger:     NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithText, WithBytes, or WithReader)",
		"must specify exactly one input source",
		cfg.text != nil, cfg.bytes != nil, cfg.reader != nil,
	); err != nil {
		return nil, err
	}

	if cfg.maxInputSize == 0 {
		cfg.maxInputSize = DefaultMaxInputSize
	}
	return cfg, nil
}

// WithText specifies a string as the input source
func WithText(text string) Option {
	return func(cfg *convertConfig) error {
		cfg.text = &text
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *convertConfig) error {
		if data == nil {
			return &wcerrors.ConfigError{Option: "input", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *convertConfig) error {
		if r == nil {
			return &wcerrors.ConfigError{Option: "input", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithConvention sets the output convention.
// Default: casing.Camel
func WithConvention(c casing.Convention) Option {
	return func(cfg *convertConfig) error {
		if !c.IsValid() {
			return &wcerrors.ConfigError{Option: "convention", Value: int(c), Message: "unknown convention"}
		}
		cfg.convention = c
		return nil
	}
}

// WithConventionName sets the output convention by name, accepting the
// aliases casing.ParseConvention understands ("kebab-case", "SNAKE", ...).
func WithConventionName(name string) Option {
	return func(cfg *convertConfig) error {
		c, err := casing.ParseConvention(name)
		if err != nil {
			return err
		}
		cfg.convention = c
		return nil
	}
}

// WithFolding enables or disables diacritic folding.
// Default: true
func WithFolding(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.fold = enabled
		return nil
	}
}

// WithMaxInputSize limits the input length in bytes.
// Default: DefaultMaxInputSize. Zero selects the default.
func WithMaxInputSize(n int64) Option {
	return func(cfg *convertConfig) error {
		if err := options.NonNegative("max_input_size", n); err != nil {
			return err
		}
		cfg.maxInputSize = n
		return nil
	}
}

// WithLogger sets a structured logger. A nil logger disables logging.
func WithLogger(l Logger) Option {
	return func(cfg *convertConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}
