// Package config loads the settings shared by the wordcase CLI and MCP
// server.
//
// Sources are applied in order, later ones winning:
//
//  1. built-in defaults
//  2. a YAML file named by WORDCASE_CONFIG
//  3. WORDCASE_* environment variables
//
// Before any of that, a .env file in the working directory is loaded into
// the process environment. Variables that are already set are never
// overridden by .env.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/wordcase"
	"github.com/erraggy/wordcase/casing"
	"github.com/erraggy/wordcase/wcerrors"
)

// Environment variables read by Load.
const (
	EnvConfigFile   = "WORDCASE_CONFIG"
	EnvConvention   = "WORDCASE_CONVENTION"
	EnvFold         = "WORDCASE_FOLD"
	EnvMaxInputSize = "WORDCASE_MAX_INPUT_SIZE"
	EnvFormat       = "WORDCASE_FORMAT"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the resolved settings.
type Config struct {
	Convention   casing.Convention
	Fold         bool
	MaxInputSize int64
	Format       string
}

// fileConfig is the YAML file layout. Pointers distinguish absent keys from
// zero values.
type fileConfig struct {
	Convention   string `yaml:"convention"`
	Fold         *bool  `yaml:"fold"`
	MaxInputSize *int64 `yaml:"max_input_size"`
	Format       string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Convention:   casing.Camel,
		Fold:         true,
		MaxInputSize: wordcase.DefaultMaxInputSize,
		Format:       FormatText,
	}
}

// Load reads .env from the working directory, then the optional YAML file
// and the environment.
func Load() (*Config, error) {
	return LoadWithEnvFile(".env")
}

// LoadWithEnvFile is like Load but reads the dotenv file at envFile. A
// missing file is not an error.
func LoadWithEnvFile(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, &wcerrors.ConfigError{Option: "env file", Value: envFile, Cause: err}
	}

	cfg := Default()
	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyFile merges the YAML file at path into c.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is operator-supplied configuration
	if err != nil {
		return &wcerrors.ConfigError{Option: EnvConfigFile, Value: path, Message: "cannot read config file", Cause: err}
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return &wcerrors.ConfigError{
			Option: EnvConfigFile,
			Value:  path,
			Cause:  &wcerrors.ParseError{Path: path, Message: "invalid YAML", Cause: err},
		}
	}

	if fc.Convention != "" {
		conv, err := casing.ParseConvention(fc.Convention)
		if err != nil {
			return err
		}
		c.Convention = conv
	}
	if fc.Fold != nil {
		c.Fold = *fc.Fold
	}
	if fc.MaxInputSize != nil {
		if *fc.MaxInputSize <= 0 {
			return &wcerrors.ConfigError{Option: "max_input_size", Value: *fc.MaxInputSize, Message: "must be positive"}
		}
		c.MaxInputSize = *fc.MaxInputSize
	}
	if fc.Format != "" {
		if !validFormat(fc.Format) {
			return &wcerrors.ConfigError{Option: "format", Value: fc.Format, Message: "valid formats: text, json, yaml"}
		}
		c.Format = strings.ToLower(fc.Format)
	}
	return nil
}

// applyEnv overrides c from WORDCASE_* variables. Invalid values log a
// warning and keep the current setting.
func (c *Config) applyEnv() {
	c.Convention = envConvention(EnvConvention, c.Convention)
	c.Fold = envBool(EnvFold, c.Fold)
	c.MaxInputSize = envInt64(EnvMaxInputSize, c.MaxInputSize)
	c.Format = envFormat(EnvFormat, c.Format)
}

// Options returns the conversion options matching c. The caller adds the
// input source and convention overrides.
func (c *Config) Options() []wordcase.Option {
	return []wordcase.Option{
		wordcase.WithConvention(c.Convention),
		wordcase.WithFolding(c.Fold),
		wordcase.WithMaxInputSize(c.MaxInputSize),
	}
}

func validFormat(f string) bool {
	switch strings.ToLower(f) {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envConvention(key string, fallback casing.Convention) casing.Convention {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	c, err := casing.ParseConvention(v)
	if err != nil {
		slog.Warn("invalid convention env var, using default", "key", key, "value", v, "default", fallback.String()) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return c
}

func envFormat(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if !validFormat(v) {
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return strings.ToLower(v)
}
