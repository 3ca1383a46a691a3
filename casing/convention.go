package casing

import (
	"strings"

	"github.com/erraggy/wordcase/wcerrors"
	"github.com/erraggy/wordcase/words"
)

// Convention is an identifier naming convention.
type Convention int

const (
	// Camel renders "camelCase".
	Camel Convention = iota
	// Kebab renders "kebab-case".
	Kebab
	// Snake renders "snake_case".
	Snake
	// Start renders "Start Case".
	Start
)

// String returns the canonical convention name.
func (c Convention) String() string {
	switch c {
	case Camel:
		return "camel"
	case Kebab:
		return "kebab"
	case Snake:
		return "snake"
	case Start:
		return "start"
	default:
		return "unknown"
	}
}

// IsValid reports whether c is one of the declared conventions.
func (c Convention) IsValid() bool {
	return c >= Camel && c <= Start
}

// Separator returns the string placed between rendered tokens.
func (c Convention) Separator() string {
	switch c {
	case Camel:
		return ""
	case Kebab:
		return "-"
	case Snake:
		return "_"
	default:
		return " "
	}
}

// Conventions returns every convention in declaration order.
func Conventions() []Convention {
	return []Convention{Camel, Kebab, Snake, Start}
}

// conventionAliases maps the squashed, lowercased words of a name to its
// convention.
var conventionAliases = map[string]Convention{
	"camel":      Camel,
	"camelcase":  Camel,
	"lowercamel": Camel,
	"kebab":      Kebab,
	"kebabcase":  Kebab,
	"dash":       Kebab,
	"snake":      Snake,
	"snakecase":  Snake,
	"underscore": Snake,
	"start":      Start,
	"startcase":  Start,
	"title":      Start,
	"titlecase":  Start,
}

// ParseConvention resolves a convention name. Names are matched by their
// words, ignoring case and separators, so "camel", "camelCase", "kebab-case",
// "snake_case" and "Start Case" are all accepted. Unknown names return a
// *wcerrors.ConfigError.
func ParseConvention(name string) (Convention, error) {
	key := strings.ToLower(strings.Join(words.Split(name), ""))
	if c, ok := conventionAliases[key]; ok {
		return c, nil
	}
	return Camel, &wcerrors.ConfigError{
		Option:  "convention",
		Value:   name,
		Message: "valid conventions: camel, kebab, snake, start",
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Convention) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, &wcerrors.ConfigError{Option: "convention", Value: int(c), Message: "not a declared convention"}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseConvention.
func (c *Convention) UnmarshalText(text []byte) error {
	parsed, err := ParseConvention(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
