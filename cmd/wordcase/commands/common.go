// Package commands provides CLI command handlers for wordcase.
package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/wordcase"
	"github.com/erraggy/wordcase/internal/cliutil"
	"github.com/erraggy/wordcase/internal/config"
)

// Output format constants
const (
	FormatText = config.FormatText
	FormatJSON = config.FormatJSON
	FormatYAML = config.FormatYAML
)

// Standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// ErrNoMatch is returned by HandleMatch when the pattern does not match.
// main exits with status 1 without printing an error.
var ErrNoMatch = errors.New("no match")

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	Writef(stdout, "%s\n", bytes)
	return nil
}

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// loadConfig reads the shared configuration used for flag defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

// commonFlags are shared by every text command.
type commonFlags struct {
	Format  string
	Verbose bool
}

func (c *commonFlags) register(fs *flag.FlagSet, defaultFormat string) {
	fs.StringVar(&c.Format, "format", defaultFormat, "output format: text, json, or yaml")
	fs.BoolVar(&c.Verbose, "v", false, "verbose: log debug output to stderr")
}

// logger returns the library logger for the command. Verbose mode installs
// a debug-level slog text handler on stderr.
func (c *commonFlags) logger() wordcase.Logger {
	if !c.Verbose {
		return wordcase.NopLogger{}
	}
	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return wordcase.NewSlogAdapter(slog.New(handler))
}

// parseArgs parses args and validates the output format. It returns
// done=true when help was requested.
func parseArgs(fs *flag.FlagSet, common *commonFlags, args []string) (done bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, err
	}
	if err := ValidateOutputFormat(common.Format); err != nil {
		return false, err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return false, fmt.Errorf("%s command requires text or '-' for stdin", fs.Name())
	}
	return false, nil
}

// readerFor returns the command input as a reader.
func readerFor(fs *flag.FlagSet) io.Reader {
	return cliutil.InputReader(fs.Args(), stdin)
}

// readText reads the command input, honoring the configured size limit.
func readText(fs *flag.FlagSet, limit int64) (string, error) {
	return cliutil.ReadLimited(readerFor(fs), limit)
}

// usage builds a FlagSet usage function in the common layout.
func usage(fs *flag.FlagSet, synopsis, description string, examples ...string) func() {
	return func() {
		output := fs.Output()
		Writef(output, "Usage: wordcase %s\n\n", synopsis)
		Writef(output, "%s\n\n", description)
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		if len(examples) > 0 {
			Writef(output, "\nExamples:\n")
			for _, ex := range examples {
				Writef(output, "  %s\n", ex)
			}
		}
		Writef(output, "\nInput:\n")
		Writef(output, "  Positional arguments are joined with single spaces. Use '-' to read stdin.\n")
	}
}
