package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/wordcase/internal/config"
	"github.com/erraggy/wordcase/stringutil"
)

// MatchFlags contains flags for the match command
type MatchFlags struct {
	commonFlags
	Quiet bool
}

// MatchOutput is the structured output of the match command.
type MatchOutput struct {
	Subject string `json:"subject" yaml:"subject"`
	Pattern string `json:"pattern" yaml:"pattern"`
	Matched bool   `json:"matched" yaml:"matched"`
}

// SetupMatchFlags creates and configures a FlagSet for the match command.
func SetupMatchFlags(cfg *config.Config) (*flag.FlagSet, *MatchFlags) {
	fs := flag.NewFlagSet("match", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := &MatchFlags{}
	flags.register(fs, cfg.Format)
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: print nothing, report through the exit code")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: wordcase match [flags] <subject> <pattern>\n\n")
		Writef(output, "Report whether subject contains a match for a Go (RE2) regular expression.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  wordcase match \"Dollar and Cent\" 'and Cent$'\n")
		Writef(output, "  wordcase match -q \"$BRANCH\" '^release/' && echo release\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    The pattern matched\n")
		Writef(output, "  1    No match, or an invalid pattern\n")
	}
	return fs, flags
}

// HandleMatch executes the match command. It returns ErrNoMatch when the
// pattern does not match.
func HandleMatch(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fs, flags := SetupMatchFlags(cfg)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("match command requires exactly a subject and a pattern")
	}

	subject, pattern := fs.Arg(0), fs.Arg(1)
	matched, err := stringutil.Match(subject, pattern)
	if err != nil {
		return err
	}
	flags.logger().Debug("matched pattern", "pattern", pattern, "matched", matched)

	switch {
	case flags.Quiet:
	case flags.Format == FormatText:
		Writef(stdout, "%t\n", matched)
	default:
		if err := OutputStructured(MatchOutput{Subject: subject, Pattern: pattern, Matched: matched}, flags.Format); err != nil {
			return err
		}
	}

	if !matched {
		return ErrNoMatch
	}
	return nil
}
