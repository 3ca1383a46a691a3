package commands

import (
	"flag"
	"fmt"

	"github.com/erraggy/wordcase"
	"github.com/erraggy/wordcase/casing"
	"github.com/erraggy/wordcase/internal/config"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	commonFlags
	To           string
	NoFold       bool
	MaxInputSize int64
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// name is the command name; fixed is the convention of a shortcut command
// such as "kebab", or nil for convert itself, which takes --to.
func SetupConvertFlags(cfg *config.Config, name string, fixed *casing.Convention) (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := &ConvertFlags{}
	flags.register(fs, cfg.Format)
	fs.BoolVar(&flags.NoFold, "no-fold", !cfg.Fold, "keep diacritics instead of folding them")
	fs.Int64Var(&flags.MaxInputSize, "max-input-size", cfg.MaxInputSize, "maximum input size in bytes")

	if fixed == nil {
		fs.StringVar(&flags.To, "to", cfg.Convention.String(), "target convention: camel, kebab, snake, or start")
		fs.Usage = usage(fs, "convert [flags] <text...|->",
			"Convert text to an identifier in the given naming convention.",
			`wordcase convert --to kebab "MerryNEWYear!"`,
			`wordcase convert --to start --format json "the sports-watch of the '80s"`,
			"echo 'I will give you <50> bucks' | wordcase convert -",
		)
		return fs, flags
	}

	flags.To = fixed.String()
	fs.Usage = usage(fs, name+" [flags] <text...|->",
		fmt.Sprintf("Convert text to %s case. Same as 'wordcase convert --to %s'.", *fixed, *fixed),
		fmt.Sprintf(`wordcase %s "In Philàdèlphia, it is wõrth 50 bucks."`, name),
	)
	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	return runConvert("convert", nil, args)
}

// ConventionCommand returns the handler of a shortcut command that always
// renders in convention c.
func ConventionCommand(c casing.Convention) func(args []string) error {
	return func(args []string) error {
		return runConvert(c.String(), &c, args)
	}
}

func runConvert(name string, fixed *casing.Convention, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fs, flags := SetupConvertFlags(cfg, name, fixed)
	if done, err := parseArgs(fs, &flags.commonFlags, args); done || err != nil {
		return err
	}

	result, err := wordcase.ConvertWithOptions(
		wordcase.WithReader(readerFor(fs)),
		wordcase.WithConventionName(flags.To),
		wordcase.WithFolding(!flags.NoFold),
		wordcase.WithMaxInputSize(flags.MaxInputSize),
		wordcase.WithLogger(flags.logger()),
	)
	if err != nil {
		return err
	}

	if flags.Format == FormatText {
		Writef(stdout, "%s\n", result.Output)
		return nil
	}
	return OutputStructured(result, flags.Format)
}
