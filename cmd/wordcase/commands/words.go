package commands

import (
	"flag"

	"github.com/erraggy/wordcase"
	"github.com/erraggy/wordcase/internal/cliutil"
	"github.com/erraggy/wordcase/internal/config"
)

// WordsFlags contains flags for the words command
type WordsFlags struct {
	commonFlags
	Fold bool
}

// WordsOutput is the structured output of the words command.
type WordsOutput struct {
	Tokens []string `json:"tokens" yaml:"tokens"`
	Count  int      `json:"count"  yaml:"count"`
}

// SetupWordsFlags creates and configures a FlagSet for the words command.
func SetupWordsFlags(cfg *config.Config) (*flag.FlagSet, *WordsFlags) {
	fs := flag.NewFlagSet("words", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := &WordsFlags{}
	flags.register(fs, cfg.Format)
	fs.BoolVar(&flags.Fold, "fold", false, "fold diacritics before splitting")

	fs.Usage = usage(fs, "words [flags] <text...|->",
		"Split text into words, one per line.",
		`wordcase words "DollarAndCent dollar-and-cent"`,
		`wordcase words --format json "MerryNEWYear!"`,
	)
	return fs, flags
}

// HandleWords executes the words command
func HandleWords(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fs, flags := SetupWordsFlags(cfg)
	if done, err := parseArgs(fs, &flags.commonFlags, args); done || err != nil {
		return err
	}

	text, err := readText(fs, cfg.MaxInputSize)
	if err != nil {
		return err
	}
	if flags.Fold {
		text = wordcase.FoldDiacritics(text)
	}
	tokens := wordcase.TokenizeWords(text)
	if tokens == nil {
		tokens = []string{}
	}
	flags.logger().Debug("split text", "tokens", len(tokens), "folded", flags.Fold)

	if flags.Format == FormatText {
		cliutil.Writeln(stdout, tokens...)
		return nil
	}
	return OutputStructured(WordsOutput{Tokens: tokens, Count: len(tokens)}, flags.Format)
}
