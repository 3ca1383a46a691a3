package commands

import (
	"flag"

	"github.com/erraggy/wordcase"
	"github.com/erraggy/wordcase/internal/config"
)

// FoldFlags contains flags for the fold command
type FoldFlags struct {
	commonFlags
}

// FoldOutput is the structured output of the fold command.
type FoldOutput struct {
	Input  string `json:"input"  yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

// SetupFoldFlags creates and configures a FlagSet for the fold command.
func SetupFoldFlags(cfg *config.Config) (*flag.FlagSet, *FoldFlags) {
	fs := flag.NewFlagSet("fold", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := &FoldFlags{}
	flags.register(fs, cfg.Format)

	fs.Usage = usage(fs, "fold [flags] <text...|->",
		"Replace accented Latin letters with their ASCII base letter, keeping case.",
		`wordcase fold "Thé Dûkęs àrè gôïng"`,
		"cat names.txt | wordcase fold -",
	)
	return fs, flags
}

// HandleFold executes the fold command
func HandleFold(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fs, flags := SetupFoldFlags(cfg)
	if done, err := parseArgs(fs, &flags.commonFlags, args); done || err != nil {
		return err
	}

	text, err := readText(fs, cfg.MaxInputSize)
	if err != nil {
		return err
	}
	folded := wordcase.FoldDiacritics(text)
	flags.logger().Debug("folded text", "input_size", len(text))

	if flags.Format == FormatText {
		Writef(stdout, "%s\n", folded)
		return nil
	}
	return OutputStructured(FoldOutput{Input: text, Output: folded}, flags.Format)
}
