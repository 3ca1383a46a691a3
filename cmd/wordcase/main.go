// Command wordcase tokenizes text and converts it between naming
// conventions.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/wordcase"
	"github.com/erraggy/wordcase/casing"
	"github.com/erraggy/wordcase/cmd/wordcase/commands"
)

// handlers maps command names to their implementations.
var handlers = map[string]func(args []string) error{
	"fold":    commands.HandleFold,
	"words":   commands.HandleWords,
	"convert": commands.HandleConvert,
	"camel":   commands.ConventionCommand(casing.Camel),
	"kebab":   commands.ConventionCommand(casing.Kebab),
	"snake":   commands.ConventionCommand(casing.Snake),
	"start":   commands.ConventionCommand(casing.Start),
	"match":   commands.HandleMatch,
	"mcp":     commands.HandleMCP,
}

// commandNames lists every command for typo suggestions.
var commandNames = []string{
	"version", "help", "fold", "words", "convert",
	"camel", "kebab", "snake", "start", "match", "mcp",
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches args and returns the process exit code.
func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 1
	}

	command := args[0]
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("wordcase v%s\n", wordcase.Version())
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	}

	handler, ok := handlers[command]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		return 1
	}

	if err := handler(args[1:]); err != nil {
		if !errors.Is(err, commands.ErrNoMatch) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Print(`wordcase - split text into words and convert naming conventions

Usage:
  wordcase <command> [flags] <text...|->

Commands:
  fold       Replace accented Latin letters with ASCII base letters
  words      Split text into words
  convert    Convert text to a naming convention (--to camel|kebab|snake|start)
  camel      Shortcut for convert --to camel
  kebab      Shortcut for convert --to kebab
  snake      Shortcut for convert --to snake
  start      Shortcut for convert --to start
  match      Test a string against a regular expression
  mcp        Run the MCP server on stdio
  version    Show version information
  help       Show this help message

Configuration:
  WORDCASE_CONFIG           path to a YAML settings file
  WORDCASE_CONVENTION       default convention for convert
  WORDCASE_FOLD             fold diacritics by default (true/false)
  WORDCASE_MAX_INPUT_SIZE   input size limit in bytes
  WORDCASE_FORMAT           default output format: text, json, or yaml
  A .env file in the working directory is read first.

Examples:
  wordcase kebab "MerryNEWYear!"
  wordcase convert --to snake "In Philàdèlphia, it is wõrth 50 bucks."
  echo "the sports-watch of the '80s" | wordcase start -
  wordcase words --format json "DollarAndCent"

Run 'wordcase <command> --help' for more information on a command.
`)
}
