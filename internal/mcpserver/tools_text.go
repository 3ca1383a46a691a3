package mcpserver

import (
	"context"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/wordcase"
)

type foldInput struct {
	Text string `json:"text" jsonschema:"Text to fold"`
}

type foldOutput struct {
	Output  string `json:"output"`
	Changed int    `json:"changed" jsonschema:"Number of characters that were folded"`
}

func handleFold(_ context.Context, _ *mcp.CallToolRequest, input foldInput) (*mcp.CallToolResult, foldOutput, error) {
	if err := checkTextSize(input.Text); err != nil {
		return errResult(err), foldOutput{}, nil
	}
	folded := wordcase.FoldDiacritics(input.Text)
	return nil, foldOutput{Output: folded, Changed: countChanged(input.Text, folded)}, nil
}

// countChanged counts rune positions that differ. Folding is one rune to
// one rune, so both strings have the same rune count.
func countChanged(before, after string) int {
	n := 0
	for len(before) > 0 && len(after) > 0 {
		r1, s1 := utf8.DecodeRuneInString(before)
		r2, s2 := utf8.DecodeRuneInString(after)
		if r1 != r2 {
			n++
		}
		before, after = before[s1:], after[s2:]
	}
	return n
}

type wordsInput struct {
	Text string `json:"text"           jsonschema:"Text to split into words"`
	Fold bool   `json:"fold,omitempty" jsonschema:"Fold diacritics before splitting"`
}

type wordsOutput struct {
	Tokens []string `json:"tokens"`
	Count  int      `json:"count"`
}

func handleWords(_ context.Context, _ *mcp.CallToolRequest, input wordsInput) (*mcp.CallToolResult, wordsOutput, error) {
	if err := checkTextSize(input.Text); err != nil {
		return errResult(err), wordsOutput{}, nil
	}
	text := input.Text
	if input.Fold {
		text = wordcase.FoldDiacritics(text)
	}
	tokens := wordcase.TokenizeWords(text)
	if tokens == nil {
		tokens = []string{}
	}
	return nil, wordsOutput{Tokens: tokens, Count: len(tokens)}, nil
}
