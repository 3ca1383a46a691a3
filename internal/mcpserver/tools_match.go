package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/wordcase/stringutil"
	"github.com/erraggy/wordcase/wcerrors"
)

type matchInput struct {
	Subject string `json:"subject" jsonschema:"String to search"`
	Pattern string `json:"pattern" jsonschema:"Go (RE2) regular expression"`
}

type matchOutput struct {
	Matched bool `json:"matched"`
}

func handleMatch(_ context.Context, _ *mcp.CallToolRequest, input matchInput) (*mcp.CallToolResult, matchOutput, error) {
	if err := checkTextSize(input.Subject); err != nil {
		return errResult(err), matchOutput{}, nil
	}
	if len(input.Pattern) > cfg.MaxPatternLength {
		return errResult(&wcerrors.ResourceLimitError{
			ResourceType: "pattern_length",
			Limit:        int64(cfg.MaxPatternLength),
			Actual:       int64(len(input.Pattern)),
		}), matchOutput{}, nil
	}

	matched, err := stringutil.Match(input.Subject, input.Pattern)
	if err != nil {
		return errResult(fmt.Errorf("match: %w", err)), matchOutput{}, nil
	}
	return nil, matchOutput{Matched: matched}, nil
}
