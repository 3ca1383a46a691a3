package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/wordcase"
	"github.com/erraggy/wordcase/casing"
)

type convertInput struct {
	Text       string `json:"text"                 jsonschema:"Text to convert"`
	Convention string `json:"convention,omitempty" jsonschema:"Target convention: camel\\, kebab\\, snake or start. Aliases such as kebab-case are accepted. Defaults to WORDCASE_CONVENTION."`
	Fold       *bool  `json:"fold,omitempty"       jsonschema:"Fold diacritics before tokenizing (default true)"`
}

type convertOutput struct {
	Output     string   `json:"output"`
	Convention string   `json:"convention"`
	Tokens     []string `json:"tokens"`
	Folded     bool     `json:"folded"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	opts := append(cfg.Options(), wordcase.WithText(input.Text))
	if input.Convention != "" {
		opts = append(opts, wordcase.WithConventionName(input.Convention))
	}
	if input.Fold != nil {
		opts = append(opts, wordcase.WithFolding(*input.Fold))
	}

	result, err := wordcase.ConvertWithOptions(opts...)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	return nil, convertOutput{
		Output:     result.Output,
		Convention: result.Convention.String(),
		Tokens:     result.Tokens,
		Folded:     result.Folded,
	}, nil
}

type conventionsInput struct{}

type conventionInfo struct {
	Name      string `json:"name"`
	Separator string `json:"separator"`
	Example   string `json:"example"`
}

type conventionsOutput struct {
	Default     string           `json:"default"`
	Conventions []conventionInfo `json:"conventions"`
}

// conventionExample is rendered in every convention by the conventions tool.
const conventionExample = "MerryNEWYear 50 bucks"

func handleConventions(_ context.Context, _ *mcp.CallToolRequest, _ conventionsInput) (*mcp.CallToolResult, conventionsOutput, error) {
	all := casing.Conventions()
	out := conventionsOutput{
		Default:     cfg.Convention.String(),
		Conventions: make([]conventionInfo, 0, len(all)),
	}
	for _, c := range all {
		out.Conventions = append(out.Conventions, conventionInfo{
			Name:      c.String(),
			Separator: c.Separator(),
			Example:   wordcase.Convert(conventionExample, c),
		})
	}
	return nil, out, nil
}
