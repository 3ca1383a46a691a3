// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes wordcase capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/wordcase"
	"github.com/erraggy/wordcase/wcerrors"
)

const serverInstructions = `wordcase MCP server: splits text into words, folds accented Latin letters to ASCII, and renders identifiers in camel, kebab, snake or start case.

Configuration: defaults come from WORDCASE_* environment variables set in your MCP client config, optionally layered over a YAML file named by WORDCASE_CONFIG.

Key settings:
- WORDCASE_CONVENTION (default: camel) - convention used by convert when none is given
- WORDCASE_FOLD (default: true) - fold diacritics before tokenizing
- WORDCASE_MAX_INPUT_SIZE (default: 1048576) - maximum text size in bytes
- WORDCASE_MCP_MAX_PATTERN_LENGTH (default: 1024) - maximum regex size for match`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "wordcase", Version: wordcase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "fold",
		Description: "Replace accented and decorated Latin letters with their ASCII base letter, preserving case. Everything else (digits, punctuation, other scripts) is returned unchanged.",
	}, handleFold)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "words",
		Description: "Split text into word tokens. Punctuation and whitespace are dropped; camelCase humps, acronym ends (NEWYear -> NEW, Year) and digit-to-capital transitions start new words. Set fold=true to fold diacritics first.",
	}, handleWords)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert text to an identifier in camel, kebab, snake or start case. Diacritics are folded unless fold=false. The default convention is configurable via WORDCASE_CONVENTION.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "conventions",
		Description: "List the supported naming conventions with their separators and an example rendering.",
	}, handleConventions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "match",
		Description: "Report whether a subject string contains a match for a Go (RE2) regular expression.",
	}, handleMatch)
}

// checkTextSize rejects text larger than the configured input limit.
func checkTextSize(text string) error {
	if size := int64(len(text)); size > cfg.MaxInputSize {
		return &wcerrors.ResourceLimitError{ResourceType: "input_size", Limit: cfg.MaxInputSize, Actual: size}
	}
	return nil
}

// pathPattern matches absolute paths under common filesystem roots.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError strips absolute filesystem paths from error messages
// so config file locations are not leaked to MCP clients.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
