package cliutil

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/wordcase/internal/options"
	"github.com/erraggy/wordcase/wcerrors"
)

// StdinArg is the positional argument that selects standard input.
const StdinArg = "-"

// InputReader returns the command input: standard input when args is just
// "-", otherwise the positional arguments joined with single spaces.
func InputReader(args []string, stdin io.Reader) io.Reader {
	if len(args) == 1 && args[0] == StdinArg {
		return stdin
	}
	return strings.NewReader(strings.Join(args, " "))
}

// ReadLimited reads all of r, failing with a *wcerrors.ResourceLimitError
// when more than limit bytes are available. Reading stops one byte past the
// limit, so the error's Actual size is left unset.
func ReadLimited(r io.Reader, limit int64) (string, error) {
	var buf bytes.Buffer
	n, err := buf.ReadFrom(options.LimitReader(r, limit))
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if n > limit {
		return "", &wcerrors.ResourceLimitError{ResourceType: "input_size", Limit: limit}
	}
	return buf.String(), nil
}
