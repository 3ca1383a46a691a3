// Package cliutil provides input and output helpers for the wordcase CLI.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// ErrOutput receives write failures reported by Writef.
var ErrOutput io.Writer = os.Stderr

// Writef writes formatted output to the writer.
// A failed write is reported on ErrOutput instead of being returned, so
// command output code stays linear.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(ErrOutput, "write error: %v\n", err)
	}
}

// Writeln writes each line followed by a newline.
func Writeln(w io.Writer, lines ...string) {
	for _, line := range lines {
		Writef(w, "%s\n", line)
	}
}
