// Package main generates the deburr folding table from deburr/foldtable.yaml.
//
// Each YAML block names a Unicode block and lists its decorated letters with
// the ASCII letter they fold to. The generator validates every entry, sorts
// entries by code point within a block, and writes zz_generated_table.go.
//
// Usage:
//
//	go run ./internal/codegen/foldtable
//	go run ./internal/codegen/foldtable -check  # verify freshness
//
// Or via go generate:
//
//	//go:generate go run ../internal/codegen/foldtable
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"text/template"
	"unicode"
	"unicode/utf8"

	"go.yaml.in/yaml/v4"
	"golang.org/x/tools/imports"

	"github.com/erraggy/wordcase/internal/fileutil"
)

// tableFile is the layout of foldtable.yaml.
type tableFile struct {
	Blocks []struct {
		Name    string            `yaml:"name"`
		Letters map[string]string `yaml:"letters"`
	} `yaml:"blocks"`
}

// block is one validated, sorted group of entries.
type block struct {
	Name    string
	Entries []entry
}

// entry maps one decorated rune to its base letter.
type entry struct {
	Key   rune
	Value rune
}

func main() {
	check := flag.Bool("check", false, "Compare generated output with existing file and exit non-zero if stale")
	flag.Parse()

	// The generator can be invoked from the project root or from the deburr
	// directory (go generate).
	dir := "deburr"
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		dir = "."
	}
	inputPath := filepath.Join(dir, "foldtable.yaml")
	outputPath := filepath.Join(dir, "zz_generated_table.go")

	data, err := os.ReadFile(inputPath)
	if err != nil {
		fatal("failed to read %s: %v", inputPath, err)
	}
	blocks, err := load(data)
	if err != nil {
		fatal("%s: %v", inputPath, err)
	}
	formatted, err := render(blocks)
	if err != nil {
		fatal("failed to render table: %v", err)
	}

	if *check {
		existing, err := os.ReadFile(outputPath)
		if err != nil {
			fatal("failed to read existing file %s: %v", outputPath, err)
		}
		if !bytes.Equal(existing, formatted) {
			fatal("%s is stale; run 'go generate ./deburr/' to regenerate", outputPath)
		}
		fmt.Printf("%s is up to date\n", outputPath)
		return
	}

	if err := os.WriteFile(outputPath, formatted, fileutil.ReadableByAll); err != nil { //nolint:gosec // G306: generated source is world-readable
		fatal("failed to write %s: %v", outputPath, err)
	}
	fmt.Printf("Generated %s (%d entries)\n", outputPath, countEntries(blocks))
}

// load parses and validates the YAML table.
func load(data []byte) ([]block, error) {
	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if len(tf.Blocks) == 0 {
		return nil, fmt.Errorf("no blocks defined")
	}

	seen := make(map[rune]string)
	blocks := make([]block, 0, len(tf.Blocks))
	for _, b := range tf.Blocks {
		if b.Name == "" {
			return nil, fmt.Errorf("block without a name")
		}
		out := block{Name: b.Name, Entries: make([]entry, 0, len(b.Letters))}
		for k, v := range b.Letters {
			e, err := parseEntry(k, v)
			if err != nil {
				return nil, fmt.Errorf("block %q: %w", b.Name, err)
			}
			if prev, dup := seen[e.Key]; dup {
				return nil, fmt.Errorf("block %q: %q already defined in block %q", b.Name, k, prev)
			}
			seen[e.Key] = b.Name
			out.Entries = append(out.Entries, e)
		}
		slices.SortFunc(out.Entries, func(a, b entry) int { return int(a.Key - b.Key) })
		blocks = append(blocks, out)
	}
	return blocks, nil
}

// parseEntry checks that k is a single non-ASCII letter and v a single ASCII
// letter of the same case.
func parseEntry(k, v string) (entry, error) {
	key, n := utf8.DecodeRuneInString(k)
	if key == utf8.RuneError || n != len(k) {
		return entry{}, fmt.Errorf("key %q is not a single rune", k)
	}
	if key < utf8.RuneSelf || !unicode.IsLetter(key) {
		return entry{}, fmt.Errorf("key %q is not a decorated letter", k)
	}
	if len(v) != 1 || !isASCIILetter(v[0]) {
		return entry{}, fmt.Errorf("value %q for %q is not a single ASCII letter", v, k)
	}
	value := rune(v[0])
	if unicode.IsUpper(key) != unicode.IsUpper(value) {
		return entry{}, fmt.Errorf("value %q changes the case of %q", v, k)
	}
	return entry{Key: key, Value: value}, nil
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func countEntries(blocks []block) int {
	n := 0
	for _, b := range blocks {
		n += len(b.Entries)
	}
	return n
}

// render executes the template and formats the result.
func render(blocks []block) ([]byte, error) {
	var buf bytes.Buffer
	if err := tableTemplate.Execute(&buf, blocks); err != nil {
		return nil, err
	}
	return imports.Process("zz_generated_table.go", buf.Bytes(), nil)
}

var tableTemplate = template.Must(template.New("table").Parse(`// Code generated by internal/codegen/foldtable. DO NOT EDIT.

package deburr

// foldTable maps decorated Latin letters to the ASCII letter they fold to.
var foldTable = map[rune]rune{
{{- range .}}
	// {{.Name}}
{{- range .Entries}}
	{{printf "0x%04X" .Key}}: {{printf "%q" .Value}}, // {{printf "%c" .Key}}
{{- end}}
{{- end}}
}
`))

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
