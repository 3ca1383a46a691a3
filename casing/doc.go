// Package casing renders word tokens under an identifier naming convention.
//
// Four conventions are supported:
//
//   - [Camel]: first token lowercased, later tokens capitalized, no separator ("merryNewYear")
//   - [Kebab]: every token lowercased, joined with "-" ("merry-new-year")
//   - [Snake]: every token lowercased, joined with "_" ("merry_new_year")
//   - [Start]: every token capitalized, joined with " " ("Merry New Year")
//
// Capitalizing a token uppercases its first letter and lowercases the rest
// of its letters. Digits are never changed, so a capitalized "80s" is "80S"
// and a token made only of digits is left as it is.
//
// The renderer works on tokens that have already been split. Package words
// produces them, and the root wordcase package wires folding, splitting
// and rendering together:
//
//	casing.Render([]string{"Merry", "NEW", "Year"}, casing.Camel)  // "merryNewYear"
//
// Rendering never fails; an empty token list renders as "".
package casing
