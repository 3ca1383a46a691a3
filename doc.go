// Package wordcase turns free-form text into identifiers.
//
// wordcase splits text into words and renders them under a naming
// convention, folding accented Latin letters to ASCII on the way:
//
//	wordcase.ToCamelCase("I will give you <50> bucks")    // "iWillGiveYou50Bucks"
//	wordcase.ToKebabCase("MerryNEWYear!")                 // "merry-new-year"
//	wordcase.ToSnakeCase("In Philàdèlphia, it is wõrth")  // "in_philadelphia_it_is_worth"
//	wordcase.ToStartCase("...the sports-watch of the '80s.")  // "The Sports Watch Of The 80S"
//
// # Overview
//
// The work is done by three packages, which can also be used on their own:
//
//   - deburr: folds decorated Latin letters ("é", "Ø", "ǘ") to ASCII, keeping case
//   - words: splits text into tokens at separators, camel-case humps,
//     acronym ends and digit/word transitions
//   - casing: renders tokens as camel, kebab, snake or start case
//
// The conversion functions in this package compose them:
//
//	Convert(text, c) = casing.Render(words.Split(deburr.Fold(nfc(text))), c)
//
// where nfc composes decomposed accents ("e" + U+0301) so they can be folded.
// [TokenizeWords] splits without folding; call [FoldDiacritics] first when
// folding is wanted.
//
// None of these functions fail. Empty input, input without letters or
// digits, and runes outside the folding table all produce well-defined
// results, and everything is safe for concurrent use.
//
// # Options
//
// [ConvertWithOptions] adds input from a reader or byte slice, an input size
// limit, optional folding and a structured [Logger]:
//
//	result, err := wordcase.ConvertWithOptions(
//	    wordcase.WithReader(os.Stdin),
//	    wordcase.WithConventionName("kebab-case"),
//	    wordcase.WithLogger(wordcase.NewSlogAdapter(slog.Default())),
//	)
//
// Available options:
//
//   - [WithText], [WithBytes], [WithReader]: the input; exactly one is required
//   - [WithConvention], [WithConventionName]: the output convention (default camel)
//   - [WithFolding]: fold diacritics before tokenizing (default true)
//   - [WithMaxInputSize]: input size limit in bytes (default [DefaultMaxInputSize])
//   - [WithLogger]: debug and warning output (default [NopLogger])
//
// Errors from ConvertWithOptions are typed; see package wcerrors.
//
// # Related packages
//
// sliceutil, maputil, stringutil and datemath are small independent
// helpers (generic slice functions, map merging, a regular expression
// predicate and calendar offsets). They do not depend on the text packages.
package wordcase
