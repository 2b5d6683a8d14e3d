// Package filter decides which raw tokens are counted and under which key.
//
// A Chain is built once per run from an immutable Config and shared by
// reference across counting workers. Each worker takes its own Evaluator,
// because the Unicode case transformers it wraps keep per-call state.
//
// Filters run in a fixed order and short-circuit on the first rejection:
//
//  1. alphabetic-only
//  2. stopwords (always compared in lowercase)
//  3. minimum length in grapheme clusters
//  4. ignore pattern
//
// The cheap, high-rejection checks come first so the regular expression only
// sees tokens that survived everything else.
package filter
