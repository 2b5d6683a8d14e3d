// Package logging assembles structured slog loggers used across wordfreq.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// exposes context helpers so every line emitted during a run carries the same
// run identifier. Diagnostics always go to a caller-supplied writer (stderr in
// the CLI) so the ranked output on stdout stays machine readable.
//
// Prefer these constructors over hand-rolled slog setup; NewNop is available
// for tests and library callers that do not care about diagnostics.
package logging
