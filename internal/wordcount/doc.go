// Package wordcount runs the counting pipeline end to end.
//
// A Pipeline is built once per run from resolved settings: the stopword set
// and the ignore pattern are constructed here and then shared read-only by
// every worker. Files are counted on a bounded errgroup, each worker writing
// its own frequency map into a private slot; the maps are merged only after
// every worker has finished. Standard input is counted on a single sequential
// path.
//
// Per-file failures are logged and skipped. A run fails only when every
// source failed, when no input was supplied, or when the settings themselves
// are invalid.
package wordcount
