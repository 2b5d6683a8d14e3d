// Package main hosts the wordfreq CLI entrypoint and command graph.
//
// The root command counts words in the given files and directories, or in
// standard input when nothing is given and input is piped. Flags override
// the [defaults] table of the configuration document one option at a time.
// The config subcommands scaffold and inspect that document.
//
// Keep this package lean: counting, filtering, and rendering live in the
// internal packages; this layer only resolves options, terminals, and
// diagnostics.
package main
