// Package config loads, merges, and validates wordfreq configuration data.
//
// A configuration document is a TOML file whose [defaults] table mirrors the
// command-line options and whose [logging] table tunes diagnostics. The
// document only ever supplies default values: command-line flags and the
// document are modelled as two structurally identical partial records
// (Options) and merged field by field, flag record first.
//
// Always obtain run settings through Resolve so downstream code receives
// normalized enumerations, expanded paths, and clear validation errors.
package config
