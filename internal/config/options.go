package config

import (
	"errors"
	"fmt"
	"strings"
)

// Options is a partial record of run options. A nil field (or nil slice) means
// the source did not supply a value. Command-line flags and the [defaults]
// table of a configuration document both produce an Options value.
type Options struct {
	Top            *int     `toml:"top,omitempty"`
	MinChar        *int     `toml:"min_char,omitempty"`
	Sort           *string  `toml:"sort,omitempty"`
	CaseSensitive  *bool    `toml:"case_sensitive,omitempty"`
	NoStopwords    *bool    `toml:"no_stopwords,omitempty"`
	IgnoreWords    *string  `toml:"ignore_words,omitempty"`
	IgnoreFiles    []string `toml:"ignore_files,omitempty"`
	AlphabeticOnly *bool    `toml:"alphabetic_only,omitempty"`
	OutputFormat   *string  `toml:"output_format,omitempty"`
	StopwordsFile  *string  `toml:"stopwords_file,omitempty"`
	Jobs           *int     `toml:"jobs,omitempty"`
}

// Merge combines partial records by taking, per field, the first value that is
// present. Pass the flag-sourced record first.
func Merge(records ...Options) Options {
	var out Options
	for _, rec := range records {
		out.Top = firstPresent(out.Top, rec.Top)
		out.MinChar = firstPresent(out.MinChar, rec.MinChar)
		out.Sort = firstPresent(out.Sort, rec.Sort)
		out.CaseSensitive = firstPresent(out.CaseSensitive, rec.CaseSensitive)
		out.NoStopwords = firstPresent(out.NoStopwords, rec.NoStopwords)
		out.IgnoreWords = firstPresent(out.IgnoreWords, rec.IgnoreWords)
		out.AlphabeticOnly = firstPresent(out.AlphabeticOnly, rec.AlphabeticOnly)
		out.OutputFormat = firstPresent(out.OutputFormat, rec.OutputFormat)
		out.StopwordsFile = firstPresent(out.StopwordsFile, rec.StopwordsFile)
		out.Jobs = firstPresent(out.Jobs, rec.Jobs)
		if out.IgnoreFiles == nil && rec.IgnoreFiles != nil {
			out.IgnoreFiles = append([]string{}, rec.IgnoreFiles...)
		}
	}
	return out
}

func firstPresent[T any](current, next *T) *T {
	if current != nil {
		return current
	}
	return next
}

// Validate rejects numeric values a user may not supply. Unlimited is only
// ever produced by Resolve for an absent top, so any negative top is an error.
func (o Options) Validate() error {
	if o.Top != nil && *o.Top < 0 {
		return fmt.Errorf("top: must not be negative (got %d)", *o.Top)
	}
	if o.MinChar != nil && *o.MinChar < 0 {
		return fmt.Errorf("min_char: must not be negative (got %d)", *o.MinChar)
	}
	if o.Jobs != nil && *o.Jobs < 0 {
		return fmt.Errorf("jobs: must not be negative (got %d)", *o.Jobs)
	}
	return nil
}

// Settings is the fully resolved option set for one run.
type Settings struct {
	Top            int      `toml:"top"`
	MinChar        int      `toml:"min_char"`
	Sort           string   `toml:"sort"`
	CaseSensitive  bool     `toml:"case_sensitive"`
	NoStopwords    bool     `toml:"no_stopwords"`
	IgnoreWords    string   `toml:"ignore_words"`
	IgnoreFiles    []string `toml:"ignore_files"`
	AlphabeticOnly bool     `toml:"alphabetic_only"`
	OutputFormat   string   `toml:"output_format"`
	StopwordsFile  string   `toml:"stopwords_file"`
	Jobs           int      `toml:"jobs"`
}

// Resolve fills absent fields with built-in defaults and normalizes values.
// Top is Unlimited when absent.
func (o Options) Resolve() Settings {
	s := Settings{
		Top:          Unlimited,
		Sort:         defaultSort,
		OutputFormat: defaultOutputFormat,
	}
	if o.Top != nil {
		s.Top = *o.Top
	}
	if o.MinChar != nil {
		s.MinChar = *o.MinChar
	}
	if o.Sort != nil {
		s.Sort = normalizeToken(*o.Sort, defaultSort)
	}
	if o.CaseSensitive != nil {
		s.CaseSensitive = *o.CaseSensitive
	}
	if o.NoStopwords != nil {
		s.NoStopwords = *o.NoStopwords
	}
	if o.IgnoreWords != nil {
		s.IgnoreWords = *o.IgnoreWords
	}
	for _, name := range o.IgnoreFiles {
		if name = strings.TrimSpace(name); name != "" {
			s.IgnoreFiles = append(s.IgnoreFiles, name)
		}
	}
	if o.AlphabeticOnly != nil {
		s.AlphabeticOnly = *o.AlphabeticOnly
	}
	if o.OutputFormat != nil {
		s.OutputFormat = normalizeToken(*o.OutputFormat, defaultOutputFormat)
	}
	if o.StopwordsFile != nil {
		s.StopwordsFile = strings.TrimSpace(*o.StopwordsFile)
	}
	if o.Jobs != nil {
		s.Jobs = *o.Jobs
	}
	return s
}

func normalizeToken(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}

// Validate rejects values that cannot drive a run.
func (s Settings) Validate() error {
	switch s.Sort {
	case "asc", "desc":
	default:
		return fmt.Errorf("sort: unsupported value %q (want asc or desc)", s.Sort)
	}
	switch s.OutputFormat {
	case "text", "json", "csv", "table":
	default:
		return fmt.Errorf("output_format: unsupported value %q (want text, json, csv or table)", s.OutputFormat)
	}
	if s.Top < Unlimited {
		return errors.New("top must not be negative")
	}
	if s.MinChar < 0 {
		return errors.New("min_char must not be negative")
	}
	if s.Jobs < 0 {
		return errors.New("jobs must not be negative")
	}
	return nil
}
