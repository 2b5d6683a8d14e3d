// Package render writes ranked entries in the supported output formats.
//
// Rendering is a pure function of the ranked entries and the requested
// format: no filtering, sorting, or truncation happens here.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"wordfreq/internal/freq"
)

// Format selects an output representation.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatTable Format = "table"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatCSV, FormatTable}

// ParseFormat validates a format name.
func ParseFormat(value string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(value)))
	if f == "" {
		return FormatText, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format %q", value)
}

// Options tunes presentation.
type Options struct {
	// Color enables ANSI colours in the text format.
	Color bool
}

// Render writes entries to w in format f.
func Render(w io.Writer, entries []freq.Entry, f Format, opts Options) error {
	switch f {
	case FormatText, "":
		return writeText(w, entries, opts.Color)
	case FormatJSON:
		return writeJSON(w, entries)
	case FormatCSV:
		return writeCSV(w, entries)
	case FormatTable:
		return writeTable(w, entries)
	default:
		return fmt.Errorf("unsupported output format %q", f)
	}
}

// Record is the JSON shape of one entry.
type Record struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
}

func writeJSON(w io.Writer, entries []freq.Entry) error {
	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, Record{Word: e.Word, Frequency: e.Count})
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}

func writeCSV(w io.Writer, entries []freq.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Rank", "Word", "Frequency"}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write([]string{strconv.Itoa(e.Rank), e.Word, strconv.Itoa(e.Count)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
