// Package tokenize splits text into Unicode words.
//
// Boundaries follow the UAX #29 word segmentation rules, so punctuation is
// separated from words, contractions such as "can't" stay whole, combining
// marks stay attached to their base letters, and non-Latin scripts segment
// correctly. Only segments containing at least one letter or number are
// yielded; whitespace and punctuation segments are dropped. No case folding or
// filtering happens here.
package tokenize

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Words returns the words of a single line. Every iteration of the returned
// sequence restarts segmentation from the beginning of line.
func Words(line string) iter.Seq[string] {
	return func(yield func(string) bool) {
		state := -1
		rest := line
		var segment string
		for len(rest) > 0 {
			segment, rest, state = uniseg.FirstWordInString(rest, state)
			if !isWord(segment) {
				continue
			}
			if !yield(segment) {
				return
			}
		}
	}
}

// Reader returns the words of r, read line by line with no line-length
// limit. The stream is consumed once: iterating again yields nothing new.
// A read error other than io.EOF ends the sequence with ("", err).
func Reader(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				line = strings.ToValidUTF8(strings.TrimRight(line, "\r\n"), "�")
				for word := range Words(line) {
					if !yield(word, nil) {
						return
					}
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield("", err)
				}
				return
			}
		}
	}
}

func isWord(segment string) bool {
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r) {
			return true
		}
	}
	return false
}
