package tokenize

import (
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
	"testing/iotest"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "empty", line: "", want: nil},
		{name: "whitespace only", line: " \t ", want: nil},
		{name: "simple", line: "The the THE cat", want: []string{"The", "the", "THE", "cat"}},
		{name: "punctuation", line: "Hello, world! (again)", want: []string{"Hello", "world", "again"}},
		{name: "contraction", line: "can't won’t", want: []string{"can't", "won’t"}},
		{name: "numbers", line: "version 3.14 of 2024", want: []string{"version", "3.14", "of", "2024"}},
		{name: "combining marks", line: "naïve café", want: []string{"naïve", "café"}},
		{name: "cyrillic", line: "Привет, мир", want: []string{"Привет", "мир"}},
		{name: "hyphenated", line: "state-of-the-art", want: []string{"state", "of", "the", "art"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Words(tt.line))
			if !slices.Equal(got, tt.want) {
				t.Fatalf("Words(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestWordsRestartsPerIteration(t *testing.T) {
	seq := Words("a b c")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) || len(first) != 3 {
		t.Fatalf("expected identical iterations, got %q and %q", first, second)
	}
}

func TestWordsStopsEarly(t *testing.T) {
	var got []string
	for w := range Words("one two three") {
		got = append(got, w)
		if len(got) == 2 {
			break
		}
	}
	if !slices.Equal(got, []string{"one", "two"}) {
		t.Fatalf("unexpected words: %q", got)
	}
}

func TestReaderSplitsLines(t *testing.T) {
	r := strings.NewReader("alpha beta\r\ngamma\n\ndelta")
	var got []string
	for word, err := range Reader(r) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, word)
	}
	want := []string{"alpha", "beta", "gamma", "delta"}
	if !slices.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReaderHandlesLongLines(t *testing.T) {
	line := strings.Repeat("word ", 100_000)
	count := 0
	for _, err := range Reader(strings.NewReader(line)) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		count++
	}
	if count != 100_000 {
		t.Fatalf("expected 100000 words, got %d", count)
	}
}

func TestReaderSurfacesReadError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("ok fine\n"), iotest.ErrReader(boom))
	var words []string
	var gotErr error
	for word, err := range Reader(r) {
		if err != nil {
			gotErr = err
			continue
		}
		words = append(words, word)
	}
	if !errors.Is(gotErr, boom) {
		t.Fatalf("expected boom, got %v", gotErr)
	}
	if !slices.Equal(words, []string{"ok", "fine"}) {
		t.Fatalf("unexpected words before error: %q", words)
	}
}
