package stopwords

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnglishContainsCommonWords(t *testing.T) {
	set := English()
	for _, word := range []string{"the", "and", "can't", "you're"} {
		if !set.Contains(word) {
			t.Fatalf("expected %q in English stopwords", word)
		}
	}
	if set.Contains("cat") {
		t.Fatal("did not expect \"cat\" in English stopwords")
	}
	if set.Contains("#") || set.Contains("") {
		t.Fatal("comment and blank lines must be skipped")
	}
}

func TestEnglishReturnsIndependentSets(t *testing.T) {
	a := English()
	b := English()
	delete(a, "the")
	if !b.Contains("the") {
		t.Fatal("sets must not share storage")
	}
}

func TestParseLowercasesEntries(t *testing.T) {
	set, err := Parse(strings.NewReader("  Foo \n\n# note\nBAR\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if set.Len() != 2 || !set.Contains("foo") || !set.Contains("bar") {
		t.Fatalf("unexpected set: %v", set)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	if err := os.WriteFile(path, []byte("lorem\nipsum\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	set, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !set.Contains("ipsum") {
		t.Fatalf("unexpected set: %v", set)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
