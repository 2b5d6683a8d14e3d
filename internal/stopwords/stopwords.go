// Package stopwords provides the read-only stopword sets used by the filter
// chain. A set is built once per run and shared by reference across workers;
// nothing mutates it after construction.
package stopwords

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed english.txt
var englishList string

// Set is an immutable set of lowercase stopwords.
type Set map[string]struct{}

// Contains reports whether word, already lowercased, is a stopword.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of stopwords in the set.
func (s Set) Len() int { return len(s) }

// English parses the embedded English list. Each call returns a fresh set.
func English() Set {
	set, _ := Parse(strings.NewReader(englishList))
	return set
}

// Parse reads one stopword per line. Blank lines and lines starting with '#'
// are skipped; entries are trimmed and lowercased.
func Parse(r io.Reader) (Set, error) {
	set := make(Set)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stopwords: %w", err)
	}
	return set, nil
}

// Load reads a stopword list from path.
func Load(path string) (Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stopwords %s: %w", path, err)
	}
	defer file.Close()
	return Parse(file)
}
