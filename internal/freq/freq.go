package freq

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"wordfreq/internal/filter"
)

// Map maps a token to its non-negative occurrence count.
type Map map[string]int

// Count tallies the tokens of one source. Tokens rejected by ev are skipped.
// A read error from tokens is returned and the partial map discarded.
func Count(tokens iter.Seq2[string, error], ev *filter.Evaluator) (Map, error) {
	counts := make(Map)
	for raw, err := range tokens {
		if err != nil {
			return nil, err
		}
		if key, ok := ev.Key(raw); ok {
			counts[key]++
		}
	}
	return counts, nil
}

// Add folds other into m.
func (m Map) Add(other Map) {
	for word, count := range other {
		m[word] += count
	}
}

// Total returns the sum of all counts.
func (m Map) Total() int {
	total := 0
	for _, count := range m {
		total += count
	}
	return total
}

// Merge sums any number of maps into a new map. Nil maps contribute nothing.
func Merge(maps ...Map) Map {
	out := make(Map)
	for _, m := range maps {
		out.Add(m)
	}
	return out
}

// Order is the ranking direction.
type Order int

const (
	Descending Order = iota
	Ascending
)

func (o Order) String() string {
	if o == Ascending {
		return "asc"
	}
	return "desc"
}

// ParseOrder parses "asc" or "desc".
func ParseOrder(value string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "desc", "":
		return Descending, nil
	case "asc":
		return Ascending, nil
	default:
		return Descending, fmt.Errorf("unsupported sort order %q (want asc or desc)", value)
	}
}

// NoLimit disables truncation in Rank.
const NoLimit = -1

// Entry is a ranked token. Rank is 1-based.
type Entry struct {
	Rank  int
	Word  string
	Count int
}

// Rank orders m by count in the given direction, breaking ties by ascending
// token, and keeps the first limit entries. A negative limit keeps all.
func Rank(m Map, order Order, limit int) []Entry {
	entries := make([]Entry, 0, len(m))
	for word, count := range m {
		entries = append(entries, Entry{Word: word, Count: count})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if a.Count != b.Count {
			if order == Ascending {
				return cmp.Compare(a.Count, b.Count)
			}
			return cmp.Compare(b.Count, a.Count)
		}
		return strings.Compare(a.Word, b.Word)
	})
	if limit >= 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
