package filter

import (
	"regexp"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"wordfreq/internal/stopwords"
)

// Config is the per-run filter snapshot. It must not be modified once a Chain
// has been built from it.
type Config struct {
	CaseSensitive  bool
	AlphabeticOnly bool
	// MinChars is the minimum grapheme-cluster count; 0 disables the check.
	MinChars int
	// Stopwords is nil when stopword filtering is disabled.
	Stopwords stopwords.Set
	// IgnorePattern is nil when no pattern was supplied.
	IgnorePattern *regexp.Regexp
	// IgnoreFilenames holds base names excluded from collection.
	IgnoreFilenames map[string]struct{}
}

// IgnoresFile reports whether a file with the given base name is excluded.
func (c Config) IgnoresFile(base string) bool {
	_, ok := c.IgnoreFilenames[base]
	return ok
}

// Chain is the immutable, shareable form of a Config.
type Chain struct {
	cfg Config
}

// New builds a Chain from cfg.
func New(cfg Config) *Chain {
	return &Chain{cfg: cfg}
}

// Config returns the snapshot the chain was built from.
func (c *Chain) Config() Config {
	return c.cfg
}

// Evaluator returns a single-goroutine evaluator bound to the chain.
func (c *Chain) Evaluator() *Evaluator {
	return &Evaluator{
		cfg:   &c.cfg,
		fold:  cases.Fold(),
		lower: cases.Lower(language.Und),
	}
}

// Evaluator applies a Chain to tokens. It is not safe for concurrent use.
type Evaluator struct {
	cfg   *Config
	fold  cases.Caser
	lower cases.Caser
}

// Key returns the counting key for raw and whether raw survives the chain.
func (e *Evaluator) Key(raw string) (string, bool) {
	key := raw
	if !e.cfg.CaseSensitive {
		key = e.fold.String(raw)
	}

	if e.cfg.AlphabeticOnly && !IsAlphabetic(key) {
		return "", false
	}
	if e.cfg.Stopwords != nil && e.cfg.Stopwords.Contains(e.lower.String(raw)) {
		return "", false
	}
	if e.cfg.MinChars > 0 && uniseg.GraphemeClusterCount(key) < e.cfg.MinChars {
		return "", false
	}
	if e.cfg.IgnorePattern != nil && e.cfg.IgnorePattern.MatchString(key) {
		return "", false
	}
	return key, true
}

// Fold applies full Unicode case folding.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// IsAlphabetic reports whether every rune of s has the Unicode Alphabetic
// property. The empty string is alphabetic.
func IsAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.Is(unicode.Nl, r) && !unicode.Is(unicode.Other_Alphabetic, r) {
			return false
		}
	}
	return true
}
