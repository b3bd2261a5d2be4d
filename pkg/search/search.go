// Package search implements single pattern substring search using the
// Boyer-Moore, Knuth-Morris-Pratt and Rabin-Karp algorithms.
//
// Every algorithm is available as a generic function over slices of
// elements, and as a Searcher that works on bytes and strings. All of
// them report the offset of the leftmost match, or -1 when the pattern
// does not occur in the text.
package search

import (
	"errors"
	"fmt"
	"strings"
)

// Searcher finds the first occurrence of a pattern in a text. Offsets
// returned by FindIndexString are byte offsets, the same as strings.Index;
// FindIndexRunes works on code points.
type Searcher interface {
	FindIndex(text, pattern []byte) int
	FindIndexString(text, pattern string) int
	FindIndexRunes(text, pattern []rune) int
	String() string
}

// Boyer-Moore:
// Works by pre-analyzing the pattern and comparing from right-to-left. If a mismatch occurs, the
// initial analysis is used to determine how far the pattern can be shifted w.r.t. the text being
// searched. This works particularly well for long search patterns. In particular, it can be
// sublinear, as you do not need to read every single character of your text. So if your pattern is one
// or two characters, then it literally becomes linear searching.

// Knuth-Morris-Pratt:
// Also works by pre-analyzing the pattern, but tries to re-use whatever was already matched in the
// initial part of the pattern to avoid having to rematch that. This can work quite well, if your
// alphabet is small (f.ex. DNA bases), as you get a higher chance that your search patterns
// contain re-usable sub-patterns.

// Rabin-Karp:
// Works by utilizing efficient computation of hash values of the successive substrings of the text,
// which it then uses for comparing matches. A hash hit is always confirmed by a direct comparison.

// ErrUnknownSearcher is returned by Lookup when no searcher has the given name.
var ErrUnknownSearcher = errors.New("unknown searcher")

// Searchers returns one of each searcher, in a fixed order.
func Searchers() []Searcher {
	return []Searcher{
		NewBoyerMoore(),
		NewKnuthMorrisPratt(),
		NewRabinKarp(),
	}
}

var aliases = map[string]func() Searcher{
	"bm":                 func() Searcher { return NewBoyerMoore() },
	"boyer-moore":        func() Searcher { return NewBoyerMoore() },
	"kmp":                func() Searcher { return NewKnuthMorrisPratt() },
	"knuth-morris-pratt": func() Searcher { return NewKnuthMorrisPratt() },
	"rk":                 func() Searcher { return NewRabinKarp() },
	"rabin-karp":         func() Searcher { return NewRabinKarp() },
}

// Lookup returns the searcher registered under name. Names are matched
// case-insensitively against the short aliases ("bm", "kmp", "rk") and
// the long forms ("boyer-moore", ...).
func Lookup(name string) (Searcher, error) {
	fn, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSearcher, name)
	}
	return fn(), nil
}
