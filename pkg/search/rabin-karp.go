package search

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// RabinKarpSearcher is inferior for single pattern searching to Knuth-Morris-Pratt or
// Boyer-Moore because of its slow worst case behavior (every window whose hash collides
// with the pattern hash has to be compared in full). However, it is a useful algorithm
// for multiple pattern searches.
type RabinKarpSearcher struct{}

func NewRabinKarp() *RabinKarpSearcher {
	return new(RabinKarpSearcher)
}

func (rk *RabinKarpSearcher) String() string {
	return "RABIN-KARP"
}

func (rk *RabinKarpSearcher) FindIndex(text, pattern []byte) int {
	if text == nil || pattern == nil {
		return -1
	}
	return RabinKarp(text, pattern)
}

func (rk *RabinKarpSearcher) FindIndexString(text, pattern string) int {
	return RabinKarp([]byte(text), []byte(pattern))
}

func (rk *RabinKarpSearcher) FindIndexRunes(text, pattern []rune) int {
	if text == nil || pattern == nil {
		return -1
	}
	return RabinKarp(text, pattern)
}

const (
	// RadixRK is the number of symbols assumed per element when hashing.
	RadixRK = 256
	// PrimeRK is the modulus of the rolling hash.
	PrimeRK = 101
)

// modRK reduces x into [0, PrimeRK) for negative x as well.
func modRK(x int) int {
	x %= PrimeRK
	if x < 0 {
		x += PrimeRK
	}
	return x
}

// RabinKarp returns the index of the first occurrence of pattern in text,
// or -1 if pattern is not present. Elements are hashed by their integer
// value, so []rune input hashes code points.
func RabinKarp[E constraints.Integer](text, pattern []E) int {
	m, n := len(pattern), len(text)
	if m > n {
		return -1
	}

	h := 1
	for i := 0; i < m-1; i++ {
		h = (h * RadixRK) % PrimeRK
	}

	var p, t int
	for i := 0; i < m; i++ {
		p = modRK(RadixRK*p + int(pattern[i]))
		t = modRK(RadixRK*t + int(text[i]))
	}

	for i := 0; i <= n-m; i++ {
		if p == t && slices.Equal(text[i:i+m], pattern) {
			return i
		}
		if i < n-m {
			t = modRK(RadixRK*(t-modRK(int(text[i]))*h) + int(text[i+m]))
		}
	}
	return -1
}
