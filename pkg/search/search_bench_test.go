package search

import (
	"strings"
	"testing"
)

var (
	benchText = strings.Repeat("I celebrate myself, and sing myself, and what I assume you shall assume. ", 64)

	benchPatterns = map[string]string{
		"found":    "what I assume you shall assume",
		"notfound": "foo_DOES_NOT_EXIST",
	}
)

func benchmarkSearcher(b *testing.B, s Searcher) {
	for name, pattern := range benchPatterns {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(benchText)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.FindIndexString(benchText, pattern)
			}
		})
	}
}

func BenchmarkBoyerMoore(b *testing.B) {
	benchmarkSearcher(b, NewBoyerMoore())
}

func BenchmarkKnuthMorrisPratt(b *testing.B) {
	benchmarkSearcher(b, NewKnuthMorrisPratt())
}

func BenchmarkRabinKarp(b *testing.B) {
	benchmarkSearcher(b, NewRabinKarp())
}

func BenchmarkStringsIndex(b *testing.B) {
	for name, pattern := range benchPatterns {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(benchText)))
			for i := 0; i < b.N; i++ {
				strings.Index(benchText, pattern)
			}
		})
	}
}
