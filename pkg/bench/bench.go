// Package bench times Searchers against fixed text and pattern pairs.
package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/scottcagno/strsearch/pkg/search"
)

// DefaultRuns is how many times each searcher is invoked per text and pattern.
const DefaultRuns = 1000

// ErrInvalidRuns is returned when the run count is not positive.
var ErrInvalidRuns = errors.New("runs must be positive")

var (
	// DefaultTexts are searched by the bench command when no text is given.
	DefaultTexts = []string{
		"Це приклад тексту, в якому ми будемо шукати підрядки.",
		"Це ще один текст, що містить різні підрядки для тестування.",
	}

	// DefaultPatterns holds one pattern present in the first default text and
	// one present in neither.
	DefaultPatterns = []string{
		"приклад",
		"вигаданий",
	}
)

// Result is the outcome of timing one searcher on one text and pattern.
type Result struct {
	Searcher string
	Text     string
	Pattern  string
	Index    int
	Runs     int
	Elapsed  time.Duration
}

// Found reports whether the pattern occurred in the text.
func (r Result) Found() bool {
	return r.Index >= 0
}

// PerRun is the mean time of a single search.
func (r Result) PerRun() time.Duration {
	if r.Runs == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Runs)
}

// Time calls s.FindIndexString(text, pattern) runs times and reports the total
// elapsed time along with the index returned by the last call.
func Time(s search.Searcher, text, pattern string, runs int) (Result, error) {
	if runs <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidRuns, runs)
	}
	index := -1
	start := time.Now()
	for i := 0; i < runs; i++ {
		index = s.FindIndexString(text, pattern)
	}
	return Result{
		Searcher: s.String(),
		Text:     text,
		Pattern:  pattern,
		Index:    index,
		Runs:     runs,
		Elapsed:  time.Since(start),
	}, nil
}

// Run times every searcher on every text and pattern. Results are ordered by
// text, then pattern, then searcher, each in the order given.
func Run(searchers []search.Searcher, texts, patterns []string, runs int) ([]Result, error) {
	results := make([]Result, 0, len(searchers)*len(texts)*len(patterns))
	for _, text := range texts {
		for _, pattern := range patterns {
			for _, s := range searchers {
				res, err := Time(s, text, pattern, runs)
				if err != nil {
					return nil, err
				}
				results = append(results, res)
			}
		}
	}
	return results, nil
}
