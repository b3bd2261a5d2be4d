package search

// KnuthMorrisPrattSearcher is oftentimes only the best performing when it's used on shorter
// texts or texts with a lot of tight repetition. Otherwise, Boyer-Moore (and even Rabin-Karp)
// will beat it most of the time.
type KnuthMorrisPrattSearcher struct{}

func NewKnuthMorrisPratt() *KnuthMorrisPrattSearcher {
	return new(KnuthMorrisPrattSearcher)
}

func (kmp *KnuthMorrisPrattSearcher) String() string {
	return "KNUTH-MORRIS-PRATT"
}

func (kmp *KnuthMorrisPrattSearcher) FindIndex(text, pattern []byte) int {
	if text == nil || pattern == nil {
		return -1
	}
	return KnuthMorrisPratt(text, pattern)
}

func (kmp *KnuthMorrisPrattSearcher) FindIndexString(text, pattern string) int {
	return KnuthMorrisPratt([]byte(text), []byte(pattern))
}

func (kmp *KnuthMorrisPrattSearcher) FindIndexRunes(text, pattern []rune) int {
	if text == nil || pattern == nil {
		return -1
	}
	return KnuthMorrisPratt(text, pattern)
}

// KnuthMorrisPratt returns the index of the first occurrence of pattern in
// text, or -1 if pattern is not present. An empty pattern matches at 0.
func KnuthMorrisPratt[E comparable](text, pattern []E) int {
	m, n := len(pattern), len(text)
	if m == 0 {
		return 0
	}

	lps := FailureFunction(pattern)

	i, j := 0, 0
	for i < n {
		if pattern[j] == text[i] {
			i++
			j++
		}
		if j == m {
			return i - j
		}
		if i < n && pattern[j] != text[i] {
			if j != 0 {
				j = lps[j-1]
			} else {
				i++
			}
		}
	}
	return -1
}

// FailureFunction returns the partial match table of pattern: entry i holds
// the length of the longest proper prefix of pattern[:i+1] that is also a
// suffix of it.
func FailureFunction[E comparable](pattern []E) []int {
	m := len(pattern)
	lps := make([]int, m)
	if m == 0 {
		return lps
	}

	length, i := 0, 1
	for i < m {
		if pattern[i] == pattern[length] {
			length++
			lps[i] = length
			i++
			continue
		}
		if length != 0 {
			length = lps[length-1]
		} else {
			lps[i] = 0
			i++
		}
	}
	return lps
}
