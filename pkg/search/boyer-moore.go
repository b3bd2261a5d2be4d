package search

// BoyerMooreSearcher uses the last occurrence (bad character) table only, without
// the good suffix rule. It still skips ahead on most mismatches, which is usually
// enough to beat the other two on natural language text.
type BoyerMooreSearcher struct{}

func NewBoyerMoore() *BoyerMooreSearcher {
	return new(BoyerMooreSearcher)
}

func (bm *BoyerMooreSearcher) String() string {
	return "BOYER-MOORE"
}

func (bm *BoyerMooreSearcher) FindIndex(text, pattern []byte) int {
	if text == nil || pattern == nil {
		return -1
	}
	return boyerMooreBytes(text, pattern)
}

func (bm *BoyerMooreSearcher) FindIndexString(text, pattern string) int {
	return boyerMooreBytes(text, pattern)
}

func (bm *BoyerMooreSearcher) FindIndexRunes(text, pattern []rune) int {
	if text == nil || pattern == nil {
		return -1
	}
	return BoyerMoore(text, pattern)
}

// BoyerMoore returns the index of the first occurrence of pattern in text,
// or -1 if pattern is not present.
//
// On a mismatch the alignment moves by the distance between the last
// occurrence of the element under the end of the pattern and the last
// occurrence of the mismatched pattern element, and always by at least one.
func BoyerMoore[E comparable](text, pattern []E) int {
	m, n := len(pattern), len(text)
	if m > n {
		return -1
	}

	last := make(map[E]int, m)
	for i := 0; i < m; i++ {
		last[pattern[i]] = i
	}
	lookup := func(e E) int {
		if at, ok := last[e]; ok {
			return at
		}
		return -1
	}

	for i := 0; i <= n-m; {
		j := m - 1
		for j >= 0 && pattern[j] == text[i+j] {
			j--
		}
		if j < 0 {
			return i
		}
		i += max(1, lookup(text[i+m-1])-lookup(pattern[j]))
	}
	return -1
}

// boyerMooreBytes is BoyerMoore with the last occurrence table held in an
// array, since a byte alphabet is small and bounded.
func boyerMooreBytes[S ~string | ~[]byte](text, pattern S) int {
	m, n := len(pattern), len(text)
	if m > n {
		return -1
	}

	var last [256]int
	for c := range last {
		last[c] = -1
	}
	for i := 0; i < m; i++ {
		last[pattern[i]] = i
	}

	for i := 0; i <= n-m; {
		j := m - 1
		for j >= 0 && pattern[j] == text[i+j] {
			j--
		}
		if j < 0 {
			return i
		}
		i += max(1, last[text[i+m-1]]-last[pattern[j]])
	}
	return -1
}
