package search_test

import (
	"fmt"

	"github.com/scottcagno/strsearch/pkg/search"
)

func ExampleBoyerMoore() {
	fmt.Println(search.BoyerMoore([]byte("hello world"), []byte("world")))
	// Output: 6
}

func ExampleKnuthMorrisPratt() {
	fmt.Println(search.KnuthMorrisPratt([]byte("abxabcabcaby"), []byte("abcaby")))
	fmt.Println(search.KnuthMorrisPratt([]byte("abc"), []byte{}))
	// Output:
	// 6
	// 0
}

func ExampleRabinKarp() {
	fmt.Println(search.RabinKarp([]byte("abracadabra"), []byte("cad")))
	fmt.Println(search.RabinKarp([]byte("abracadabra"), []byte("xyz")))
	// Output:
	// 4
	// -1
}

func ExampleFailureFunction() {
	fmt.Println(search.FailureFunction([]byte("aabaaab")))
	// Output: [0 1 0 1 2 2 3]
}

func ExampleSearchers() {
	for _, s := range search.Searchers() {
		fmt.Println(s, s.FindIndexString("Це приклад тексту", "приклад"))
	}
	// Output:
	// BOYER-MOORE 5
	// KNUTH-MORRIS-PRATT 5
	// RABIN-KARP 5
}
