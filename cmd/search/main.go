// Command search times and runs the substring search algorithms from pkg/search.
package main

import (
	"os"

	"github.com/scottcagno/strsearch/cmd/search/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
