package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// Seconds formats d as seconds with five decimal places.
func Seconds(d time.Duration) string {
	return fmt.Sprintf("%.5f", d.Seconds())
}

// WriteReport writes results grouped by text and then by pattern, one line
// per searcher with its index and elapsed time. Results are expected in the
// order produced by Run.
func WriteReport(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	var text, pattern string
	for i, res := range results {
		newText := i == 0 || res.Text != text
		if newText {
			if i > 0 {
				fmt.Fprintln(tw)
			}
			text = res.Text
			fmt.Fprintf(tw, "Results for text:\n%s\n", text)
		}
		if newText || res.Pattern != pattern {
			pattern = res.Pattern
			fmt.Fprintf(tw, "\nTime for pattern %q (%d runs):\n", pattern, res.Runs)
		}
		fmt.Fprintf(tw, "%s:\tindex=%d\t%s sec\t\n", res.Searcher, res.Index, Seconds(res.Elapsed))
	}
	return tw.Flush()
}
