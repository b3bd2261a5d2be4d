package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scottcagno/strsearch/pkg/bench"
)

type benchOptions struct {
	runs     int
	algos    []string
	texts    []string
	patterns []string
}

func newBenchCmd(root *rootOptions) *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time each algorithm on every text and pattern",
		Long: `Time each algorithm on every text and pattern.

Every search is repeated --runs times and the total wall time is reported.
Without --text and --pattern the built-in texts are searched for one pattern
that occurs and one that does not.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, root, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.runs, "runs", "n", bench.DefaultRuns, "Number of times each search is repeated")
	cmd.Flags().StringSliceVarP(&opts.algos, "algo", "a", nil, "Algorithms to time: bm, kmp, rk (default all)")
	cmd.Flags().StringArrayVarP(&opts.texts, "text", "t", nil, "Text to search, repeatable")
	cmd.Flags().StringArrayVarP(&opts.patterns, "pattern", "p", nil, "Pattern to search for, repeatable")

	return cmd
}

func runBench(cmd *cobra.Command, root *rootOptions, opts benchOptions) error {
	searchers, err := resolveSearchers(opts.algos)
	if err != nil {
		return err
	}
	texts := opts.texts
	if len(texts) == 0 {
		texts = bench.DefaultTexts
	}
	patterns := opts.patterns
	if len(patterns) == 0 {
		patterns = bench.DefaultPatterns
	}

	root.log.Debug("starting bench",
		"searchers", len(searchers), "texts", len(texts), "patterns", len(patterns), "runs", opts.runs)

	results, err := bench.Run(searchers, texts, patterns, opts.runs)
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, color.CyanString("=== Search Benchmark ===\n\n"))
	if err := bench.WriteReport(out, results); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprint(out, "\n"+color.CyanString("=== End Benchmark ===\n"))

	for _, res := range results {
		root.log.Debug("timed",
			"searcher", res.Searcher, "pattern", res.Pattern, "index", res.Index, "per_run", res.PerRun())
	}
	return nil
}
