// Package cmd provides the commands of the search CLI.
package cmd

import (
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scottcagno/strsearch/pkg/logging"
	"github.com/scottcagno/strsearch/pkg/search"
)

// rootOptions holds the persistent flags and what is derived from them.
type rootOptions struct {
	debug   bool
	noColor bool
	log     *slog.Logger
}

// NewRootCmd creates the root command for the search CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{log: logging.Discard()}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Substring search and bounded binary search playground",
		Long: `search runs Boyer-Moore, Knuth-Morris-Pratt and Rabin-Karp over text,
times them against each other, and runs a binary search that reports an
upper bound for missing targets.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.noColor {
				color.NoColor = true
			}
			if opts.debug {
				opts.log = logging.NewDebugLogger(cmd.ErrOrStderr())
			} else {
				opts.log = logging.NewLogger(cmd.ErrOrStderr(), slog.LevelInfo)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging to stderr")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newBenchCmd(opts))
	cmd.AddCommand(newFindCmd(opts))
	cmd.AddCommand(newBoundCmd(opts))

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// resolveSearchers maps algorithm names to searchers, keeping their order.
// No names selects every searcher.
func resolveSearchers(names []string) ([]search.Searcher, error) {
	if len(names) == 0 {
		return search.Searchers(), nil
	}
	searchers := make([]search.Searcher, 0, len(names))
	for _, name := range names {
		s, err := search.Lookup(name)
		if err != nil {
			return nil, err
		}
		searchers = append(searchers, s)
	}
	return searchers, nil
}
