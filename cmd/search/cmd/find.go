package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type findOptions struct {
	algos []string
	runes bool
}

func newFindCmd(root *rootOptions) *cobra.Command {
	var opts findOptions

	cmd := &cobra.Command{
		Use:   "find <text> <pattern>",
		Short: "Print where pattern first occurs in text",
		Long: `Print where pattern first occurs in text, once per algorithm.

Offsets are byte offsets unless --runes is given, in which case they count
code points. -1 means the pattern does not occur.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, root, opts, args[0], args[1])
		},
	}

	cmd.Flags().StringSliceVarP(&opts.algos, "algo", "a", nil, "Algorithms to run: bm, kmp, rk (default all)")
	cmd.Flags().BoolVar(&opts.runes, "runes", false, "Report code point offsets instead of byte offsets")

	return cmd
}

func runFind(cmd *cobra.Command, root *rootOptions, opts findOptions, text, pattern string) error {
	searchers, err := resolveSearchers(opts.algos)
	if err != nil {
		return err
	}

	textRunes, patternRunes := []rune(text), []rune(pattern)
	out := cmd.OutOrStdout()
	for _, s := range searchers {
		var idx int
		if opts.runes {
			idx = s.FindIndexRunes(textRunes, patternRunes)
		} else {
			idx = s.FindIndexString(text, pattern)
		}
		root.log.Debug("find", "searcher", s.String(), "runes", opts.runes, "index", idx)

		status := color.GreenString("found")
		if idx < 0 {
			status = color.RedString("not found")
		}
		fmt.Fprintf(out, "%s: %d (%s)\n", s, idx, status)
	}
	return nil
}
