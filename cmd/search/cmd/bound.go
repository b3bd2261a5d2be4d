package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/scottcagno/strsearch/pkg/bsearch"
)

// ErrUnsorted is returned when the values given to bound are not ascending.
var ErrUnsorted = errors.New("values must be sorted in ascending order")

func newBoundCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bound <target> [value...]",
		Short: "Binary search sorted values, reporting probes and an upper bound",
		Long: `Binary search the ascending values for target.

Prints the number of probes, the matching value or the upper bound recorded
on the way (or "none"), and the index of target. Use -- before negative
numbers so they are not read as flags.`,
		Example: "  search bound 3.8 1.1 2.2 3.3 4.4 5.5 6.6",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBound(cmd, root, args[0], args[1:])
		},
	}
	return cmd
}

func parseFloats(args []string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", arg, err)
		}
		vals[i] = v
	}
	return vals, nil
}

func runBound(cmd *cobra.Command, root *rootOptions, targetArg string, valueArgs []string) error {
	target, err := strconv.ParseFloat(targetArg, 64)
	if err != nil {
		return fmt.Errorf("parse target %q: %w", targetArg, err)
	}
	vals, err := parseFloats(valueArgs)
	if err != nil {
		return err
	}
	if !slices.IsSorted(vals) {
		return ErrUnsorted
	}

	iterations, bound, ok := bsearch.Bounded(vals, target)
	index := bsearch.Index(vals, target)
	root.log.Debug("bound", "target", target, "values", len(vals), "iterations", iterations)

	shown := "none"
	if ok {
		shown = strconv.FormatFloat(bound, 'g', -1, 64)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "iterations=%d bound=%s index=%d\n", iterations, shown, index)
	return nil
}
