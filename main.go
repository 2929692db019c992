package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dancsi/RationaLP/instance"
	"github.com/dancsi/RationaLP/simplex"
)

const allowedPivotRules = "bland,random,maxcoef,maxincrease"

var opts struct {
	input   string
	pivot   string
	verbose bool
	seed    int64
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rationalp [input]",
		Short:         "Solve a linear program with the two-phase simplex method over exact rationals",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.Flags().StringVar(&opts.input, "input", "", "input linear program")
	cmd.Flags().StringVar(&opts.pivot, "pivot", "bland", "the pivot rule that is used. Can be one of {"+allowedPivotRules+"}")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "verbose output")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "seed for the random pivot rule")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	path := opts.input
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return errors.New("you must provide a valid path")
	}

	rule, err := simplex.RuleByName(opts.pivot, opts.seed)
	if err != nil {
		return err
	}

	t, err := instance.NewReader(path).ConstructTableauFromFile()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	t.PrintStatement(out)

	lp := simplex.New(t, opts.verbose)
	lp.Out = out

	switch lp.Solve(rule) {
	case simplex.Infeasible:
		fmt.Fprintln(out, "The linear program is infeasible")
	case simplex.FeasibleUnbounded:
		fmt.Fprintln(out, "The linear program is unbounded")
	case simplex.FeasibleBounded:
		fmt.Fprint(out, "An optimal solution is: ")
		t.PrintSolution(out)
		fmt.Fprintf(out, "\nThe value of the objective function is: %s\n", t.Value())
		fmt.Fprintf(out, "The number of pivots is: %d\n", lp.NumPivots)
		fmt.Fprintf(out, "The pivot rule used: %s\n", rule.Name())
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
