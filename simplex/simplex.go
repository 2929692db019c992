package simplex

import (
	"fmt"
	"io"
	"os"

	"github.com/dancsi/RationaLP/model"
)

// Result is the terminal classification of a linear program.
type Result int

const (
	FeasibleBounded Result = iota
	FeasibleUnbounded
	Infeasible
)

func (r Result) String() string {
	switch r {
	case FeasibleBounded:
		return "feasible bounded"
	case FeasibleUnbounded:
		return "feasible unbounded"
	case Infeasible:
		return "infeasible"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// LinearProgram drives the two-phase simplex method over a tableau. The
// tableau is owned exclusively by the driver while solving; rules borrow it
// read-only and all mutation goes through Tableau.Pivot.
type LinearProgram struct {
	Tableau   *model.Tableau
	Verbose   bool
	NumPivots int

	// Out receives the verbose trace; defaults to standard output.
	Out io.Writer
}

func New(t *model.Tableau, verbose bool) *LinearProgram {
	return &LinearProgram{Tableau: t, Verbose: verbose, Out: os.Stdout}
}

// Step performs one step of a single phase: it asks the rule for a pivot,
// applies it, and counts it. Any status other than PivotFound is passed
// through untouched.
func (lp *LinearProgram) Step(rule Rule) PivotStatus {
	status, leaving, entering := Select(lp.Tableau, rule)
	if status != PivotFound {
		return status
	}

	if lp.Verbose {
		fmt.Fprintf(lp.Out, "The entering variable is x%d\n", entering+1)
		fmt.Fprintf(lp.Out, "The leaving variable is x%d\n", leaving+1)
	}
	lp.Tableau.Pivot(leaving, entering)
	lp.NumPivots++

	return PivotFound
}

// SolveOnePhase runs a single simplex phase to termination under rule.
func (lp *LinearProgram) SolveOnePhase(rule Rule) Result {
	var status PivotStatus
	for {
		if status = lp.Step(rule); status != PivotFound {
			break
		}
		if lp.Verbose {
			lp.Tableau.Dump(lp.Out)
		}
	}
	switch status {
	case PivotNotFound:
		return FeasibleBounded
	case PivotInfeasible:
		return Infeasible
	case PivotUnbounded:
		return FeasibleUnbounded
	}
	panic(fmt.Sprintf("simplex: unexpected pivot status %d", status))
}

// Solve runs the two-phase simplex method. Phase one only runs when the
// origin is not a basic feasible solution; if its objective cannot be
// driven to zero the program is infeasible.
func (lp *LinearProgram) Solve(rule Rule) Result {
	if lp.Verbose {
		fmt.Fprintln(lp.Out, "The initial tableau is:")
		lp.Tableau.Dump(lp.Out)
	}

	if !lp.Tableau.IsFeasible() {
		lp.Tableau.AddArtificialVariables()
		if res := lp.SolveOnePhase(rule); res == FeasibleUnbounded {
			// The phase-one objective is bounded above by zero.
			panic("simplex: phase one reported an unbounded program")
		}
		if !lp.Tableau.RemoveArtificialVariables() {
			return Infeasible
		}
	}

	return lp.SolveOnePhase(rule)
}
