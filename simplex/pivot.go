package simplex

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/dancsi/RationaLP/model"
	"github.com/dancsi/RationaLP/num"
)

// PivotStatus is the outcome of asking a pivot rule for the next pivot.
type PivotStatus int

const (
	// PivotFound means the rule produced a (leaving, entering) pair.
	PivotFound PivotStatus = iota
	// PivotNotFound means no column has a positive reduced cost; the
	// current basis is optimal.
	PivotNotFound
	// PivotInfeasible is reserved for the two-phase driver; rules never
	// return it.
	PivotInfeasible
	// PivotUnbounded means the chosen entering column has no positive
	// coefficient in any row.
	PivotUnbounded
)

// Rule picks the entering and leaving columns for one pivot. Rules only
// differ in how they break ties within the candidate sets computed by
// Select; they never mutate the tableau.
type Rule interface {
	Name() string
	ChooseEntering(t *model.Tableau, candidates []int) int
	ChooseLeaving(t *model.Tableau, entering int, candidates []int) int
}

// EnteringCandidates returns the columns with a positive reduced cost, in
// ascending column order.
func EnteringCandidates(t *model.Tableau) []int {
	var entering []int
	for j := 0; j < t.N; j++ {
		if t.C[j].Sign() > 0 {
			entering = append(entering, j)
		}
	}
	return entering
}

// LeavingCandidates returns the basic columns of every row achieving the
// minimum ratio b[i] / A[i][entering] over rows with a positive coefficient
// in the entering column. An empty result means the column is unbounded.
func LeavingCandidates(t *model.Tableau, entering int) []int {
	var leaving []int
	var best num.Num
	for row := 0; row < t.M; row++ {
		a := t.Row(row)[entering]
		if a.Sign() <= 0 {
			continue
		}
		ratio := t.B[row].Div(a)
		if len(leaving) == 0 || ratio.Cmp(best) < 0 {
			best = ratio
			leaving = leaving[:0]
		}
		if ratio.Cmp(best) <= 0 {
			leaving = append(leaving, t.Basic[row])
		}
	}
	return leaving
}

// Select runs the shared candidate computation around rule's tie-breaks and
// maps empty candidate sets to the terminal statuses.
func Select(t *model.Tableau, rule Rule) (status PivotStatus, leaving, entering int) {
	enteringCands := EnteringCandidates(t)
	if len(enteringCands) == 0 {
		return PivotNotFound, -1, -1
	}
	entering = rule.ChooseEntering(t, enteringCands)

	leavingCands := LeavingCandidates(t, entering)
	if len(leavingCands) == 0 {
		return PivotUnbounded, -1, -1
	}
	leaving = rule.ChooseLeaving(t, entering, leavingCands)
	return PivotFound, leaving, entering
}

func minIndex(candidates []int) int {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c < best {
			best = c
		}
	}
	return best
}

// Bland is the anti-cycling rule: smallest column index for both the
// entering and the leaving choice. It is the only rule guaranteed to
// terminate on degenerate programs.
type Bland struct{}

func (Bland) Name() string { return "bland" }

func (Bland) ChooseEntering(_ *model.Tableau, candidates []int) int {
	return candidates[0]
}

func (Bland) ChooseLeaving(_ *model.Tableau, _ int, candidates []int) int {
	return minIndex(candidates)
}

// Random picks uniformly among the candidates. It is deterministic for a
// fixed seed; the generator is math/rand seeded through NewRandom.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (*Random) Name() string { return "random" }

func (r *Random) ChooseEntering(_ *model.Tableau, candidates []int) int {
	return candidates[r.rng.Intn(len(candidates))]
}

func (r *Random) ChooseLeaving(_ *model.Tableau, _ int, candidates []int) int {
	return candidates[r.rng.Intn(len(candidates))]
}

// MaxCoef enters the column with the largest reduced cost, ties to the
// smaller index, and leaves by smallest column index so that the rule stays
// deterministic.
type MaxCoef struct{}

func (MaxCoef) Name() string { return "maxcoef" }

func (MaxCoef) ChooseEntering(t *model.Tableau, candidates []int) int {
	best := candidates[0]
	for _, j := range candidates[1:] {
		if t.C[j].Cmp(t.C[best]) > 0 {
			best = j
		}
	}
	return best
}

func (MaxCoef) ChooseLeaving(_ *model.Tableau, _ int, candidates []int) int {
	return minIndex(candidates)
}

// MaxIncrease enters the column whose pivot yields the greatest objective
// increase, computed against each candidate's minimum-ratio row. A
// candidate with no leaving candidate at all makes the program unbounded;
// returning it lets Select report that.
type MaxIncrease struct{}

func (MaxIncrease) Name() string { return "maxincrease" }

func (MaxIncrease) ChooseEntering(t *model.Tableau, candidates []int) int {
	best := candidates[0]
	bestIncrease := num.Zero()
	for _, e := range candidates {
		leavingCands := LeavingCandidates(t, e)
		if len(leavingCands) == 0 {
			return e
		}
		row := t.RowOfBasic(minIndex(leavingCands))
		increase := t.C[e].Mul(t.B[row].Div(t.Row(row)[e]))
		if increase.Cmp(bestIncrease) > 0 {
			bestIncrease = increase
			best = e
		}
	}
	return best
}

func (MaxIncrease) ChooseLeaving(_ *model.Tableau, _ int, candidates []int) int {
	return minIndex(candidates)
}

// RuleByName maps a rule name from the command line to its implementation.
// The seed is only used by the random rule.
func RuleByName(name string, seed int64) (Rule, error) {
	switch name {
	case "bland":
		return Bland{}, nil
	case "random":
		return NewRandom(seed), nil
	case "maxcoef":
		return MaxCoef{}, nil
	case "maxincrease":
		return MaxIncrease{}, nil
	}
	return nil, errors.Errorf("unknown pivot rule %q, allowed values are {bland,random,maxcoef,maxincrease}", name)
}
