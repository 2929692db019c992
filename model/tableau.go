package model

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/dancsi/RationaLP/num"
)

// Tableau is the mutable state of the simplex method, stored in standard form
//
//	max   c^T x
//	s.t.  A x  = b
//	      x   >= 0
//
// built from the canonical form by appending one slack column per constraint.
// All arithmetic is exact rational; the matrix is a flat row-major buffer
// accessed through Row.
type Tableau struct {
	// N is the current number of variables, including slacks and, during
	// phase one, artificials.
	N int
	// M is the number of constraints.
	M int

	// A is the M x N constraint matrix, row-major.
	A []num.Num
	// B is the constraint RHS.
	B []num.Num
	// C is the reduced cost vector, updated by every pivot.
	C []num.Num
	// X is the current primal solution.
	X []num.Num
	// Score is the negated objective offset; the objective value is -Score.
	Score num.Num
	// Basic holds, per row, the column index of that row's basic variable.
	Basic []int

	cBackup []num.Num
}

// New builds a standard-form tableau from the canonical form
// max c^T x s.t. A x <= b, x >= 0. The slack variables form the
// initial basis.
func New(c []num.Num, a [][]num.Num, b []num.Num) (*Tableau, error) {
	k := len(c)
	m := len(b)
	if k == 0 {
		return nil, errors.New("model: the program must have at least one variable")
	}
	if m == 0 {
		return nil, errors.New("model: the program must have at least one constraint")
	}
	if len(a) != m {
		return nil, errors.Errorf("model: got %d constraint rows, want %d", len(a), m)
	}

	n := k + m
	t := &Tableau{
		N:     n,
		M:     m,
		A:     make([]num.Num, m*n),
		B:     append([]num.Num(nil), b...),
		C:     make([]num.Num, n),
		X:     make([]num.Num, n),
		Basic: make([]int, m),
	}
	copy(t.C, c)

	for i, row := range a {
		if len(row) != k {
			return nil, errors.Errorf("model: constraint row %d has %d coefficients, want %d", i, len(row), k)
		}
		copy(t.Row(i), row)
		t.Row(i)[k+i] = num.One()
		t.Basic[i] = k + i
		t.X[k+i] = b[i]
	}

	return t, nil
}

// Row returns row i of A as a slice into the underlying buffer.
func (t *Tableau) Row(i int) []num.Num {
	return t.A[i*t.N : (i+1)*t.N]
}

// RowOfBasic returns the row whose basic variable is col.
// It panics if col is not basic.
func (t *Tableau) RowOfBasic(col int) int {
	for i, b := range t.Basic {
		if b == col {
			return i
		}
	}
	panic(fmt.Sprintf("model: column %d is not basic", col))
}

// Value returns the current objective value, -Score.
func (t *Tableau) Value() num.Num {
	return t.Score.Neg()
}

func dot(x, y []num.Num) num.Num {
	s := num.Zero()
	for i := range x {
		s = s.Add(x[i].Mul(y[i]))
	}
	return s
}

// IsFeasible reports whether the current solution satisfies x >= 0 and Ax = b.
func (t *Tableau) IsFeasible() bool {
	for _, v := range t.X {
		if v.Sign() < 0 {
			return false
		}
	}
	for i := 0; i < t.M; i++ {
		if !dot(t.Row(i), t.X).Equal(t.B[i]) {
			return false
		}
	}
	return true
}

// Pivot performs one Gauss-Jordan step that brings entering into the basis
// in the row currently occupied by leaving. It panics if leaving is not
// basic or the pivot coefficient is zero; both are contract violations of
// the pivot rule that selected the pair.
func (t *Tableau) Pivot(leaving, entering int) {
	row := t.RowOfBasic(leaving)
	t.Basic[row] = entering

	r := t.Row(row)
	p := r[entering]
	if p.IsZero() {
		panic(fmt.Sprintf("model: pivot on zero coefficient A[%d][%d]", row, entering))
	}
	for j := range r {
		r[j] = r[j].Div(p)
	}
	t.B[row] = t.B[row].Div(p)

	for i := 0; i < t.M; i++ {
		if i == row {
			continue
		}
		q := t.Row(i)[entering]
		if q.IsZero() {
			continue
		}
		ri := t.Row(i)
		for j := range ri {
			ri[j] = ri[j].Sub(q.Mul(r[j]))
		}
		t.B[i] = t.B[i].Sub(q.Mul(t.B[row]))
	}

	// The score must be updated with the already-normalized RHS.
	qc := t.C[entering]
	t.Score = t.Score.Sub(qc.Mul(t.B[row]))
	for j := range t.C {
		t.C[j] = t.C[j].Sub(qc.Mul(r[j]))
	}

	for j := range t.X {
		t.X[j] = num.Zero()
	}
	for i := 0; i < t.M; i++ {
		t.X[t.Basic[i]] = t.B[i]
	}
}

// AddArtificialVariables enters phase one: it saves the cost vector,
// flips rows with a negative RHS, appends an identity block of artificial
// columns that become the new basis, and installs the phase-one objective
// (the sum of the constraint rows, so that the artificial reduced costs
// start at zero).
func (t *Tableau) AddArtificialVariables() {
	t.cBackup = t.C

	n, m := t.N, t.M
	nn := n + m
	a := make([]num.Num, m*nn)
	c := make([]num.Num, nn)
	x := make([]num.Num, nn)
	t.Score = num.Zero()

	for i := 0; i < m; i++ {
		old := t.A[i*n : (i+1)*n]
		row := a[i*nn : (i+1)*nn]
		if t.B[i].Sign() < 0 {
			t.B[i] = t.B[i].Neg()
			for j, v := range old {
				row[j] = v.Neg()
			}
		} else {
			copy(row, old)
		}
		for j := 0; j < n; j++ {
			c[j] = c[j].Add(row[j])
		}
		row[n+i] = num.One()
		x[n+i] = t.B[i]
		t.Basic[i] = n + i
		t.Score = t.Score.Add(t.B[i])
	}

	t.A, t.C, t.X = a, c, x
	t.N = nn
}

// RemoveArtificialVariables enters phase two after phase one has
// terminated. It reports false, leaving the tableau untouched, if the
// phase-one objective is nonzero (the program is infeasible). Otherwise it
// drives every remaining artificial out of the basis with at most one pivot
// per row, drops rows whose artificial cannot be pivoted out (redundant
// constraints), truncates the artificial columns, and restores the saved
// cost vector reduced against the current basis.
func (t *Tableau) RemoveArtificialVariables() bool {
	if !t.Score.IsZero() {
		return false
	}

	nn := t.N - t.M

	for i := 0; i < t.M; i++ {
		if t.Basic[i] < nn {
			continue
		}
		for j := 0; j < nn; j++ {
			if !t.Row(i)[j].IsZero() {
				t.Pivot(t.Basic[i], j)
				break
			}
		}
	}

	var (
		a     []num.Num
		b     []num.Num
		basic []int
	)
	for i := 0; i < t.M; i++ {
		if t.Basic[i] >= nn {
			continue
		}
		a = append(a, t.Row(i)[:nn]...)
		b = append(b, t.B[i])
		basic = append(basic, t.Basic[i])
	}
	t.A, t.B, t.Basic = a, b, basic
	t.M = len(basic)
	t.N = nn

	t.C = t.cBackup
	t.cBackup = nil
	x := make([]num.Num, nn)
	for i := 0; i < t.M; i++ {
		cb := t.C[t.Basic[i]]
		t.Score = t.Score.Sub(cb.Mul(t.B[i]))
		row := t.Row(i)
		for j := range t.C {
			t.C[j] = t.C[j].Sub(cb.Mul(row[j]))
		}
		x[t.Basic[i]] = t.B[i]
	}
	t.X = x

	return true
}

// CheckInvariants verifies the basis invariants that must hold at every
// quiescent point: each basic column is a unit column with a zero reduced
// cost, the basis has no duplicates or out-of-range entries, and x agrees
// with b on basic coordinates and is zero elsewhere.
func (t *Tableau) CheckInvariants() error {
	if len(t.Basic) != t.M {
		return errors.Errorf("model: basis has %d entries, want %d", len(t.Basic), t.M)
	}
	seen := make([]bool, t.N)
	for i, col := range t.Basic {
		if col < 0 || col >= t.N {
			return errors.Errorf("model: basic[%d] = %d is out of range [0, %d)", i, col, t.N)
		}
		if seen[col] {
			return errors.Errorf("model: column %d is basic in more than one row", col)
		}
		seen[col] = true
		for k := 0; k < t.M; k++ {
			v := t.Row(k)[col]
			if k == i && !v.Equal(num.One()) {
				return errors.Errorf("model: A[%d][%d] = %s, want 1", k, col, v)
			}
			if k != i && !v.IsZero() {
				return errors.Errorf("model: A[%d][%d] = %s, want 0", k, col, v)
			}
		}
		if !t.C[col].IsZero() {
			return errors.Errorf("model: basic column %d has reduced cost %s, want 0", col, t.C[col])
		}
		if !t.X[col].Equal(t.B[i]) {
			return errors.Errorf("model: x[%d] = %s, want b[%d] = %s", col, t.X[col], i, t.B[i])
		}
	}
	for j := 0; j < t.N; j++ {
		if !seen[j] && !t.X[j].IsZero() {
			return errors.Errorf("model: nonbasic x[%d] = %s, want 0", j, t.X[j])
		}
	}
	return nil
}
