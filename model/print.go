package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/dancsi/RationaLP/num"
)

// Dump writes the tableau in a column-aligned layout: the cost row and the
// score on top, a separator, then every constraint row with its RHS behind
// a vertical bar.
func (t *Tableau) Dump(w io.Writer) {
	rows := make([][]string, 1+t.M)
	rows[0] = make([]string, 0, t.N+1)
	for _, v := range t.C {
		rows[0] = append(rows[0], v.String())
	}
	rows[0] = append(rows[0], t.Score.String())
	for i := 0; i < t.M; i++ {
		rows[i+1] = make([]string, 0, t.N+1)
		for _, v := range t.Row(i) {
			rows[i+1] = append(rows[i+1], v.String())
		}
		rows[i+1] = append(rows[i+1], t.B[i].String())
	}

	widths := make([]int, t.N+1)
	for j := range widths {
		for _, row := range rows {
			if len(row[j]) >= widths[j] {
				widths[j] = 1 + len(row[j])
			}
		}
	}

	printRow := func(row []string) {
		for j := 0; j < t.N; j++ {
			fmt.Fprintf(w, "%*s ", widths[j], row[j])
		}
		fmt.Fprintf(w, "|%*s\n", widths[t.N], row[t.N])
	}

	printRow(rows[0])
	total := t.N + 1
	for _, width := range widths {
		total += width
	}
	fmt.Fprintln(w, strings.Repeat("-", total))
	for i := 1; i <= t.M; i++ {
		printRow(rows[i])
	}
	fmt.Fprintln(w)
}

func printCoefs(w io.Writer, row []num.Num) {
	for i, v := range row {
		if v.IsZero() {
			continue
		}
		if i > 0 && v.Sign() > 0 {
			fmt.Fprint(w, "+")
		}
		fmt.Fprintf(w, "%sx%d ", v, i+1)
	}
}

// PrintStatement writes the problem in its human-readable form, with
// 1-based variable subscripts.
func (t *Tableau) PrintStatement(w io.Writer) {
	fmt.Fprintln(w, "Maximize")
	printCoefs(w, t.C)
	fmt.Fprint(w, "\nSubject to\n")
	for i := 0; i < t.M; i++ {
		printCoefs(w, t.Row(i))
		fmt.Fprintf(w, "<= %s\n", t.B[i])
	}
	for i := 1; i <= t.N; i++ {
		if i > 1 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "x%d", i)
	}
	fmt.Fprintln(w, " are non-negative")
}

// PrintSolution writes the current solution vector as "x1 = v1, x2 = v2, ...".
func (t *Tableau) PrintSolution(w io.Writer) {
	for i := 0; i < t.N; i++ {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "x%d = %s", i+1, t.X[i])
	}
}
