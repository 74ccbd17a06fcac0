package lpmodel

import (
	"fmt"
	"io"
)

// WriteMPS renders the problem in MPS text form (free format): one N
// objective row, one E row per node, column entries grouped per column,
// nonzero RHS entries, and LO/UP bound records per column.
//
// Names are generated deterministically: column j is Xj+1 zero-padded,
// row i is "BAL_" plus the node ID, the objective row is COST.
func WriteMPS(w io.Writer, name string, p *Problem) error {
	if p == nil {
		return ErrNilProblem
	}

	if _, err := fmt.Fprintf(w, "NAME %s\n", name); err != nil {
		return err
	}

	// ROWS section: objective first, then one equality per node.
	fmt.Fprintln(w, "ROWS")
	fmt.Fprintln(w, " N COST")
	for _, node := range p.Rows {
		fmt.Fprintf(w, " E BAL_%s\n", node)
	}

	// COLUMNS section: entries must be contiguous per column.
	perCol := make([][]Elem, p.NumCols())
	for _, e := range p.Elems {
		perCol[e.Col] = append(perCol[e.Col], e)
	}
	fmt.Fprintln(w, "COLUMNS")
	for j := range p.Arcs {
		cname := colName(j)
		if p.Cost[j] != 0 {
			fmt.Fprintf(w, " %s COST %.12g\n", cname, p.Cost[j])
		}
		for _, e := range perCol[j] {
			fmt.Fprintf(w, " %s BAL_%s %.12g\n", cname, p.Rows[e.Row], e.Val)
		}
	}

	fmt.Fprintln(w, "RHS")
	for i, rhs := range p.RHS {
		if rhs != 0 {
			fmt.Fprintf(w, " RHS BAL_%s %.12g\n", p.Rows[i], rhs)
		}
	}

	fmt.Fprintln(w, "BOUNDS")
	for j := range p.Arcs {
		if p.Lower[j] != 0 {
			fmt.Fprintf(w, " LO BND %s %.12g\n", colName(j), p.Lower[j])
		}
		fmt.Fprintf(w, " UP BND %s %.12g\n", colName(j), p.Upper[j])
	}

	_, err := fmt.Fprintln(w, "ENDATA")

	return err
}

func colName(j int) string { return fmt.Sprintf("X%07d", j+1) }
