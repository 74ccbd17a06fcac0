package solver

import (
	"math"

	"github.com/hydroflow/hydroflow/lpmodel"
)

// The balance rows of a flow LP are never linearly independent: every
// column carries a +1 and a −1, so the rows of each weakly connected
// component sum to the zero row. The pure-Go simplex backends require
// full row rank, so reduceRows drops exactly one row per component and
// every empty row (isolated nodes), after verifying the dropped
// information directly:
//
//	– an empty row is feasible iff its RHS is zero,
//	– a component is consistent iff its aggregate RHS is zero.
//
// It returns the kept row indices in ascending order, or a
// *FailureError (infeasible) when a verification fails.
func reduceRows(name string, p *lpmodel.Problem, tol float64) ([]int, *FailureError) {
	nr := p.NumRows()

	parent := make([]int, nr)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}

		return parent[i]
	}
	union := func(i, j int) { parent[find(i)] = find(j) }

	// Each column touches exactly two rows (start and end node).
	firstRow := make(map[int]int, p.NumCols())
	hasElems := make([]bool, nr)
	for _, e := range p.Elems {
		hasElems[e.Row] = true
		if r, ok := firstRow[e.Col]; ok {
			union(r, e.Row)
		} else {
			firstRow[e.Col] = e.Row
		}
	}

	infeasible := &FailureError{Solver: name, Status: StatusOK, Condition: ConditionInfeasible}

	// Aggregate RHS and pick the row to drop per component.
	compRHS := make(map[int]float64, nr)
	compDrop := make(map[int]int, nr)
	for i := 0; i < nr; i++ {
		if !hasElems[i] {
			if math.Abs(p.RHS[i]) > tol {
				return nil, infeasible
			}

			continue
		}
		root := find(i)
		compRHS[root] += p.RHS[i]
		compDrop[root] = i // last member wins; any one row is redundant
	}
	for _, sum := range compRHS {
		if math.Abs(sum) > tol {
			return nil, infeasible
		}
	}

	keep := make([]int, 0, nr)
	for i := 0; i < nr; i++ {
		if !hasElems[i] || compDrop[find(i)] == i {
			continue
		}
		keep = append(keep, i)
	}

	return keep, nil
}
