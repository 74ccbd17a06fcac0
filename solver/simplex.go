package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/hydroflow/hydroflow/lpmodel"
)

// solveSimplex delegates to gonum's simplex, which wants standard form
// (minimize cᵀy subject to Ay = b, y ≥ 0) with full-row-rank A.
//
// Conversion:
//  1. Drop redundant balance rows (reduceRows).
//  2. Shift each flow by its lower bound: y_j = flow_j − Lower[j] ≥ 0.
//  3. Add one slack column per flow for the upper bound:
//     y_j + s_j = Upper[j] − Lower[j].
//  4. Adjust balance RHS by the shifted lower bounds and add the fixed
//     cost Σ Cost[j]·Lower[j] back into the reported objective.
func solveSimplex(p *lpmodel.Problem, opts Options) (Result, error) {
	keep, fail := reduceRows("simplex", p, opts.Tolerance)
	if fail != nil {
		return Result{}, fail
	}

	nc := p.NumCols()
	nk := len(keep)
	rowOf := make(map[int]int, nk) // problem row -> reduced row
	for i, r := range keep {
		rowOf[r] = i
	}

	a := mat.NewDense(nk+nc, 2*nc, nil)
	b := make([]float64, nk+nc)
	c := make([]float64, 2*nc)

	for i, r := range keep {
		b[i] = p.RHS[r]
	}
	for _, e := range p.Elems {
		i, kept := rowOf[e.Row]
		if !kept {
			continue
		}
		a.Set(i, e.Col, e.Val)
		b[i] -= e.Val * p.Lower[e.Col]
	}
	for j := 0; j < nc; j++ {
		a.Set(nk+j, j, 1)
		a.Set(nk+j, nc+j, 1)
		b[nk+j] = p.Upper[j] - p.Lower[j]
		c[j] = p.Cost[j]
	}

	z, y, err := lp.Simplex(c, a, b, opts.Tolerance, nil)
	switch {
	case err == nil:
	case errors.Is(err, lp.ErrInfeasible):
		return Result{}, &FailureError{Solver: "simplex", Status: StatusOK, Condition: ConditionInfeasible}
	case errors.Is(err, lp.ErrUnbounded):
		return Result{}, &FailureError{Solver: "simplex", Status: StatusOK, Condition: ConditionUnbounded}
	default:
		return Result{}, fmt.Errorf("solver: simplex: %w", err)
	}

	x := make([]float64, nc)
	fixed := 0.0
	for j := 0; j < nc; j++ {
		x[j] = y[j] + p.Lower[j]
		fixed += p.Cost[j] * p.Lower[j]
	}

	return resultFromPrimal("simplex", p, z+fixed, x), nil
}
