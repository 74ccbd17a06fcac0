package solver

import (
	"github.com/willauld/lpsimplex"

	"github.com/hydroflow/hydroflow/lpmodel"
)

// scipy-style status codes reported by lpsimplex.
const (
	lpsOK             = 0
	lpsIterationLimit = 1
	lpsInfeasible     = 2
	lpsUnbounded      = 3
)

// solveLPSimplex hands the problem to willauld/lpsimplex: dense
// equality rows (redundant ones dropped via reduceRows) plus native
// per-column bounds, no inequality block.
func solveLPSimplex(p *lpmodel.Problem, opts Options) (Result, error) {
	keep, fail := reduceRows("lpsimplex", p, opts.Tolerance)
	if fail != nil {
		return Result{}, fail
	}

	nc := p.NumCols()
	rowOf := make(map[int]int, len(keep))
	aeq := make([][]float64, len(keep))
	beq := make([]float64, len(keep))
	for i, r := range keep {
		rowOf[r] = i
		aeq[i] = make([]float64, nc)
		beq[i] = p.RHS[r]
	}
	for _, e := range p.Elems {
		if i, kept := rowOf[e.Row]; kept {
			aeq[i][e.Col] = e.Val
		}
	}

	bounds := make([]lpsimplex.Bound, nc)
	for j := 0; j < nc; j++ {
		bounds[j] = lpsimplex.Bound{Lb: p.Lower[j], Ub: p.Upper[j]}
	}

	res := lpsimplex.LPSimplex(
		append([]float64(nil), p.Cost...),
		nil, nil, // no inequality rows
		aeq, beq,
		bounds,
		lpsimplex.Callbackfunc(nil),
		false,
		opts.MaxIter,
		opts.Tolerance,
		false,
	)

	switch {
	case res.Success && res.Status == lpsOK:
		return resultFromPrimal("lpsimplex", p, res.Fun, res.X), nil
	case res.Status == lpsInfeasible:
		return Result{}, &FailureError{Solver: "lpsimplex", Status: StatusOK, Condition: ConditionInfeasible}
	case res.Status == lpsUnbounded:
		return Result{}, &FailureError{Solver: "lpsimplex", Status: StatusOK, Condition: ConditionUnbounded}
	case res.Status == lpsIterationLimit:
		return Result{}, &FailureError{Solver: "lpsimplex", Status: StatusOK, Condition: ConditionIterationLimit}
	default:
		return Result{}, &FailureError{Solver: "lpsimplex", Status: StatusError, Condition: ConditionUnknown}
	}
}
