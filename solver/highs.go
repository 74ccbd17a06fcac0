package solver

import (
	"fmt"

	"github.com/lanl/highs"

	"github.com/hydroflow/hydroflow/lpmodel"
)

// solveHiGHS maps the problem onto a lanl/highs model: box-bounded
// columns, equality rows (RowLower == RowUpper == RHS) and the sparse
// constraint matrix in triplet form.
func solveHiGHS(p *lpmodel.Problem, opts Options) (Result, error) {
	m := new(highs.Model)
	m.ColCosts = append([]float64(nil), p.Cost...)
	m.ColLower = append([]float64(nil), p.Lower...)
	m.ColUpper = append([]float64(nil), p.Upper...)
	m.RowLower = append([]float64(nil), p.RHS...)
	m.RowUpper = append([]float64(nil), p.RHS...)

	m.ConstMatrix = make([]highs.Nonzero, len(p.Elems))
	for i, e := range p.Elems {
		m.ConstMatrix[i] = highs.Nonzero{Row: e.Row, Col: e.Col, Val: e.Val}
	}

	sol, err := m.Solve()
	if err != nil {
		return Result{}, fmt.Errorf("solver: highs: %w", err)
	}

	switch sol.Status {
	case highs.Optimal:
		return resultFromPrimal("highs", p, sol.Objective, sol.ColumnPrimal), nil
	case highs.Infeasible:
		return Result{}, &FailureError{Solver: "highs", Status: StatusOK, Condition: ConditionInfeasible}
	case highs.Unbounded, highs.UnboundedOrInfeasible:
		return Result{}, &FailureError{Solver: "highs", Status: StatusOK, Condition: ConditionUnbounded}
	case highs.IterationLimit:
		return Result{}, &FailureError{Solver: "highs", Status: StatusOK, Condition: ConditionIterationLimit}
	default:
		return Result{}, &FailureError{Solver: "highs", Status: StatusError, Condition: ConditionUnknown}
	}
}
