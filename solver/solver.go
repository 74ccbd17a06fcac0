package solver

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/hydroflow/hydroflow/lpmodel"
	"github.com/hydroflow/hydroflow/network"
)

// Backend solves an assembled problem. Implementations perform one
// invocation and map the outcome onto Result / *FailureError.
type Backend func(p *lpmodel.Problem, opts Options) (Result, error)

var backends = map[string]Backend{
	"highs":     solveHiGHS,
	"simplex":   solveSimplex,
	"lpsimplex": solveLPSimplex,
}

// Register adds (or replaces) a backend under a case-insensitive name.
// Intended for tests and out-of-tree solvers; call before any Solve.
func Register(name string, b Backend) {
	backends[strings.ToLower(name)] = b
}

// Names returns the registered backend names, sorted.
func Names() []string {
	out := make([]string, 0, len(backends))
	for name := range backends {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Solve dispatches the problem to the backend registered under name
// and returns the interpreted result.
//
// Steps:
//  1. Normalize options and look the backend up (ErrUnknownSolver).
//  2. Consult opts.Ctx; a canceled context aborts before invocation.
//  3. Degenerate problems without columns short-circuit: feasible iff
//     every RHS is zero within tolerance.
//  4. Delegate to the backend — exactly one invocation, no retries.
//
// A non-OK status or non-optimal termination is returned as a
// *FailureError; Result.Flows is populated only on success.
func Solve(name string, p *lpmodel.Problem, opts Options) (Result, error) {
	opts = opts.normalize()

	b, ok := backends[strings.ToLower(name)]
	if !ok {
		return Result{}, fmt.Errorf("%q: %w", name, ErrUnknownSolver)
	}
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if err := opts.Ctx.Err(); err != nil {
		return Result{}, err
	}

	if p.NumCols() == 0 {
		return solveEmpty(name, p, opts)
	}

	return b(p, opts)
}

// solveEmpty classifies a problem with no decision variables: the
// balance rows reduce to 0 = RHS.
func solveEmpty(name string, p *lpmodel.Problem, opts Options) (Result, error) {
	for _, rhs := range p.RHS {
		if math.Abs(rhs) > opts.Tolerance {
			return Result{}, &FailureError{Solver: name, Status: StatusOK, Condition: ConditionInfeasible}
		}
	}

	return Result{
		Solver:    name,
		Status:    StatusOK,
		Condition: ConditionOptimal,
		Flows:     map[network.Arc]float64{},
	}, nil
}

// resultFromPrimal assembles the success Result from a primal point in
// the problem's column order.
func resultFromPrimal(name string, p *lpmodel.Problem, objective float64, x []float64) Result {
	flows := make(map[network.Arc]float64, len(p.Arcs))
	for j, a := range p.Arcs {
		flows[a] = x[j]
	}

	return Result{
		Solver:    name,
		Status:    StatusOK,
		Condition: ConditionOptimal,
		Objective: objective,
		Flows:     flows,
	}
}
