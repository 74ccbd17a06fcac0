// Package solver invokes an external linear-programming solver on an
// assembled lpmodel.Problem and interprets the outcome.
//
// Backends are selected by name through a registry (configuration, not
// core logic):
//
//	"highs"     - github.com/lanl/highs (HiGHS via cgo)
//	"simplex"   - gonum.org/v1/gonum/optimize/convex/lp (pure Go)
//	"lpsimplex" - github.com/willauld/lpsimplex (pure Go, scipy port)
//
// Every backend performs exactly one solver invocation — no retries —
// and reports a Result carrying the solver status, the termination
// condition, the objective value and, on success, the flow value per
// arc. Anything other than an OK status with an optimal termination
// surfaces as a *FailureError; flow values are never read from a
// failed solve.
//
// # Errors
//
//	ErrUnknownSolver - no backend registered under the requested name.
//	ErrNilProblem    - Solve was handed a nil problem.
//	ErrInfeasible    - the model admits no feasible flow.
//	ErrUnbounded     - the objective is unbounded below.
//	ErrNonOptimal    - terminated without reaching optimality (e.g.
//	                   iteration limit).
//	ErrSolverStatus  - the solver itself reported a non-OK status.
//
// The last four are reached through errors.Is on the *FailureError
// returned by Solve.
package solver
