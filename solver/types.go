package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/hydroflow/hydroflow/network"
)

var (
	// ErrUnknownSolver indicates no backend is registered under the name.
	ErrUnknownSolver = errors.New("solver: unknown solver name")
	// ErrNilProblem indicates Solve was handed a nil problem.
	ErrNilProblem = errors.New("solver: problem must not be nil")
	// ErrInfeasible indicates the model admits no feasible flow.
	ErrInfeasible = errors.New("solver: model infeasible")
	// ErrUnbounded indicates the objective is unbounded below.
	ErrUnbounded = errors.New("solver: model unbounded")
	// ErrNonOptimal indicates termination without optimality.
	ErrNonOptimal = errors.New("solver: termination not optimal")
	// ErrSolverStatus indicates the solver reported a non-OK status.
	ErrSolverStatus = errors.New("solver: solver status not ok")
)

// Status reports whether the solver invocation itself succeeded.
type Status int

const (
	// StatusOK: the solver ran and classified the model.
	StatusOK Status = iota
	// StatusError: the solver failed to produce a classification.
	StatusError
)

// String returns the report label of the status.
func (s Status) String() string {
	if s == StatusOK {
		return "OK"
	}

	return "ERROR"
}

// Condition classifies the solver-reported termination outcome.
type Condition int

const (
	// ConditionOptimal: an optimal solution was found.
	ConditionOptimal Condition = iota
	// ConditionInfeasible: no feasible point exists.
	ConditionInfeasible
	// ConditionUnbounded: the objective is unbounded.
	ConditionUnbounded
	// ConditionIterationLimit: the iteration budget ran out.
	ConditionIterationLimit
	// ConditionUnknown: any other non-optimal classification.
	ConditionUnknown
)

// String returns the report label of the condition.
func (c Condition) String() string {
	switch c {
	case ConditionOptimal:
		return "OPTIMAL"
	case ConditionInfeasible:
		return "INFEASIBLE"
	case ConditionUnbounded:
		return "UNBOUNDED"
	case ConditionIterationLimit:
		return "ITERATION_LIMIT"
	default:
		return "UNKNOWN"
	}
}

// Result is the interpreted outcome of one solver invocation.
// Flows is populated only when Status is OK and Condition is optimal.
type Result struct {
	Solver    string
	Status    Status
	Condition Condition
	Objective float64
	Flows     map[network.Arc]float64
}

// FailureError reports a solve that did not end in an OK status with an
// optimal termination. errors.Is distinguishes the sub-kinds via the
// wrapped sentinel (ErrInfeasible, ErrUnbounded, ErrNonOptimal,
// ErrSolverStatus).
type FailureError struct {
	Solver    string
	Status    Status
	Condition Condition
}

// Error renders solver name, status and termination condition.
func (e *FailureError) Error() string {
	return fmt.Sprintf("solver %q failed: status %s, termination %s",
		e.Solver, e.Status, e.Condition)
}

// Unwrap maps the failure onto its sentinel sub-kind.
func (e *FailureError) Unwrap() error {
	switch e.Condition {
	case ConditionInfeasible:
		return ErrInfeasible
	case ConditionUnbounded:
		return ErrUnbounded
	}
	if e.Status != StatusOK {
		return ErrSolverStatus
	}

	return ErrNonOptimal
}

// Options configures a solver invocation. The zero value is usable;
// normalize fills the defaults.
//   - Ctx: consulted at dispatch boundaries; the backend call itself is
//     atomic and non-cancelable.
//   - Tolerance: feasibility/optimality tolerance handed to the backend.
//   - MaxIter: iteration budget for the pure-Go simplex backends.
type Options struct {
	Ctx       context.Context
	Tolerance float64
	MaxIter   int
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Tolerance: 1e-9, MaxIter: 4000}
}

func (o Options) normalize() Options {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Tolerance <= 0 {
		o.Tolerance = 1e-9
	}
	if o.MaxIter <= 0 {
		o.MaxIter = 4000
	}

	return o
}
