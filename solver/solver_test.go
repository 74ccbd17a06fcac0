package solver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/hydroflow/hydroflow/balance"
	"github.com/hydroflow/hydroflow/lpmodel"
	"github.com/hydroflow/hydroflow/network"
	"github.com/hydroflow/hydroflow/solver"
)

const eps = 1e-6

// chainProblem builds the S -> A -> T model with the given supply at S,
// demand at T and per-arc upper bound.
func chainProblem(t *testing.T, supply, demand, ub float64) (*network.Network, *lpmodel.Problem, balance.Result) {
	t.Helper()
	net, err := network.NewNetwork(
		[]string{"S", "A", "T"},
		[]network.ArcRecord{
			{Arc: network.Arc{Start: "S", End: "A"}, Attrs: network.ArcAttrs{Capacity: ub, UpperBound: ub, Cost: 1}},
			{Arc: network.Arc{Start: "A", End: "T"}, Attrs: network.ArcAttrs{Capacity: ub, UpperBound: ub, Cost: 1}},
		},
	)
	require.NoError(t, err)

	bal := balance.Balance(balance.Profile{"S": supply}, balance.Profile{"T": demand})
	p, err := lpmodel.Build(net, bal)
	require.NoError(t, err)

	return net, p, bal
}

// requireFeasible asserts bounds and mass balance on a solved chain.
func requireFeasible(t *testing.T, net *network.Network, bal balance.Result, flows map[network.Arc]float64) {
	t.Helper()
	for _, a := range net.Arcs() {
		attrs, ok := net.Attrs(a)
		require.True(t, ok)
		require.GreaterOrEqual(t, flows[a], attrs.LowerBound-eps, "arc %v below lower bound", a)
		require.LessOrEqual(t, flows[a], attrs.UpperBound+eps, "arc %v above upper bound", a)
	}
	for _, n := range net.Nodes() {
		var in, out float64
		for _, a := range net.InArcs(n) {
			in += flows[a]
		}
		for _, a := range net.OutArcs(n) {
			out += flows[a]
		}
		require.InDelta(t, 0.0, bal.Supply[n]+in-bal.Demand[n]-out, eps,
			"mass balance violated at node %s", n)
	}
}

// SimplexSuite exercises the pure-Go gonum backend, which needs no
// native solver library.
type SimplexSuite struct {
	suite.Suite
}

// TestBalancedChain: 5 units over two unit-cost arcs => objective 10.
func (s *SimplexSuite) TestBalancedChain() {
	net, p, bal := chainProblem(s.T(), 5, 5, 10)

	res, err := solver.Solve("simplex", p, solver.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), solver.StatusOK, res.Status)
	require.Equal(s.T(), solver.ConditionOptimal, res.Condition)
	require.InDelta(s.T(), 10.0, res.Objective, eps)
	require.InDelta(s.T(), 5.0, res.Flows[network.Arc{Start: "S", End: "A"}], eps)
	require.InDelta(s.T(), 5.0, res.Flows[network.Arc{Start: "A", End: "T"}], eps)
	requireFeasible(s.T(), net, bal, res.Flows)
}

// TestLowerBoundShift: a positive lower bound forces flow through the
// detour arc even though it costs more.
func (s *SimplexSuite) TestLowerBoundShift() {
	net, err := network.NewNetwork(
		[]string{"S", "A", "T"},
		[]network.ArcRecord{
			{Arc: network.Arc{Start: "S", End: "T"}, Attrs: network.ArcAttrs{Capacity: 10, UpperBound: 10, Cost: 1}},
			{Arc: network.Arc{Start: "S", End: "A"}, Attrs: network.ArcAttrs{Capacity: 10, LowerBound: 2, UpperBound: 10, Cost: 5}},
			{Arc: network.Arc{Start: "A", End: "T"}, Attrs: network.ArcAttrs{Capacity: 10, LowerBound: 2, UpperBound: 10, Cost: 5}},
		},
	)
	require.NoError(s.T(), err)

	bal := balance.Balance(balance.Profile{"S": 6}, balance.Profile{"T": 6})
	p, err := lpmodel.Build(net, bal)
	require.NoError(s.T(), err)

	res, err := solver.Solve("simplex", p, solver.DefaultOptions())
	require.NoError(s.T(), err)
	// 2 units forced through S->A->T at cost 10 each, 4 direct at cost 1.
	require.InDelta(s.T(), 2*5+2*5+4*1, res.Objective, eps)
	require.InDelta(s.T(), 2.0, res.Flows[network.Arc{Start: "S", End: "A"}], eps)
	require.InDelta(s.T(), 4.0, res.Flows[network.Arc{Start: "S", End: "T"}], eps)
	requireFeasible(s.T(), net, bal, res.Flows)
}

// TestInfeasible: demand exceeds arc capacity => ErrInfeasible, no flows.
func (s *SimplexSuite) TestInfeasible() {
	_, p, _ := chainProblem(s.T(), 5, 5, 3)

	res, err := solver.Solve("simplex", p, solver.DefaultOptions())
	require.Error(s.T(), err)
	require.ErrorIs(s.T(), err, solver.ErrInfeasible)

	var fe *solver.FailureError
	require.True(s.T(), errors.As(err, &fe))
	require.Equal(s.T(), solver.ConditionInfeasible, fe.Condition)
	require.Nil(s.T(), res.Flows, "flow values must never be read from a failed solve")
}

func TestSimplexSuite(t *testing.T) {
	suite.Run(t, new(SimplexSuite))
}

// TestLPSimplexBackend_BalancedChain: same scenario through the second
// pure-Go backend.
func TestLPSimplexBackend_BalancedChain(t *testing.T) {
	net, p, bal := chainProblem(t, 5, 5, 10)

	res, err := solver.Solve("lpsimplex", p, solver.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, solver.ConditionOptimal, res.Condition)
	require.InDelta(t, 10.0, res.Objective, eps)
	requireFeasible(t, net, bal, res.Flows)
}

func TestSolve_UnknownSolver(t *testing.T) {
	_, p, _ := chainProblem(t, 5, 5, 10)

	_, err := solver.Solve("gurobi", p, solver.Options{})
	require.ErrorIs(t, err, solver.ErrUnknownSolver)
}

func TestSolve_NilProblem(t *testing.T) {
	_, err := solver.Solve("simplex", nil, solver.Options{})
	require.ErrorIs(t, err, solver.ErrNilProblem)
}

func TestSolve_CanceledContext(t *testing.T) {
	_, p, _ := chainProblem(t, 5, 5, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.Solve("simplex", p, solver.Options{Ctx: ctx})
	require.ErrorIs(t, err, context.Canceled)
}

// TestSolve_EmptyProblem: no arcs => feasible iff every node balances
// on its own.
func TestSolve_EmptyProblem(t *testing.T) {
	net, err := network.NewNetwork([]string{"A", "B"}, nil)
	require.NoError(t, err)

	balanced := balance.Balance(balance.Profile{"A": 2}, balance.Profile{"A": 2})
	p, err := lpmodel.Build(net, balanced)
	require.NoError(t, err)

	res, err := solver.Solve("simplex", p, solver.Options{})
	require.NoError(t, err)
	require.Equal(t, solver.ConditionOptimal, res.Condition)
	require.Empty(t, res.Flows)

	unbalanced := balance.Result{Supply: balance.Profile{"A": 2}, Demand: balance.Profile{"B": 2}}
	p, err = lpmodel.Build(net, unbalanced)
	require.NoError(t, err)

	_, err = solver.Solve("simplex", p, solver.Options{})
	require.ErrorIs(t, err, solver.ErrInfeasible)
}

// TestRegister_StubBackend: the registry dispatches by name and
// surfaces backend failures untouched (Scenario E shape).
func TestRegister_StubBackend(t *testing.T) {
	solver.Register("stub-fail", func(p *lpmodel.Problem, opts solver.Options) (solver.Result, error) {
		return solver.Result{}, &solver.FailureError{
			Solver:    "stub-fail",
			Status:    solver.StatusOK,
			Condition: solver.ConditionInfeasible,
		}
	})

	_, p, _ := chainProblem(t, 5, 5, 10)
	_, err := solver.Solve("STUB-FAIL", p, solver.Options{})
	require.ErrorIs(t, err, solver.ErrInfeasible, "name lookup is case-insensitive")

	require.Contains(t, solver.Names(), "stub-fail")
	require.Contains(t, solver.Names(), "highs")
}

// TestFailureError_Unwrap covers the sub-kind mapping.
func TestFailureError_Unwrap(t *testing.T) {
	cases := []struct {
		name string
		fe   solver.FailureError
		want error
	}{
		{"Infeasible", solver.FailureError{Status: solver.StatusOK, Condition: solver.ConditionInfeasible}, solver.ErrInfeasible},
		{"Unbounded", solver.FailureError{Status: solver.StatusOK, Condition: solver.ConditionUnbounded}, solver.ErrUnbounded},
		{"IterationLimit", solver.FailureError{Status: solver.StatusOK, Condition: solver.ConditionIterationLimit}, solver.ErrNonOptimal},
		{"BadStatus", solver.FailureError{Status: solver.StatusError, Condition: solver.ConditionUnknown}, solver.ErrSolverStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, &tc.fe, tc.want)
		})
	}
}
