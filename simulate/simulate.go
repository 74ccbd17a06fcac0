package simulate

import (
	"context"
	"errors"
	"fmt"

	"github.com/hydroflow/hydroflow/balance"
	"github.com/hydroflow/hydroflow/dataio"
	"github.com/hydroflow/hydroflow/lpmodel"
	"github.com/hydroflow/hydroflow/network"
	"github.com/hydroflow/hydroflow/solver"
)

var (
	// ErrNilInput indicates a nil network or series was handed to New.
	ErrNilInput = errors.New("simulate: network and series must not be nil")
	// ErrUnknownTimestep indicates the requested timestep label exists
	// in neither the supply nor the demand series.
	ErrUnknownTimestep = errors.New("simulate: unknown timestep")
)

// Options configures a run.
type Options struct {
	Solver    string  // backend name; see solver.Names()
	Tolerance float64 // zero uses the solver default
	MaxIter   int     // zero uses the solver default
}

// StepResult is the outcome of one timestep's solve.
type StepResult struct {
	Timestep string
	State    balance.State
	Solution solver.Result
}

// Simulator runs the balance → build → solve pipeline over loaded
// series. It holds no mutable state between runs; every step builds a
// fresh model.
type Simulator struct {
	net    *network.Network
	supply *dataio.TimeSeries
	demand *dataio.TimeSeries
	opts   Options
}

// New validates the inputs and returns a Simulator.
func New(net *network.Network, supply, demand *dataio.TimeSeries, opts Options) (*Simulator, error) {
	if net == nil || supply == nil || demand == nil {
		return nil, ErrNilInput
	}

	return &Simulator{net: net, supply: supply, demand: demand, opts: opts}, nil
}

// RunStep solves the model of one timestep.
//
// The label must exist in at least one series; the other side defaults
// to an all-zero profile (a supply-only step is a pure surplus, a
// demand-only step a pure shortage). Build errors surface before any
// solver invocation.
func (s *Simulator) RunStep(ctx context.Context, step string) (StepResult, error) {
	sup, okS := s.supply.Profile(step)
	dem, okD := s.demand.Profile(step)
	if !okS && !okD {
		return StepResult{}, fmt.Errorf("%q: %w", step, ErrUnknownTimestep)
	}

	bal := balance.Balance(sup, dem)

	p, err := lpmodel.Build(s.net, bal)
	if err != nil {
		return StepResult{}, fmt.Errorf("timestep %q: %w", step, err)
	}

	sol, err := solver.Solve(s.opts.Solver, p, solver.Options{
		Ctx:       ctx,
		Tolerance: s.opts.Tolerance,
		MaxIter:   s.opts.MaxIter,
	})
	if err != nil {
		return StepResult{}, fmt.Errorf("timestep %q: %w", step, err)
	}

	return StepResult{Timestep: step, State: bal.State, Solution: sol}, nil
}

// Run solves every timestep of the demand series in file order,
// aborting on the first failure.
func (s *Simulator) Run(ctx context.Context) ([]StepResult, error) {
	steps := s.demand.Timesteps()
	out := make([]StepResult, 0, len(steps))
	for _, step := range steps {
		res, err := s.RunStep(ctx, step)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}

	return out, nil
}
