// Package simulate orchestrates a run of the water-network flow model:
// for each timestep it balances supply against demand, assembles the
// minimum-cost flow LP, hands it to the configured solver backend and
// collects the interpreted solution.
//
// Each timestep is an independent model — the run is synchronous and
// batch-oriented, with one solver invocation per step and no retries.
// The first failing step aborts the run with the step's label attached
// to the error. Coupled multi-period optimization (reservoir carryover
// between steps) is out of scope.
package simulate
