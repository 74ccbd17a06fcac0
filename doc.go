// Package hydroflow models a water-distribution system as a
// minimum-cost network flow problem and solves it per timestep via
// linear programming.
//
// The pipeline is: load the node/arc tables and supply/demand series
// (dataio), reconcile each timestep's totals (balance), assemble the
// LP (lpmodel), hand it to a solver backend selected by name (solver)
// and render the flow assignment (report). The simulate package wires
// the steps together; cmd/hydroflow is the batch CLI.
//
// Subpackages:
//
//	network/  — node set and attributed arc table (capacity, bounds, cost)
//	balance/  — supply/demand reconciliation with dummy-term injection
//	lpmodel/  — LP assembly (objective, box bounds, mass-balance rows) + MPS export
//	solver/   — backend registry: HiGHS (cgo) and two pure-Go simplex solvers
//	report/   — canonical-order flow records, text and table rendering
//	dataio/   — CSV table loading
//	config/   — YAML run configuration
//	simulate/ — per-timestep balance → build → solve orchestration
//
// Solving arithmetic is always delegated; this module only formulates
// the model and interprets results. Multi-commodity flow, coupled
// multi-period optimization and reservoir storage dynamics are out of
// scope.
package hydroflow
