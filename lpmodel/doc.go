// Package lpmodel assembles the minimum-cost flow linear program from a
// network and a balanced supply/demand profile.
//
// The assembled Problem is solver-agnostic: one column per arc in
// canonical order, the minimization objective Σ Cost[j]·flow[j], box
// bounds per column and one equality (mass-balance) row per node in
// sparse triplet form:
//
//	supply[n] + Σ flow[in-arcs of n] − demand[n] − Σ flow[out-arcs of n] = 0
//
// rewritten as Σ(+1·in) + Σ(−1·out) = demand[n] − supply[n].
//
// Every node receives a row, including isolated ones (empty sums reduce
// the row to 0 = demand[n] − supply[n]). Profile keys outside the node
// set — such as the balancer's dummy terms — contribute nothing.
// Membership in the per-node arc lists, not iteration order, decides
// which columns appear in a row.
//
// Flow variables are nonnegative, so the effective lower bound of a
// column is max(LowerBound, 0). Build fails with ErrBoundMismatch when
// an effective lower bound exceeds the upper bound; the configuration
// error is reported before any solver is invoked.
//
// WriteMPS renders a Problem in MPS text form for inspection or for
// feeding out-of-process solvers.
package lpmodel
