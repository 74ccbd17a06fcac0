// Package balance reconciles per-timestep supply and demand profiles
// before optimization.
//
// A minimum-cost flow model is only feasible when total supply equals
// total demand. Balance compares the two totals and injects a single
// synthetic (dummy) term on the deficient side:
//
//	totalSupply > totalDemand → dummy demand of the difference, state SURPLUS
//	totalSupply < totalDemand → dummy supply of the difference, state SHORTAGE
//	equal (within Tolerance)  → no change, state BALANCED
//
// The dummy terms live under the reserved keys DummySupplyNode and
// DummyDemandNode. They are bookkeeping only: model building constrains
// nodes of the network's node set, so a dummy key outside that set
// balances the totals without routing any flow. Declare real slack
// nodes and arcs in the input tables when surplus or shortage should be
// routable.
//
// Balance is a pure function: the caller's profiles are never mutated,
// and balancing an already balanced pair returns equal copies with
// state BALANCED (idempotence).
package balance
